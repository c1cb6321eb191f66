// Package main is the entry point for the sales-tracker server.
package main

import (
	"os"

	"github.com/donaldgifford/sales-tracker/cmd/sales-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
