// Package main is the entry point for the salesctl CLI client.
package main

import (
	"github.com/donaldgifford/sales-tracker/cmd/salesctl/cmd"
)

func main() {
	cmd.Execute()
}
