// Package cmd implements the CLI commands for sales-tracker.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sales-tracker",
	Short: "Track StockX sales and listings",
	Long:  "An API-first service that connects a StockX seller account over OAuth2, proxies order history and listings, and summarizes monthly sales.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
