package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/sales-tracker/internal/config"
	"github.com/donaldgifford/sales-tracker/internal/stockx"
)

var authURLCmd = &cobra.Command{
	Use:   "auth-url",
	Short: "Print the StockX authorization URL for the configured client",
	Long:  "Prints the URL a seller must visit to grant access. It is built from configuration only and does not contact StockX or a running server.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		auth := newAuthClient(cfg.StockX, stockx.NewTokenStore())
		fmt.Fprintln(cmd.OutOrStdout(), auth.AuthorizationURL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authURLCmd)
}
