package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func authCmd() *cobra.Command {
	authRoot := &cobra.Command{
		Use:   "auth",
		Short: "Manage the server's StockX authorization",
		Long: "Connect the sales-tracker server to a StockX seller account.\n" +
			"Open the URL printed by 'auth url' in a browser; StockX redirects\n" +
			"back to the server, which stores the issued tokens in memory.",
	}

	authRoot.AddCommand(
		authURLCmd(),
		authStatusCmd(),
		authRefreshCmd(),
	)

	return authRoot
}

func authURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url",
		Short: "Print the StockX consent URL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := newClient().AuthURL(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]string{"url": u})
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}
}

func authStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the server holds StockX tokens",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := newClient().AuthStatus(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), status)
			}
			return printAuthStatus(cmd.OutOrStdout(), status)
		},
	}
}

func authRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the server's refresh token for new tokens",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := newClient().RefreshAuth(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Tokens refreshed.")
			return nil
		},
	}
}
