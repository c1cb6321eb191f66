package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func syncCmd() *cobra.Command {
	syncRoot := &cobra.Command{
		Use:   "sync",
		Short: "Inspect and trigger listing syncs",
		Long: "The server periodically copies the seller's StockX listings into\n" +
			"its database. These commands need a server with a database.",
	}

	syncRoot.AddCommand(
		syncRunsCmd(),
		syncTriggerCmd(),
		syncStateCmd(),
	)

	return syncRoot
}

func syncRunsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent sync runs",
		Example: `  salesctl sync runs
  salesctl sync runs --limit 5 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runs, err := newClient().ListSyncRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sync runs found.")
				return nil
			}
			return printSyncRunsTable(cmd.OutOrStdout(), runs)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of runs (default 20)")

	return cmd
}

func syncTriggerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trigger",
		Short: "Run a listing sync now and wait for it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := newClient().TriggerSync(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), run)
			}
			return printSyncRunDetail(cmd.OutOrStdout(), run)
		},
	}
}

func syncStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show stored listing counts and the latest sync outcome",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := newClient().SystemState(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), state)
			}
			return printSystemState(cmd.OutOrStdout(), state)
		},
	}
}
