package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func analyticsCmd() *cobra.Command {
	analyticsRoot := &cobra.Command{
		Use:   "analytics",
		Short: "Summarize StockX sales",
	}

	analyticsRoot.AddCommand(analyticsMonthlyCmd())

	return analyticsRoot
}

func analyticsMonthlyCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show order count and revenue for a month",
		Long: "Summarize the orders placed in one calendar month. Months are\n" +
			"bucketed in the server's configured time zone.",
		Example: `  salesctl analytics monthly
  salesctl analytics monthly --month 2025-01 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := newClient().MonthlySales(cmd.Context(), month)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), summaries)
			}
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No orders found.")
				return nil
			}
			return printMonthlySummaryTable(cmd.OutOrStdout(), summaries)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to summarize (YYYY-MM, default current month)")

	return cmd
}
