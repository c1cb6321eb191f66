package cmd

import (
	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/sales-tracker/internal/api/client"
)

func ordersCmd() *cobra.Command {
	var p apiclient.OrderHistoryParams

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Fetch one page of StockX order history",
		Long: "Fetch one page of the seller's StockX order history. The reply is\n" +
			"printed as StockX returned it; use hasNextPage and --page to walk it.",
		Example: `  # First page, server defaults
  salesctl orders

  # Completed orders in January, newest first
  salesctl orders --from 2025-01-01 --to 2025-01-31 --status COMPLETED --sort-dir desc

  # Third page of 100
  salesctl orders --page 3 --page-size 100`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := newClient().OrderHistory(cmd.Context(), &p)
			if err != nil {
				return err
			}
			return outputRaw(cmd.OutOrStdout(), raw)
		},
	}

	cmd.Flags().StringVar(&p.FromDate, "from", "", "earliest order date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&p.ToDate, "to", "", "latest order date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&p.OrderStatus, "status", "", "order status filter")
	cmd.Flags().IntVar(&p.PageNumber, "page", 0, "page number (1-based)")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0, "orders per page")
	cmd.Flags().StringVar(&p.SortBy, "sort-by", "", "sort field")
	cmd.Flags().StringVar(&p.SortDir, "sort-dir", "", "sort direction (asc, desc)")

	return cmd
}
