package cmd

import (
	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/sales-tracker/internal/api/client"
)

func listingsCmd() *cobra.Command {
	var p apiclient.ListingsParams

	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Fetch one page of StockX listings",
		Long: "Fetch one page of the seller's StockX listings, live from StockX.\n" +
			"Multi-valued filters take comma-separated values. For listings\n" +
			"recorded by the sync job use 'salesctl snapshots'.",
		Example: `  # Active listings
  salesctl listings --status ACTIVE

  # Listings of two products, 50 per page
  salesctl listings --product-ids p-1,p-2 --page-size 50`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := newClient().Listings(cmd.Context(), &p)
			if err != nil {
				return err
			}
			return outputRaw(cmd.OutOrStdout(), raw)
		},
	}

	cmd.Flags().IntVar(&p.PageNumber, "page", 0, "page number (1-based)")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0, "listings per page")
	cmd.Flags().StringVar(&p.ProductIDs, "product-ids", "", "product ID filter")
	cmd.Flags().StringVar(&p.VariantIDs, "variant-ids", "", "variant ID filter")
	cmd.Flags().StringVar(&p.ListingStatuses, "status", "", "listing status filter")
	cmd.Flags().StringVar(&p.InventoryTypes, "inventory-types", "", "inventory type filter")
	cmd.Flags().StringVar(&p.FromDate, "from", "", "earliest listing date")
	cmd.Flags().StringVar(&p.ToDate, "to", "", "latest listing date")

	return cmd
}
