package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/sales-tracker/internal/api/client"
)

func snapshotsCmd() *cobra.Command {
	snapshotsRoot := &cobra.Command{
		Use:   "snapshots",
		Short: "Query listings recorded by the sync job",
	}

	snapshotsRoot.AddCommand(
		snapshotsListCmd(),
		snapshotsGetCmd(),
	)

	return snapshotsRoot
}

func snapshotsListCmd() *cobra.Command {
	var p apiclient.SnapshotParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored listing snapshots",
		Example: `  salesctl snapshots list --status ACTIVE
  salesctl snapshots list --order-by amount --limit 20 --offset 40`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := newClient().ListSnapshots(cmd.Context(), &p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), page)
			}
			if len(page.Listings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No listings found.")
				return nil
			}
			if err := printSnapshotsTable(cmd.OutOrStdout(), page.Listings); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d listings (offset %d)\n",
				len(page.Listings), page.Total, page.Offset)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.Status, "status", "", "listing status filter")
	cmd.Flags().StringVar(&p.ProductID, "product-id", "", "product ID filter")
	cmd.Flags().StringVar(&p.InventoryType, "inventory-type", "", "inventory type filter")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "number of results (default 50)")
	cmd.Flags().IntVar(&p.Offset, "offset", 0, "pagination offset")
	cmd.Flags().StringVar(&p.OrderBy, "order-by", "", "sort field (synced_at, amount, listed_at)")

	return cmd
}

func snapshotsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <listing_id>",
		Short: "Show one stored listing snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := newClient().GetSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), snap)
			}
			return printSnapshotDetail(cmd.OutOrStdout(), snap)
		},
	}
}
