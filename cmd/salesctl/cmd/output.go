package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	apiclient "github.com/donaldgifford/sales-tracker/internal/api/client"
	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printMonthlySummaryTable(w io.Writer, summaries []domain.MonthlySummary) error {
	tw := newTabWriter(w)
	tw.writef("MONTH\tORDERS\tREVENUE\n")
	for i := range summaries {
		tw.writef("%s\t%d\t%s\n",
			summaries[i].Month,
			summaries[i].OrderCount,
			summaries[i].Revenue.StringFixed(2),
		)
	}
	return tw.finish()
}

func printSyncRunsTable(w io.Writer, runs []domain.SyncRun) error {
	tw := newTabWriter(w)
	tw.writef("ID\tSTATUS\tSTARTED\tCOMPLETED\tPAGES\tLISTINGS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		tw.writef("%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			r.ID,
			r.Status,
			r.StartedAt.Format(timeLayout),
			formatTime(r.CompletedAt),
			r.PagesFetched,
			r.ListingsSynced,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func printSyncRunDetail(w io.Writer, r *domain.SyncRun) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", r.ID)
	tw.writef("Status:\t%s\n", r.Status)
	tw.writef("Started:\t%s\n", r.StartedAt.Format(timeLayout))
	tw.writef("Completed:\t%s\n", formatTime(r.CompletedAt))
	tw.writef("Pages:\t%d\n", r.PagesFetched)
	tw.writef("Listings:\t%d\n", r.ListingsSynced)
	if r.ErrorText != "" {
		tw.writef("Error:\t%s\n", r.ErrorText)
	}
	return tw.finish()
}

func printSnapshotsTable(w io.Writer, snapshots []domain.ListingSnapshot) error {
	tw := newTabWriter(w)
	tw.writef("ID\tPRODUCT\tSTATUS\tTYPE\tAMOUNT\tSYNCED\n")
	for i := range snapshots {
		s := &snapshots[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ListingID,
			truncate(productLabel(s), 40),
			s.Status,
			s.InventoryType,
			formatAmount(s),
			s.SyncedAt.Format(timeLayout),
		)
	}
	return tw.finish()
}

func printSnapshotDetail(w io.Writer, s *domain.ListingSnapshot) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", s.ListingID)
	tw.writef("Product:\t%s\n", productLabel(s))
	tw.writef("Variant ID:\t%s\n", s.VariantID)
	tw.writef("Status:\t%s\n", s.Status)
	tw.writef("Inventory Type:\t%s\n", s.InventoryType)
	tw.writef("Amount:\t%s\n", formatAmount(s))
	tw.writef("Listed:\t%s\n", formatTime(s.ListedAt))
	tw.writef("Updated:\t%s\n", formatTime(s.UpdatedAt))
	tw.writef("Synced:\t%s\n", s.SyncedAt.Format(timeLayout))
	return tw.finish()
}

func printSystemState(w io.Writer, s *domain.SystemState) error {
	tw := newTabWriter(w)
	tw.writef("Listings:\t%d (%d active)\n", s.ListingsTotal, s.ListingsActive)
	tw.writef("Sync Runs:\t%d (%d failed)\n", s.SyncRunsTotal, s.SyncRunsFailed)
	tw.writef("Last Sync:\t%s %s\n", formatTime(s.LastSyncAt), s.LastSyncStatus)
	tw.writef("Last Success:\t%s\n", formatTime(s.LastSuccessfulAt))
	return tw.finish()
}

func printQuota(w io.Writer, q *apiclient.Quota) error {
	tw := newTabWriter(w)
	tw.writef("Daily Limit:\t%d\n", q.DailyLimit)
	tw.writef("Used Today:\t%d\n", q.DailyUsed)
	tw.writef("Remaining:\t%d\n", q.Remaining)
	tw.writef("Resets At:\t%s\n", q.ResetAt.UTC().Format(time.RFC3339))
	return tw.finish()
}

func printAuthStatus(w io.Writer, s *apiclient.AuthStatus) error {
	tw := newTabWriter(w)
	tw.writef("Authenticated:\t%v\n", s.Authenticated)
	tw.writef("Refresh Token:\t%v\n", s.HasRefreshToken)
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputRaw pretty-prints a StockX reply exactly as the server relayed it.
// Member order and number literals are kept.
func outputRaw(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("formatting response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

func productLabel(s *domain.ListingSnapshot) string {
	if s.ProductName != "" {
		return s.ProductName
	}
	return s.ProductID
}

func formatAmount(s *domain.ListingSnapshot) string {
	if !s.Amount.Valid {
		return "-"
	}
	if s.Currency == "" {
		return s.Amount.Decimal.StringFixed(2)
	}
	return s.Amount.Decimal.StringFixed(2) + " " + s.Currency
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timeLayout)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
