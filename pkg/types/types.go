// Package domain defines the core business types for the sales tracker.
package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary is the aggregated sales result for one calendar month.
// Revenue keeps the exact decimal digits of the summed payouts.
type MonthlySummary struct {
	Month      string          `json:"month"`       // YYYY-MM
	OrderCount int             `json:"order_count"` // >= 0
	Revenue    decimal.Decimal `json:"revenue"`
}

// ListingStatus is the StockX lifecycle state of a listing.
type ListingStatus string

// Listing status constants. StockX may return others; unknown values are
// stored verbatim.
const (
	ListingActive    ListingStatus = "ACTIVE"
	ListingInactive  ListingStatus = "INACTIVE"
	ListingMatched   ListingStatus = "MATCHED"
	ListingCompleted ListingStatus = "COMPLETED"
	ListingCanceled  ListingStatus = "CANCELED"
	ListingDeleted   ListingStatus = "DELETED"
)

// ListingSnapshot is the last synced state of one StockX listing.
type ListingSnapshot struct {
	ListingID     string              `json:"listing_id"               db:"listing_id"`
	ProductID     string              `json:"product_id,omitempty"     db:"product_id"`
	VariantID     string              `json:"variant_id,omitempty"     db:"variant_id"`
	ProductName   string              `json:"product_name,omitempty"   db:"product_name"`
	Status        ListingStatus       `json:"status"                   db:"status"`
	InventoryType string              `json:"inventory_type,omitempty" db:"inventory_type"`
	Amount        decimal.NullDecimal `json:"amount"                   db:"amount"`
	Currency      string              `json:"currency,omitempty"       db:"currency"`

	// Raw is the listing object exactly as StockX returned it.
	Raw json.RawMessage `json:"raw,omitempty" db:"raw"`

	ListedAt  *time.Time `json:"listed_at,omitempty"  db:"listed_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
	SyncedAt  time.Time  `json:"synced_at"            db:"synced_at"`
}

// SyncStatus is the outcome of a listing sync run.
type SyncStatus string

// Sync status constants.
const (
	SyncRunning   SyncStatus = "running"
	SyncSucceeded SyncStatus = "succeeded"
	SyncTruncated SyncStatus = "truncated"
	SyncFailed    SyncStatus = "failed"
	SyncSkipped   SyncStatus = "skipped"
)

// SyncRun records one execution of the listing sync job.
type SyncRun struct {
	ID             string     `json:"id"                     db:"id"`
	StartedAt      time.Time  `json:"started_at"             db:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	Status         SyncStatus `json:"status"                 db:"status"`
	PagesFetched   int        `json:"pages_fetched"          db:"pages_fetched"`
	ListingsSynced int        `json:"listings_synced"        db:"listings_synced"`
	ErrorText      string     `json:"error_text,omitempty"   db:"error_text"`
}

// Duration returns how long the run took, or zero while it is running.
func (r *SyncRun) Duration() time.Duration {
	if r.CompletedAt == nil {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}

// SystemState holds a precomputed snapshot of aggregate sync metrics.
type SystemState struct {
	ListingsTotal    int        `json:"listings_total"               db:"listings_total"`
	ListingsActive   int        `json:"listings_active"              db:"listings_active"`
	SyncRunsTotal    int        `json:"sync_runs_total"              db:"sync_runs_total"`
	SyncRunsFailed   int        `json:"sync_runs_failed"             db:"sync_runs_failed"`
	LastSyncAt       *time.Time `json:"last_sync_at,omitempty"       db:"last_sync_at"`
	LastSyncStatus   string     `json:"last_sync_status,omitempty"   db:"last_sync_status"`
	LastSuccessfulAt *time.Time `json:"last_successful_at,omitempty" db:"last_successful_at"`
}
