// Package store defines the datastore abstraction for sales-tracker.
// Only the listing sync uses it: snapshots of StockX listings and the
// history of sync runs. Callers depend on the Store interface, never on
// the concrete implementation.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SnapshotQuery defines optional filters for listing snapshot queries.
type SnapshotQuery struct {
	Status        *string
	ProductID     *string
	InventoryType *string
	SyncedSince   *time.Time
	Limit         int // default 50
	Offset        int
	OrderBy       string // "synced_at", "amount", "listed_at"
}

// Store defines all data access operations for sales-tracker.
type Store interface {
	// Listing snapshots
	UpsertListingSnapshots(ctx context.Context, snapshots []domain.ListingSnapshot) (int, error)
	GetListingSnapshot(ctx context.Context, listingID string) (*domain.ListingSnapshot, error)
	ListListingSnapshots(ctx context.Context, q *SnapshotQuery) ([]domain.ListingSnapshot, int, error)

	// Sync runs
	InsertSyncRun(ctx context.Context) (id string, err error)
	CompleteSyncRun(ctx context.Context, run *domain.SyncRun) error
	ListSyncRuns(ctx context.Context, limit int) ([]domain.SyncRun, error)
	RecoverStaleSyncRuns(ctx context.Context, olderThan time.Duration) (int, error)

	// Scheduler
	AcquireSchedulerLock(ctx context.Context, jobName, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName, holder string) error

	// System state
	GetSystemState(ctx context.Context) (*domain.SystemState, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
