package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/donaldgifford/sales-tracker/internal/metrics"
	"github.com/donaldgifford/sales-tracker/internal/stockx"
	"github.com/donaldgifford/sales-tracker/internal/store"
	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

const (
	defaultSyncPageSize = 100
	defaultSyncMaxPages = 50
)

// Syncer copies the seller's StockX listings into the store and records
// every run in the sync history.
type Syncer struct {
	store    store.Store
	listings stockx.ListingSource
	log      *slog.Logger

	pageSize int
	maxPages int
	statuses string
	nowFunc  func() time.Time
}

// SyncerOption configures the Syncer.
type SyncerOption func(*Syncer)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) SyncerOption {
	return func(s *Syncer) {
		s.log = l
	}
}

// WithPageSize sets the listings page size.
func WithPageSize(n int) SyncerOption {
	return func(s *Syncer) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithMaxPages caps the pages fetched per run.
func WithMaxPages(n int) SyncerOption {
	return func(s *Syncer) {
		if n > 0 {
			s.maxPages = n
		}
	}
}

// WithListingStatuses restricts the sync to the given comma-separated
// StockX listing statuses.
func WithListingStatuses(statuses string) SyncerOption {
	return func(s *Syncer) {
		s.statuses = statuses
	}
}

// NewSyncer creates a new Syncer with injected dependencies.
func NewSyncer(s store.Store, l stockx.ListingSource, opts ...SyncerOption) *Syncer {
	syncer := &Syncer{
		store:    s,
		listings: l,
		log:      slog.Default(),
		pageSize: defaultSyncPageSize,
		maxPages: defaultSyncMaxPages,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(syncer)
	}
	return syncer
}

// RunListingSync fetches every listing page, upserts the snapshots, and
// completes a sync run describing the outcome. Without StockX credentials
// the run is recorded as skipped and no error is returned.
func (s *Syncer) RunListingSync(ctx context.Context) (*domain.SyncRun, error) {
	start := time.Now()
	defer func() {
		metrics.SyncDuration.Observe(time.Since(start).Seconds())
	}()

	id, err := s.store.InsertSyncRun(ctx)
	if err != nil {
		metrics.SyncErrorsTotal.Inc()
		return nil, fmt.Errorf("starting sync run: %w", err)
	}
	run := &domain.SyncRun{ID: id, StartedAt: start, Status: domain.SyncRunning}

	syncErr := s.sync(ctx, run)

	switch {
	case syncErr == nil:
	case errors.Is(syncErr, stockx.ErrNotAuthenticated):
		s.log.Info("listing sync skipped, StockX not authenticated", "run_id", id)
		run.Status = domain.SyncSkipped
		syncErr = nil
	default:
		if errors.Is(syncErr, stockx.ErrDailyLimitReached) {
			s.log.Warn("daily StockX limit reached, listing sync stopped", "run_id", id)
		} else {
			s.log.Error("listing sync failed", "run_id", id, "error", syncErr)
		}
		metrics.SyncErrorsTotal.Inc()
		run.Status = domain.SyncFailed
		run.ErrorText = syncErr.Error()
	}

	completed := s.nowFunc()
	run.CompletedAt = &completed

	// The run row is completed even when ctx was canceled mid-sync.
	if err := s.store.CompleteSyncRun(context.WithoutCancel(ctx), run); err != nil {
		return run, errors.Join(syncErr, fmt.Errorf("completing sync run: %w", err))
	}

	return run, syncErr
}

func (s *Syncer) sync(ctx context.Context, run *domain.SyncRun) error {
	p := stockx.NewPaginator(stockx.WithMaxPages(s.maxPages))
	result, err := p.Listings(ctx, s.listings, stockx.ListingsRequest{
		PageSize:        s.pageSize,
		ListingStatuses: s.statuses,
	})
	if err != nil {
		return fmt.Errorf("fetching listings: %w", err)
	}
	run.PagesFetched = result.PagesUsed

	syncedAt := s.nowFunc()
	snapshots := make([]domain.ListingSnapshot, 0, len(result.Items))
	for _, item := range result.Items {
		snap, err := ToSnapshot(item, syncedAt)
		if err != nil {
			s.log.Warn("skipping listing", "run_id", run.ID, "error", err)
			continue
		}
		snapshots = append(snapshots, snap)
	}

	n, err := s.store.UpsertListingSnapshots(ctx, snapshots)
	if err != nil {
		return fmt.Errorf("storing listings: %w", err)
	}
	run.ListingsSynced = n
	metrics.SyncListingsTotal.Add(float64(n))

	run.Status = domain.SyncSucceeded
	if result.Truncated() {
		s.log.Warn("listing sync stopped at page limit",
			"run_id", run.ID,
			"max_pages", s.maxPages,
			"listings", n,
		)
		run.Status = domain.SyncTruncated
	}

	s.log.Info("listing sync complete",
		"run_id", run.ID,
		"pages", run.PagesFetched,
		"listings", n,
		"status", run.Status,
	)
	return nil
}
