package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/donaldgifford/sales-tracker/internal/store"
	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

// ErrSyncInProgress is returned by a manual sync while the scheduler or
// another replica holds the listing sync lock.
var ErrSyncInProgress = errors.New("listing sync already in progress")

// withJobLock runs fn while holding the store lock for jobName. It reports
// false without calling fn when another holder owns the lock.
func withJobLock(
	ctx context.Context,
	s store.Store,
	log *slog.Logger,
	jobName, holder string,
	ttl time.Duration,
	fn func(context.Context) error,
) (bool, error) {
	acquired, err := s.AcquireSchedulerLock(ctx, jobName, holder, ttl)
	if err != nil {
		return false, fmt.Errorf("acquiring lock for %s: %w", jobName, err)
	}
	if !acquired {
		return false, nil
	}
	defer func() {
		if err := s.ReleaseSchedulerLock(context.WithoutCancel(ctx), jobName, holder); err != nil {
			log.Error("releasing scheduler lock", "job", jobName, "error", err)
		}
	}()

	return true, fn(ctx)
}

// ExclusiveSyncer runs the listing sync on demand under the lock the
// Scheduler takes, so a manual run never overlaps a scheduled one.
type ExclusiveSyncer struct {
	syncer *Syncer
	store  store.Store
	log    *slog.Logger
	holder string
	ttl    time.Duration
}

// NewExclusiveSyncer wraps syncer. ttl bounds how long a crashed manual run
// keeps the lock; non-positive values fall back to the stale-run age.
func NewExclusiveSyncer(syncer *Syncer, s store.Store, ttl time.Duration, log *slog.Logger) *ExclusiveSyncer {
	if ttl <= 0 {
		ttl = staleRunAge
	}
	return &ExclusiveSyncer{
		syncer: syncer,
		store:  s,
		log:    log,
		holder: lockHolder(),
		ttl:    ttl,
	}
}

// RunListingSync runs one sync, or returns ErrSyncInProgress without
// touching StockX when the lock is held elsewhere.
func (e *ExclusiveSyncer) RunListingSync(ctx context.Context) (*domain.SyncRun, error) {
	var run *domain.SyncRun
	acquired, err := withJobLock(ctx, e.store, e.log, listingSyncJob, e.holder, e.ttl,
		func(ctx context.Context) error {
			var err error
			run, err = e.syncer.RunListingSync(ctx)
			return err
		})
	if err != nil {
		return run, err
	}
	if !acquired {
		return nil, ErrSyncInProgress
	}
	return run, nil
}
