package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/sales-tracker/internal/metrics"
	"github.com/donaldgifford/sales-tracker/internal/store"
)

const (
	listingSyncJob = "listing_sync"

	// Runs still marked running after this long are considered crashed.
	staleRunAge = 2 * time.Hour
)

// Scheduler runs the listing sync periodically. Only one replica runs a
// given job at a time; the others skip it while the store lock is held.
type Scheduler struct {
	cron   *cron.Cron
	syncer *Syncer
	store  store.Store
	log    *slog.Logger
	holder string

	ctx    context.Context
	cancel context.CancelFunc

	syncEntryID cron.EntryID
	lockTTL     time.Duration
}

// NewScheduler creates a Scheduler that runs syncer every interval.
func NewScheduler(
	syncer *Syncer,
	s store.Store,
	interval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("sync interval must be positive (got %s)", interval)
	}

	ctx, cancel := context.WithCancel(context.Background())

	sched := &Scheduler{
		cron:    cron.New(),
		syncer:  syncer,
		store:   s,
		log:     log,
		holder:  lockHolder(),
		ctx:     ctx,
		cancel:  cancel,
		lockTTL: interval,
	}

	id, err := sched.cron.AddFunc("@every "+interval.String(), sched.runListingSync)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("registering listing sync: %w", err)
	}
	sched.syncEntryID = id

	return sched, nil
}

func lockHolder() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return host + "/" + uuid.NewString()
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "holder", s.holder)
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop cancels running jobs and stops the scheduler. The returned context
// is done once running jobs have returned.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	s.cancel()
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes the next scheduled run as a gauge.
func (s *Scheduler) SyncNextRunTimestamps() {
	next := s.cron.Entry(s.syncEntryID).Next
	if !next.IsZero() {
		metrics.SchedulerNextSyncTimestamp.Set(float64(next.Unix()))
	}
}

// RecoverStaleSyncRuns marks runs left over from a crashed process as failed.
func (s *Scheduler) RecoverStaleSyncRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleSyncRuns(ctx, staleRunAge)
	if err != nil {
		s.log.Error("recovering stale sync runs", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("marked stale sync runs as failed", "count", n)
	}
}

func (s *Scheduler) runListingSync() {
	defer s.SyncNextRunTimestamps()

	err := s.runJob(s.ctx, listingSyncJob, s.lockTTL, func(ctx context.Context) error {
		_, err := s.syncer.RunListingSync(ctx)
		return err
	})
	if err != nil {
		s.log.Error("scheduled listing sync failed", "error", err)
	}
}

// runJob runs fn while holding the store lock for jobName. It returns nil
// without calling fn when another holder owns the lock.
func (s *Scheduler) runJob(
	ctx context.Context,
	jobName string,
	ttl time.Duration,
	fn func(context.Context) error,
) error {
	acquired, err := withJobLock(ctx, s.store, s.log, jobName, s.holder, ttl, func(ctx context.Context) error {
		s.log.Info("scheduled job starting", "job", jobName)
		return fn(ctx)
	})
	if !acquired && err == nil {
		s.log.Info("job already running elsewhere, skipping", "job", jobName)
	}
	return err
}
