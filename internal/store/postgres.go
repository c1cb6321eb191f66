package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// Methods require a live Postgres and are covered by the integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures the connection pool.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize overrides the maximum number of pooled connections.
func WithPoolSize(n int) PostgresOption {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = int32(n) //nolint:gosec // bounded by config validation
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(
	ctx context.Context,
	connString string,
	opts ...PostgresOption,
) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertListingSnapshots writes all snapshots in one transaction, inserting
// new listings and overwriting known ones by listing_id. It returns the
// number of rows written.
func (s *PostgresStore) UpsertListingSnapshots(
	ctx context.Context,
	snapshots []domain.ListingSnapshot,
) (int, error) {
	if len(snapshots) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i := range snapshots {
		batch.Queue(queryUpsertListingSnapshot, snapshotArgs(&snapshots[i]))
	}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, batch)
		for i := range snapshots {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return fmt.Errorf("upserting listing %s: %w", snapshots[i].ListingID, err)
			}
		}
		return br.Close()
	})
	if err != nil {
		return 0, fmt.Errorf("upserting listing snapshots: %w", err)
	}

	return len(snapshots), nil
}

func snapshotArgs(l *domain.ListingSnapshot) pgx.NamedArgs {
	raw := []byte(l.Raw)
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	syncedAt := l.SyncedAt
	if syncedAt.IsZero() {
		syncedAt = time.Now()
	}

	return pgx.NamedArgs{
		"listing_id":     l.ListingID,
		"product_id":     nullIfEmpty(l.ProductID),
		"variant_id":     nullIfEmpty(l.VariantID),
		"product_name":   nullIfEmpty(l.ProductName),
		"status":         string(l.Status),
		"inventory_type": nullIfEmpty(l.InventoryType),
		"amount":         l.Amount,
		"currency":       nullIfEmpty(l.Currency),
		"raw":            raw,
		"listed_at":      l.ListedAt,
		"updated_at":     l.UpdatedAt,
		"synced_at":      syncedAt,
	}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GetListingSnapshot returns the snapshot for listingID, or ErrNotFound if
// the listing was never synced.
func (s *PostgresStore) GetListingSnapshot(
	ctx context.Context,
	listingID string,
) (*domain.ListingSnapshot, error) {
	var l domain.ListingSnapshot
	err := scanSnapshot(s.pool.QueryRow(ctx, queryGetListingSnapshot, listingID), &l)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("listing snapshot %s: %w", listingID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting listing snapshot: %w", err)
	}
	return &l, nil
}

// ListListingSnapshots returns one page of snapshots matching q and the
// total number of matches.
func (s *PostgresStore) ListListingSnapshots(
	ctx context.Context,
	q *SnapshotQuery,
) ([]domain.ListingSnapshot, int, error) {
	if q == nil {
		q = &SnapshotQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listing snapshots: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying listing snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []domain.ListingSnapshot{}
	for rows.Next() {
		var l domain.ListingSnapshot
		if err := scanSnapshot(rows, &l); err != nil {
			return nil, 0, fmt.Errorf("scanning listing snapshot: %w", err)
		}
		snapshots = append(snapshots, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating listing snapshots: %w", err)
	}

	return snapshots, total, nil
}

// InsertSyncRun records the start of a listing sync and returns its UUID.
func (s *PostgresStore) InsertSyncRun(ctx context.Context) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertSyncRun).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting sync run: %w", err)
	}
	return id, nil
}

// CompleteSyncRun marks run as finished with its status and counters.
func (s *PostgresStore) CompleteSyncRun(ctx context.Context, run *domain.SyncRun) error {
	_, err := s.pool.Exec(ctx, queryCompleteSyncRun,
		run.ID, string(run.Status), run.PagesFetched, run.ListingsSynced, run.ErrorText,
	)
	if err != nil {
		return fmt.Errorf("completing sync run: %w", err)
	}
	return nil
}

// ListSyncRuns returns the most recent sync runs, newest first.
func (s *PostgresStore) ListSyncRuns(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListSyncRuns, min(limit, maxLimit))
	if err != nil {
		return nil, fmt.Errorf("querying sync runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.SyncRun{}
	for rows.Next() {
		var r domain.SyncRun
		var status string
		if err := rows.Scan(
			&r.ID, &r.StartedAt, &r.CompletedAt, &status,
			&r.PagesFetched, &r.ListingsSynced, &r.ErrorText,
		); err != nil {
			return nil, fmt.Errorf("scanning sync run: %w", err)
		}
		r.Status = domain.SyncStatus(status)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RecoverStaleSyncRuns marks 'running' rows older than olderThan as failed,
// then deletes rows older than 30 days. It returns the number of rows
// marked as failed.
func (s *PostgresStore) RecoverStaleSyncRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleSyncRunsFailed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale sync runs failed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldSyncRuns); err != nil {
		return affected, fmt.Errorf("deleting old sync runs: %w", err)
	}

	return affected, nil
}

// GetSystemState reads the system_state view.
func (s *PostgresStore) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	var st domain.SystemState
	err := s.pool.QueryRow(ctx, queryGetSystemState).Scan(
		&st.ListingsTotal, &st.ListingsActive, &st.SyncRunsTotal, &st.SyncRunsFailed,
		&st.LastSyncAt, &st.LastSyncStatus, &st.LastSuccessfulAt,
	)
	if err != nil {
		return nil, fmt.Errorf("querying system state: %w", err)
	}
	return &st, nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another holder
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scannable, l *domain.ListingSnapshot) error {
	var status string
	var raw []byte
	if err := row.Scan(
		&l.ListingID, &l.ProductID, &l.VariantID, &l.ProductName, &status,
		&l.InventoryType, &l.Amount, &l.Currency, &raw,
		&l.ListedAt, &l.UpdatedAt, &l.SyncedAt,
	); err != nil {
		return err
	}
	l.Status = domain.ListingStatus(status)
	l.Raw = raw
	return nil
}
