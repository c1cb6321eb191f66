package store

// SQL query constants organized by entity.
// PostgresStore methods reference these constants.

// Listing snapshot queries.
const (
	queryUpsertListingSnapshot = `
		INSERT INTO stockx_listings (
			listing_id, product_id, variant_id, product_name, status,
			inventory_type, amount, currency, raw, listed_at, updated_at, synced_at
		) VALUES (
			@listing_id, @product_id, @variant_id, @product_name, @status,
			@inventory_type, @amount, @currency, @raw, @listed_at, @updated_at, @synced_at
		)
		ON CONFLICT (listing_id) DO UPDATE SET
			product_id     = EXCLUDED.product_id,
			variant_id     = EXCLUDED.variant_id,
			product_name   = EXCLUDED.product_name,
			status         = EXCLUDED.status,
			inventory_type = EXCLUDED.inventory_type,
			amount         = EXCLUDED.amount,
			currency       = EXCLUDED.currency,
			raw            = EXCLUDED.raw,
			listed_at      = EXCLUDED.listed_at,
			updated_at     = EXCLUDED.updated_at,
			synced_at      = EXCLUDED.synced_at`

	queryGetListingSnapshot = baseSnapshotsSelect + `
		WHERE listing_id = $1`
)

// Sync run queries.
const (
	queryInsertSyncRun = `
		INSERT INTO sync_runs DEFAULT VALUES
		RETURNING id`

	queryCompleteSyncRun = `
		UPDATE sync_runs SET
			completed_at    = now(),
			status          = $2,
			pages_fetched   = $3,
			listings_synced = $4,
			error_text      = NULLIF($5, '')
		WHERE id = $1`

	queryListSyncRuns = `
		SELECT id, started_at, completed_at, status, pages_fetched,
			listings_synced, COALESCE(error_text, '')
		FROM sync_runs
		ORDER BY started_at DESC
		LIMIT $1`

	queryMarkStaleSyncRunsFailed = `
		UPDATE sync_runs SET
			status       = 'failed',
			completed_at = now(),
			error_text   = 'interrupted before completion'
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldSyncRuns = `
		DELETE FROM sync_runs WHERE started_at < now() - interval '30 days'`
)

// Scheduler lock queries.
const (
	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)

// System state queries.
const (
	queryGetSystemState = `
		SELECT listings_total, listings_active, sync_runs_total, sync_runs_failed,
			last_sync_at, COALESCE(last_sync_status, ''), last_successful_at
		FROM system_state`
)
