package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestSnapshotQuery_ToSQL(t *testing.T) {
	t.Parallel()

	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		query         SnapshotQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string
		wantDataNotIn []string
	}{
		{
			name:  "empty query uses defaults",
			query: SnapshotQuery{},
			wantDataHas: []string{
				"FROM stockx_listings",
				"ORDER BY synced_at DESC, listing_id",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM stockx_listings",
		},
		{
			name:         "status filter",
			query:        SnapshotQuery{Status: ptr("ACTIVE")},
			wantDataHas:  []string{"WHERE status = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM stockx_listings WHERE status = $1",
			wantArgs:     []any{"ACTIVE"},
		},
		{
			name: "filters combine in fixed order",
			query: SnapshotQuery{
				SyncedSince:   &since,
				InventoryType: ptr("STANDARD"),
				ProductID:     ptr("prod-1"),
				Status:        ptr("ACTIVE"),
			},
			wantDataHas: []string{
				"WHERE status = $1 AND product_id = $2 AND inventory_type = $3 AND synced_at >= $4",
			},
			wantCountSQL: "SELECT COUNT(*) FROM stockx_listings " +
				"WHERE status = $1 AND product_id = $2 AND inventory_type = $3 AND synced_at >= $4",
			wantArgs: []any{"ACTIVE", "prod-1", "STANDARD", since},
		},
		{
			name:         "order by amount",
			query:        SnapshotQuery{OrderBy: "amount"},
			wantDataHas:  []string{"ORDER BY amount DESC NULLS LAST"},
			wantCountSQL: "SELECT COUNT(*) FROM stockx_listings",
		},
		{
			name:          "unknown order by falls back to default",
			query:         SnapshotQuery{OrderBy: "listing_id; DROP TABLE stockx_listings"},
			wantDataHas:   []string{"ORDER BY synced_at DESC"},
			wantDataNotIn: []string{"DROP"},
			wantCountSQL:  "SELECT COUNT(*) FROM stockx_listings",
		},
		{
			name:         "limit is capped and offset floored",
			query:        SnapshotQuery{Limit: 10000, Offset: -5},
			wantDataHas:  []string{"LIMIT 500", "OFFSET 0"},
			wantCountSQL: "SELECT COUNT(*) FROM stockx_listings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			for _, want := range tt.wantDataHas {
				assert.Contains(t, dataSQL, want)
			}
			for _, notWant := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, notWant)
			}
			assert.Equal(t, tt.wantCountSQL, countSQL)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestMigrationVersions(t *testing.T) {
	t.Parallel()

	versions, err := MigrationVersions()
	assert.NoError(t, err)
	assert.Equal(t, []string{"001_stockx.sql", "002_system_state.sql"}, versions)
}
