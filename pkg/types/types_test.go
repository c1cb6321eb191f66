package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

func TestMonthlySummary_JSON(t *testing.T) {
	t.Parallel()

	s := domain.MonthlySummary{
		Month:      "2025-01",
		OrderCount: 3,
		Revenue:    decimal.RequireFromString("35.75"),
	}

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"month":"2025-01","order_count":3,"revenue":"35.75"}`, string(out))
}

func TestSyncRun_Duration(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	run := domain.SyncRun{StartedAt: start, Status: domain.SyncRunning}
	assert.Zero(t, run.Duration())

	done := start.Add(90 * time.Second)
	run.CompletedAt = &done
	assert.Equal(t, 90*time.Second, run.Duration())
}
