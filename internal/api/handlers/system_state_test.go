package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/sales-tracker/internal/api/handlers"
	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

type mockSystemStateProvider struct {
	state *domain.SystemState
	err   error
}

func (m *mockSystemStateProvider) GetSystemState(_ context.Context) (*domain.SystemState, error) {
	return m.state, m.err
}

func TestGetSystemState_Success(t *testing.T) {
	t.Parallel()

	last := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	state := &domain.SystemState{
		ListingsTotal:  120,
		ListingsActive: 48,
		SyncRunsTotal:  9,
		SyncRunsFailed: 1,
		LastSyncAt:     &last,
		LastSyncStatus: string(domain.SyncSucceeded),
	}

	h := handlers.NewSystemStateHandler(&mockSystemStateProvider{state: state})

	_, api := humatest.New(t)
	handlers.RegisterSystemStateRoutes(api, h)

	resp := api.Get("/api/v1/system/state")
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, `"listings_active":48`)
	assert.Contains(t, body, `"sync_runs_failed":1`)
	assert.Contains(t, body, `"last_sync_at":"2025-06-15T12:00:00Z"`)
	assert.NotContains(t, body, "last_successful_at")
}

func TestGetSystemState_Error(t *testing.T) {
	t.Parallel()

	h := handlers.NewSystemStateHandler(&mockSystemStateProvider{err: errors.New("db error")})

	_, api := humatest.New(t)
	handlers.RegisterSystemStateRoutes(api, h)

	resp := api.Get("/api/v1/system/state")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}
