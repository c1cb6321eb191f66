package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/sales-tracker/internal/engine"
	"github.com/donaldgifford/sales-tracker/internal/stockx"
	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

const (
	defaultSyncRunLimit = 20
	maxSyncRunLimit     = 200
)

// SyncRunsProvider defines the store method required by the sync history
// endpoint.
type SyncRunsProvider interface {
	ListSyncRuns(ctx context.Context, limit int) ([]domain.SyncRun, error)
}

// ListingSyncer runs one listing sync.
type ListingSyncer interface {
	RunListingSync(ctx context.Context) (*domain.SyncRun, error)
}

// SyncHandler serves the listing sync history and the manual trigger.
type SyncHandler struct {
	runs   SyncRunsProvider
	syncer ListingSyncer
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(runs SyncRunsProvider, syncer ListingSyncer) *SyncHandler {
	return &SyncHandler{runs: runs, syncer: syncer}
}

// ListSyncRunsInput limits the history length.
type ListSyncRunsInput struct {
	Limit int `query:"limit" doc:"Number of runs (default 20)" minimum:"0" maximum:"200"`
}

// ListSyncRunsOutput is the response body for the sync history.
type ListSyncRunsOutput struct {
	Body []domain.SyncRun
}

// SyncRunOutput is the response body for a triggered sync.
type SyncRunOutput struct {
	Body *domain.SyncRun
}

// ListSyncRuns returns recent sync runs, newest first.
func (h *SyncHandler) ListSyncRuns(ctx context.Context, input *ListSyncRunsInput) (*ListSyncRunsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultSyncRunLimit
	}
	limit = min(limit, maxSyncRunLimit)

	runs, err := h.runs.ListSyncRuns(ctx, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing sync runs failed: " + err.Error())
	}

	if runs == nil {
		runs = []domain.SyncRun{}
	}

	return &ListSyncRunsOutput{Body: runs}, nil
}

// TriggerSync runs a listing sync now and returns the recorded run.
func (h *SyncHandler) TriggerSync(ctx context.Context, _ *struct{}) (*SyncRunOutput, error) {
	run, err := h.syncer.RunListingSync(ctx)
	switch {
	case err == nil:
		return &SyncRunOutput{Body: run}, nil
	case errors.Is(err, engine.ErrSyncInProgress):
		return nil, huma.Error409Conflict("listing sync failed: " + err.Error())
	case run == nil:
		return nil, huma.Error500InternalServerError("listing sync failed: " + err.Error())
	case errors.Is(err, stockx.ErrDailyLimitReached):
		return nil, huma.Error429TooManyRequests("listing sync failed: " + run.ErrorText)
	default:
		return nil, huma.Error502BadGateway("listing sync failed: " + run.ErrorText)
	}
}

// RegisterSyncRoutes registers listing sync endpoints with the Huma API.
func RegisterSyncRoutes(api huma.API, h *SyncHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-sync-runs",
		Method:      http.MethodGet,
		Path:        "/api/v1/sync/runs",
		Summary:     "List listing sync runs",
		Description: "Returns the listing sync history, newest first.",
		Tags:        []string{"sync"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListSyncRuns)

	huma.Register(api, huma.Operation{
		OperationID: "trigger-sync",
		Method:      http.MethodPost,
		Path:        "/api/v1/sync",
		Summary:     "Trigger a listing sync",
		Description: "Copies the seller's StockX listings into the database and records the run. Fails with 409 while a scheduled sync holds the lock.",
		Tags:        []string{"sync"},
		Errors: []int{
			http.StatusConflict,
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
		},
	}, h.TriggerSync)
}
