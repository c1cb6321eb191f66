package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

// ListSyncRuns returns recent listing sync runs, newest first.
func (c *Client) ListSyncRuns(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var runs []domain.SyncRun
	if err := c.get(ctx, "/api/v1/sync/runs", q, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// TriggerSync runs a listing sync on the server and returns the run.
func (c *Client) TriggerSync(ctx context.Context) (*domain.SyncRun, error) {
	var run domain.SyncRun
	if err := c.post(ctx, "/api/v1/sync", nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// SystemState returns stored listing counts and the latest sync outcome.
func (c *Client) SystemState(ctx context.Context) (*domain.SystemState, error) {
	var state domain.SystemState
	if err := c.get(ctx, "/api/v1/system/state", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}
