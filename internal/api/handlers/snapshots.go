package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/sales-tracker/internal/store"
	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

// SnapshotProvider defines the store methods required by the snapshot
// endpoints.
type SnapshotProvider interface {
	GetListingSnapshot(ctx context.Context, listingID string) (*domain.ListingSnapshot, error)
	ListListingSnapshots(ctx context.Context, q *store.SnapshotQuery) ([]domain.ListingSnapshot, int, error)
}

// SnapshotsHandler serves the listing snapshots written by the sync job.
type SnapshotsHandler struct {
	store SnapshotProvider
}

// NewSnapshotsHandler creates a new SnapshotsHandler.
func NewSnapshotsHandler(s SnapshotProvider) *SnapshotsHandler {
	return &SnapshotsHandler{store: s}
}

// --- Input/Output types ---

// ListSnapshotsInput is the input for listing snapshots with optional filters.
type ListSnapshotsInput struct {
	Status        string `query:"status"         doc:"Filter by StockX listing status" enum:"ACTIVE,INACTIVE,MATCHED,COMPLETED,CANCELED,DELETED,"`
	ProductID     string `query:"product_id"     doc:"Filter by StockX product ID"`
	InventoryType string `query:"inventory_type" doc:"Filter by inventory type"`
	Limit         int    `query:"limit"          doc:"Number of results (default 50)"  minimum:"0" maximum:"500"`
	Offset        int    `query:"offset"         doc:"Pagination offset"               minimum:"0"`
	OrderBy       string `query:"order_by"       doc:"Sort field"                      enum:"synced_at,amount,listed_at,"`
}

// ListSnapshotsOutput is the response for listing snapshots.
type ListSnapshotsOutput struct {
	Body struct {
		Listings []domain.ListingSnapshot `json:"listings"`
		Total    int                      `json:"total"`
		Limit    int                      `json:"limit"`
		Offset   int                      `json:"offset"`
	}
}

// GetSnapshotInput is the input for getting a single snapshot.
type GetSnapshotInput struct {
	ID string `path:"id" doc:"StockX listing ID"`
}

// GetSnapshotOutput is the response for getting a single snapshot.
type GetSnapshotOutput struct {
	Body domain.ListingSnapshot
}

// --- Handlers ---

// ListSnapshots returns stored listing snapshots with optional filters.
func (h *SnapshotsHandler) ListSnapshots(
	ctx context.Context,
	input *ListSnapshotsInput,
) (*ListSnapshotsOutput, error) {
	q := &store.SnapshotQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Status != "" {
		q.Status = &input.Status
	}
	if input.ProductID != "" {
		q.ProductID = &input.ProductID
	}
	if input.InventoryType != "" {
		q.InventoryType = &input.InventoryType
	}

	snapshots, total, err := h.store.ListListingSnapshots(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("snapshot query failed: " + err.Error())
	}

	if snapshots == nil {
		snapshots = []domain.ListingSnapshot{}
	}

	resp := &ListSnapshotsOutput{}
	resp.Body.Listings = snapshots
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetSnapshot returns the snapshot of one listing.
func (h *SnapshotsHandler) GetSnapshot(
	ctx context.Context,
	input *GetSnapshotInput,
) (*GetSnapshotOutput, error) {
	snap, err := h.store.GetListingSnapshot(ctx, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("listing snapshot not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("snapshot lookup failed: " + err.Error())
	}

	return &GetSnapshotOutput{Body: *snap}, nil
}

// RegisterSnapshotRoutes registers snapshot endpoints with the Huma API.
func RegisterSnapshotRoutes(api huma.API, h *SnapshotsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-listing-snapshots",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List synced listings",
		Description: "Returns listing snapshots stored by the sync job.",
		Tags:        []string{"sync"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListSnapshots)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing-snapshot",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a synced listing",
		Description: "Returns the stored snapshot of one StockX listing.",
		Tags:        []string{"sync"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetSnapshot)
}
