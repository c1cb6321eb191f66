package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/sales-tracker/internal/stockx"
)

// StockXHandler passes order history and listing queries through to StockX.
type StockXHandler struct {
	orders   stockx.OrderHistory
	listings stockx.ListingSource
}

// NewStockXHandler creates a new StockXHandler.
func NewStockXHandler(orders stockx.OrderHistory, listings stockx.ListingSource) *StockXHandler {
	return &StockXHandler{orders: orders, listings: listings}
}

// OrderHistoryInput holds the order history query parameters.
type OrderHistoryInput struct {
	FromDate    string `query:"fromDate"    doc:"Earliest order date (YYYY-MM-DD)"`
	ToDate      string `query:"toDate"      doc:"Latest order date (YYYY-MM-DD)"`
	OrderStatus string `query:"orderStatus" doc:"StockX order status filter"`
	PageNumber  int    `query:"pageNumber"  doc:"1-based page number"          default:"1"   minimum:"1"`
	PageSize    int    `query:"pageSize"    doc:"Orders per page"              default:"50"  minimum:"1"`
	SortBy      string `query:"sortBy"      doc:"Sort field, e.g. createdAt"`
	SortDir     string `query:"sortDir"     doc:"Sort direction, e.g. asc"     default:"asc"`
}

// ListingsInput holds the listings query parameters. Multi-valued filters
// are comma-separated.
type ListingsInput struct {
	PageNumber                  int    `query:"pageNumber"                  doc:"1-based page number" default:"1"  minimum:"1"`
	PageSize                    int    `query:"pageSize"                    doc:"Listings per page"  default:"25" minimum:"1"`
	ProductIDs                  string `query:"productIds"                  doc:"Product IDs"`
	VariantIDs                  string `query:"variantIds"                  doc:"Variant IDs"`
	BatchIDs                    string `query:"batchIds"                    doc:"Batch IDs"`
	FromDate                    string `query:"fromDate"                    doc:"Earliest listing date (YYYY-MM-DD)"`
	ToDate                      string `query:"toDate"                      doc:"Latest listing date (YYYY-MM-DD)"`
	ListingStatuses             string `query:"listingStatuses"             doc:"Listing statuses, e.g. ACTIVE,INACTIVE"`
	InventoryTypes              string `query:"inventoryTypes"              doc:"Inventory types, e.g. STANDARD,FLEX"`
	InitiatedShipmentDisplayIDs string `query:"initiatedShipmentDisplayIds" doc:"Shipment display IDs"`
}

// DocumentOutput carries a StockX reply verbatim, member order and number
// literals included. Body holds a *stockx.Document.
type DocumentOutput struct {
	Body any `doc:"StockX API response, passed through unchanged"`
}

// OrderHistory returns one page of the seller's order history.
func (h *StockXHandler) OrderHistory(ctx context.Context, input *OrderHistoryInput) (*DocumentOutput, error) {
	doc, err := h.orders.History(ctx, stockx.OrderHistoryRequest{
		FromDate:    input.FromDate,
		ToDate:      input.ToDate,
		OrderStatus: input.OrderStatus,
		PageNumber:  input.PageNumber,
		PageSize:    input.PageSize,
		SortBy:      input.SortBy,
		SortDir:     input.SortDir,
	})
	if err != nil {
		return nil, stockxError("fetching order history", err)
	}
	return &DocumentOutput{Body: doc}, nil
}

// Listings returns one page of the seller's listings.
func (h *StockXHandler) Listings(ctx context.Context, input *ListingsInput) (*DocumentOutput, error) {
	doc, err := h.listings.Listings(ctx, stockx.ListingsRequest{
		PageNumber:                  input.PageNumber,
		PageSize:                    input.PageSize,
		ProductIDs:                  input.ProductIDs,
		VariantIDs:                  input.VariantIDs,
		BatchIDs:                    input.BatchIDs,
		FromDate:                    input.FromDate,
		ToDate:                      input.ToDate,
		ListingStatuses:             input.ListingStatuses,
		InventoryTypes:              input.InventoryTypes,
		InitiatedShipmentDisplayIDs: input.InitiatedShipmentDisplayIDs,
	})
	if err != nil {
		return nil, stockxError("fetching listings", err)
	}
	return &DocumentOutput{Body: doc}, nil
}

// RegisterStockXRoutes registers the StockX passthrough endpoints.
func RegisterStockXRoutes(api huma.API, h *StockXHandler) {
	upstreamErrors := []int{
		http.StatusUnauthorized,
		http.StatusTooManyRequests,
		http.StatusBadGateway,
	}

	huma.Register(api, huma.Operation{
		OperationID: "stockx-order-history",
		Method:      http.MethodGet,
		Path:        "/api/stockx/history",
		Summary:     "Get StockX order history",
		Description: "Returns one page of the seller's historical orders as StockX sent it.",
		Tags:        []string{"stockx"},
		Errors:      upstreamErrors,
	}, h.OrderHistory)

	huma.Register(api, huma.Operation{
		OperationID: "stockx-listings",
		Method:      http.MethodGet,
		Path:        "/api/stockx/listings",
		Summary:     "Get StockX listings",
		Description: "Returns one page of the seller's listings as StockX sent it.",
		Tags:        []string{"stockx"},
		Errors:      upstreamErrors,
	}, h.Listings)
}
