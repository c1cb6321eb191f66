package stockx

import "context"

const listingsPath = "/selling/listings"

// ListingsRequest holds the active listings filters. Blank strings are not
// sent; zero pagination values fall back to page 1 of 25. Multi-valued
// filters are comma-separated, as StockX expects.
type ListingsRequest struct {
	PageNumber                  int
	PageSize                    int
	ProductIDs                  string
	VariantIDs                  string
	BatchIDs                    string
	FromDate                    string
	ToDate                      string
	ListingStatuses             string
	InventoryTypes              string
	InitiatedShipmentDisplayIDs string
}

// Query builds the query string in the endpoint's fixed parameter order.
func (r ListingsRequest) Query() *Query {
	pageNumber := r.PageNumber
	if pageNumber <= 0 {
		pageNumber = defaultPageNumber
	}
	pageSize := r.PageSize
	if pageSize <= 0 {
		pageSize = defaultListPageSize
	}

	return NewQuery().
		Int("pageNumber", pageNumber).
		Int("pageSize", pageSize).
		String("productIds", r.ProductIDs).
		String("variantIds", r.VariantIDs).
		String("batchIds", r.BatchIDs).
		String("fromDate", r.FromDate).
		String("toDate", r.ToDate).
		String("listingStatuses", r.ListingStatuses).
		String("inventoryTypes", r.InventoryTypes).
		String("initiatedShipmentDisplayIds", r.InitiatedShipmentDisplayIDs)
}

// ListingsClient implements ListingSource over /selling/listings.
type ListingsClient struct {
	api    *Client
	tokens TokenSource
}

// NewListingsClient creates a ListingsClient reading tokens from tokens.
func NewListingsClient(api *Client, tokens TokenSource) *ListingsClient {
	return &ListingsClient{api: api, tokens: tokens}
}

// Listings returns one raw page of the seller's listings.
func (c *ListingsClient) Listings(ctx context.Context, req ListingsRequest) (*Document, error) {
	token, ok := c.tokens.AccessToken()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return c.api.Get(ctx, listingsPath, req.Query(), token)
}
