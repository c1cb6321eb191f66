package stockx

import "context"

const (
	orderHistoryPath = "/selling/orders/history"

	defaultPageNumber    = 1
	defaultOrderPageSize = 50
	defaultOrderSortDir  = "asc"
	defaultListPageSize  = 25
)

// OrderHistoryRequest holds the order history filters. Blank strings are
// not sent; zero pagination values fall back to page 1 of 50, and SortDir
// defaults to "asc".
type OrderHistoryRequest struct {
	FromDate    string // YYYY-MM-DD
	ToDate      string // YYYY-MM-DD
	OrderStatus string
	PageNumber  int
	PageSize    int
	SortBy      string
	SortDir     string
}

// Query builds the query string in the endpoint's fixed parameter order.
func (r OrderHistoryRequest) Query() *Query {
	pageNumber := r.PageNumber
	if pageNumber <= 0 {
		pageNumber = defaultPageNumber
	}
	pageSize := r.PageSize
	if pageSize <= 0 {
		pageSize = defaultOrderPageSize
	}
	sortDir := r.SortDir
	if sortDir == "" {
		sortDir = defaultOrderSortDir
	}

	return NewQuery().
		String("fromDate", r.FromDate).
		String("toDate", r.ToDate).
		String("orderStatus", r.OrderStatus).
		Int("pageNumber", pageNumber).
		Int("pageSize", pageSize).
		String("sortBy", r.SortBy).
		String("sortDir", sortDir)
}

// OrdersClient implements OrderHistory over /selling/orders/history.
type OrdersClient struct {
	api    *Client
	tokens TokenSource
}

// NewOrdersClient creates an OrdersClient reading tokens from tokens.
func NewOrdersClient(api *Client, tokens TokenSource) *OrdersClient {
	return &OrdersClient{api: api, tokens: tokens}
}

// History returns one raw page of the seller's order history.
func (c *OrdersClient) History(ctx context.Context, req OrderHistoryRequest) (*Document, error) {
	token, ok := c.tokens.AccessToken()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return c.api.Get(ctx, orderHistoryPath, req.Query(), token)
}
