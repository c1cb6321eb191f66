package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"
)

// OrderHistoryParams holds the order history filters. Zero values are not
// sent and the server defaults apply.
type OrderHistoryParams struct {
	FromDate    string
	ToDate      string
	OrderStatus string
	PageNumber  int
	PageSize    int
	SortBy      string
	SortDir     string
}

func (p *OrderHistoryParams) values() url.Values {
	v := url.Values{}
	setString(v, "fromDate", p.FromDate)
	setString(v, "toDate", p.ToDate)
	setString(v, "orderStatus", p.OrderStatus)
	setInt(v, "pageNumber", p.PageNumber)
	setInt(v, "pageSize", p.PageSize)
	setString(v, "sortBy", p.SortBy)
	setString(v, "sortDir", p.SortDir)
	return v
}

// ListingsParams holds the listings filters. Multi-valued filters are
// comma-separated.
type ListingsParams struct {
	PageNumber      int
	PageSize        int
	ProductIDs      string
	VariantIDs      string
	ListingStatuses string
	InventoryTypes  string
	FromDate        string
	ToDate          string
}

func (p *ListingsParams) values() url.Values {
	v := url.Values{}
	setInt(v, "pageNumber", p.PageNumber)
	setInt(v, "pageSize", p.PageSize)
	setString(v, "productIds", p.ProductIDs)
	setString(v, "variantIds", p.VariantIDs)
	setString(v, "listingStatuses", p.ListingStatuses)
	setString(v, "inventoryTypes", p.InventoryTypes)
	setString(v, "fromDate", p.FromDate)
	setString(v, "toDate", p.ToDate)
	return v
}

// Quota is the StockX API quota state.
type Quota struct {
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
}

// OrderHistory returns one page of StockX order history as StockX sent it.
func (c *Client) OrderHistory(ctx context.Context, p *OrderHistoryParams) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/stockx/history", p.values(), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Listings returns one page of StockX listings as StockX sent it.
func (c *Client) Listings(ctx context.Context, p *ListingsParams) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/stockx/listings", p.values(), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Quota returns today's StockX API usage.
func (c *Client) Quota(ctx context.Context) (*Quota, error) {
	var q Quota
	if err := c.get(ctx, "/api/v1/quota", nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setInt(v url.Values, key string, value int) {
	if value > 0 {
		v.Set(key, strconv.Itoa(value))
	}
}
