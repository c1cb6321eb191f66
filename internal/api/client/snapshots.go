package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

// SnapshotParams holds the stored listing filters.
type SnapshotParams struct {
	Status        string
	ProductID     string
	InventoryType string
	Limit         int
	Offset        int
	OrderBy       string
}

func (p *SnapshotParams) values() url.Values {
	v := url.Values{}
	setString(v, "status", p.Status)
	setString(v, "product_id", p.ProductID)
	setString(v, "inventory_type", p.InventoryType)
	setInt(v, "limit", p.Limit)
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	setString(v, "order_by", p.OrderBy)
	return v
}

// SnapshotPage is one page of stored listing snapshots.
type SnapshotPage struct {
	Listings []domain.ListingSnapshot `json:"listings"`
	Total    int                      `json:"total"`
	Limit    int                      `json:"limit"`
	Offset   int                      `json:"offset"`
}

// ListSnapshots returns listing snapshots recorded by the sync job.
func (c *Client) ListSnapshots(ctx context.Context, p *SnapshotParams) (*SnapshotPage, error) {
	var page SnapshotPage
	if err := c.get(ctx, "/api/v1/listings", p.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetSnapshot returns the stored snapshot of one listing.
func (c *Client) GetSnapshot(ctx context.Context, listingID string) (*domain.ListingSnapshot, error) {
	var snap domain.ListingSnapshot
	if err := c.get(ctx, "/api/v1/listings/"+url.PathEscape(listingID), nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
