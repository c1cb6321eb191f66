package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

// MonthlySales returns the sales summary for month (YYYY-MM). An empty
// month asks for the server's current month.
func (c *Client) MonthlySales(ctx context.Context, month string) ([]domain.MonthlySummary, error) {
	q := url.Values{}
	setString(q, "month", month)

	var summaries []domain.MonthlySummary
	if err := c.get(ctx, "/api/analytics/monthly-sales", q, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
