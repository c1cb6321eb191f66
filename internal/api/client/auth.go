package client

import "context"

// AuthStatus reports whether the server holds StockX tokens.
type AuthStatus struct {
	Authenticated   bool `json:"authenticated"`
	HasRefreshToken bool `json:"has_refresh_token"`
}

// AuthURL returns the StockX consent URL to open in a browser.
func (c *Client) AuthURL(ctx context.Context) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.get(ctx, "/api/stockx/oauth/url", nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// AuthStatus returns the server's StockX authentication state.
func (c *Client) AuthStatus(ctx context.Context) (*AuthStatus, error) {
	var status AuthStatus
	if err := c.get(ctx, "/api/stockx/oauth/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// RefreshAuth asks the server to refresh its StockX tokens.
func (c *Client) RefreshAuth(ctx context.Context) error {
	return c.post(ctx, "/api/stockx/oauth/refresh", nil, nil)
}
