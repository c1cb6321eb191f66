// Package stockx provides a StockX marketplace client: the OAuth2
// authorization-code token lifecycle, a generic authenticated GET executor,
// and thin clients for the order history and active listings endpoints.
// Everything is abstracted behind interfaces for testability.
package stockx

import (
	"context"
)

// TokenSource supplies the access token used for data calls.
type TokenSource interface {
	AccessToken() (string, bool)
}

// OrderHistory fetches one page of the seller's historical orders.
type OrderHistory interface {
	History(ctx context.Context, req OrderHistoryRequest) (*Document, error)
}

// ListingSource fetches one page of the seller's listings.
type ListingSource interface {
	Listings(ctx context.Context, req ListingsRequest) (*Document, error)
}
