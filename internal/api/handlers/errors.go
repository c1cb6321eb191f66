package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/sales-tracker/internal/analytics"
	"github.com/donaldgifford/sales-tracker/internal/stockx"
)

const reauthorizeHint = "authorize via GET /api/stockx/oauth/url"

// stockxError maps StockX and analytics failures to HTTP errors. op prefixes
// the message, e.g. "fetching order history".
func stockxError(op string, err error) error {
	if errors.Is(err, stockx.ErrNotAuthenticated) {
		return huma.Error401Unauthorized(op + ": not authenticated with StockX, " + reauthorizeHint)
	}

	var upstream *stockx.UpstreamRequestError
	if errors.As(err, &upstream) && upstream.IsUnauthorized() {
		return huma.Error401Unauthorized(op + ": StockX rejected the access token, refresh or re-authorize")
	}

	switch {
	case errors.Is(err, analytics.ErrInvalidMonth):
		return huma.Error422UnprocessableEntity(op + ": " + err.Error())
	case errors.Is(err, stockx.ErrDailyLimitReached):
		return huma.Error429TooManyRequests(op + ": " + err.Error())
	default:
		return huma.Error502BadGateway(op + ": " + err.Error())
	}
}
