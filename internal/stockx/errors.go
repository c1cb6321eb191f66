package stockx

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotAuthenticated is returned by data calls made before any successful
// token exchange. No network I/O is performed in that case.
var ErrNotAuthenticated = errors.New("not authenticated with StockX")

// ErrResponseTooLarge is wrapped by an UpstreamRequestError when a body
// exceeds the client's size cap.
var ErrResponseTooLarge = errors.New("StockX response body too large")

// AuthExchangeError reports a failed authorization-code or refresh-token
// exchange: the token endpoint was unreachable, answered with a non-2xx
// status, or returned a body without a usable access token.
type AuthExchangeError struct {
	GrantType  string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *AuthExchangeError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf(
			"StockX %s exchange failed (status %d): %v",
			e.GrantType, e.StatusCode, e.Err,
		)
	}
	return fmt.Sprintf("StockX %s exchange failed: %v", e.GrantType, e.Err)
}

func (e *AuthExchangeError) Unwrap() error { return e.Err }

// UpstreamRequestError reports a transport failure or a non-2xx response on
// a data call. StatusCode and Body are zero when no response was received.
type UpstreamRequestError struct {
	Path       string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamRequestError) Error() string {
	if e.StatusCode == 0 || e.Err != nil {
		return fmt.Sprintf("StockX request %s failed: %v", e.Path, e.Err)
	}
	return fmt.Sprintf(
		"StockX API error on %s (status %d): %s",
		e.Path, e.StatusCode, e.Body,
	)
}

func (e *UpstreamRequestError) Unwrap() error { return e.Err }

// IsUnauthorized reports whether StockX rejected the bearer token. Callers
// use it to decide when to invoke AuthClient.Refresh.
func (e *UpstreamRequestError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// MalformedResponseError reports a 2xx response whose body is not valid JSON.
type MalformedResponseError struct {
	Path string
	Body string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("parsing StockX response from %s: %v", e.Path, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
