package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/sales-tracker/internal/stockx"
)

const (
	callbackSuccessRedirect = "/"
	callbackFailureRedirect = "/error"
)

// Authenticator runs the StockX OAuth2 exchanges.
type Authenticator interface {
	AuthorizationURL() string
	ExchangeCode(ctx context.Context, code string) (stockx.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (stockx.TokenPair, error)
}

// TokenReader exposes the tokens held by the process.
type TokenReader interface {
	AccessToken() (string, bool)
	RefreshToken() (string, bool)
}

// AuthHandler serves the StockX OAuth endpoints.
type AuthHandler struct {
	auth   Authenticator
	tokens TokenReader
	log    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth Authenticator, tokens TokenReader, log *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens, log: log}
}

// AuthURLOutput is the response body for the authorization URL endpoint.
type AuthURLOutput struct {
	Body struct {
		URL string `json:"url" doc:"StockX consent page to open in a browser"`
	}
}

// CallbackInput carries the one-time authorization code.
type CallbackInput struct {
	Code string `query:"code" doc:"Authorization code issued by StockX"`
}

// CallbackOutput redirects the browser after the exchange.
type CallbackOutput struct {
	Location string `header:"Location"`
}

// AuthStatusOutput is the response body for the auth status endpoint.
type AuthStatusOutput struct {
	Body struct {
		Authenticated   bool `json:"authenticated"     doc:"An access token is held"`
		HasRefreshToken bool `json:"has_refresh_token" doc:"A refresh token is held"`
	}
}

// RefreshOutput is the response body for the refresh endpoint.
type RefreshOutput struct {
	Body StatusResponse
}

// AuthorizationURL returns the StockX consent URL.
func (h *AuthHandler) AuthorizationURL(_ context.Context, _ *struct{}) (*AuthURLOutput, error) {
	resp := &AuthURLOutput{}
	resp.Body.URL = h.auth.AuthorizationURL()
	return resp, nil
}

// Callback exchanges the code and redirects to "/" on success or "/error"
// on any failure. Failures are logged, never returned to the browser.
func (h *AuthHandler) Callback(ctx context.Context, input *CallbackInput) (*CallbackOutput, error) {
	if input.Code == "" {
		h.log.Warn("oauth callback without code")
		return &CallbackOutput{Location: callbackFailureRedirect}, nil
	}

	if _, err := h.auth.ExchangeCode(ctx, input.Code); err != nil {
		h.log.Error("stockx authorization failed", "error", err)
		return &CallbackOutput{Location: callbackFailureRedirect}, nil
	}

	h.log.Info("stockx authorization succeeded")
	return &CallbackOutput{Location: callbackSuccessRedirect}, nil
}

// Refresh trades the stored refresh token for a new pair.
func (h *AuthHandler) Refresh(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	refreshToken, ok := h.tokens.RefreshToken()
	if !ok {
		return nil, huma.Error409Conflict("no refresh token held, " + reauthorizeHint)
	}

	if _, err := h.auth.Refresh(ctx, refreshToken); err != nil {
		h.log.Error("stockx token refresh failed", "error", err)
		return nil, huma.Error502BadGateway("token refresh failed: " + err.Error())
	}

	h.log.Info("stockx token refreshed")
	return &RefreshOutput{Body: StatusResponse{Status: "refreshed"}}, nil
}

// Status reports whether the process holds StockX tokens.
func (h *AuthHandler) Status(_ context.Context, _ *struct{}) (*AuthStatusOutput, error) {
	resp := &AuthStatusOutput{}
	_, resp.Body.Authenticated = h.tokens.AccessToken()
	_, resp.Body.HasRefreshToken = h.tokens.RefreshToken()
	return resp, nil
}

// RegisterAuthRoutes registers the StockX OAuth endpoints with the Huma API.
func RegisterAuthRoutes(api huma.API, h *AuthHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "stockx-auth-url",
		Method:      http.MethodGet,
		Path:        "/api/stockx/oauth/url",
		Summary:     "Get StockX authorization URL",
		Tags:        []string{"auth"},
	}, h.AuthorizationURL)

	huma.Register(api, huma.Operation{
		OperationID:   "stockx-auth-callback",
		Method:        http.MethodGet,
		Path:          "/api/stockx/oauth/callback",
		Summary:       "StockX OAuth callback",
		Description:   "Exchanges the authorization code and redirects to / on success or /error on failure.",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusFound,
	}, h.Callback)

	huma.Register(api, huma.Operation{
		OperationID: "stockx-auth-refresh",
		Method:      http.MethodPost,
		Path:        "/api/stockx/oauth/refresh",
		Summary:     "Refresh StockX tokens",
		Tags:        []string{"auth"},
		Errors:      []int{http.StatusConflict, http.StatusBadGateway},
	}, h.Refresh)

	huma.Register(api, huma.Operation{
		OperationID: "stockx-auth-status",
		Method:      http.MethodGet,
		Path:        "/api/stockx/oauth/status",
		Summary:     "Get StockX authentication status",
		Tags:        []string{"auth"},
	}, h.Status)
}
