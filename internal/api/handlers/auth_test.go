package handlers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/sales-tracker/internal/api/handlers"
	"github.com/donaldgifford/sales-tracker/internal/stockx"
)

// fakeAuthenticator is a test double for Authenticator that writes into a
// real TokenStore the way AuthClient does.
type fakeAuthenticator struct {
	store      *stockx.TokenStore
	url        string
	err        error
	gotCode    string
	gotRefresh string
}

func (f *fakeAuthenticator) AuthorizationURL() string { return f.url }

func (f *fakeAuthenticator) ExchangeCode(_ context.Context, code string) (stockx.TokenPair, error) {
	f.gotCode = code
	if f.err != nil {
		return stockx.TokenPair{}, f.err
	}
	pair := stockx.TokenPair{AccessToken: "A-" + code, RefreshToken: "R-" + code}
	f.store.Set(pair)
	return pair, nil
}

func (f *fakeAuthenticator) Refresh(_ context.Context, refreshToken string) (stockx.TokenPair, error) {
	f.gotRefresh = refreshToken
	if f.err != nil {
		return stockx.TokenPair{}, f.err
	}
	pair := stockx.TokenPair{AccessToken: "A2", RefreshToken: refreshToken}
	f.store.Set(pair)
	return pair, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthAPI(t *testing.T, auth *fakeAuthenticator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterAuthRoutes(api, handlers.NewAuthHandler(auth, auth.store, quietLogger()))
	return api
}

func TestAuthHandler_AuthorizationURL(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthenticator{
		store: stockx.NewTokenStore(),
		url:   "https://accounts.stockx.com/authorize?client_id=c",
	}
	api := newAuthAPI(t, auth)

	resp := api.Get("/api/stockx/oauth/url")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"url":"https://accounts.stockx.com/authorize?client_id=c"`)
}

func TestAuthHandler_Callback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		path         string
		exchangeErr  error
		wantLocation string
		wantAuthed   bool
	}{
		{
			name:         "successful exchange redirects home",
			path:         "/api/stockx/oauth/callback?code=abc",
			wantLocation: "/",
			wantAuthed:   true,
		},
		{
			name:         "failed exchange redirects to error page",
			path:         "/api/stockx/oauth/callback?code=abc",
			exchangeErr:  &stockx.AuthExchangeError{GrantType: "authorization_code", StatusCode: 401},
			wantLocation: "/error",
		},
		{
			name:         "missing code redirects to error page",
			path:         "/api/stockx/oauth/callback",
			wantLocation: "/error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := stockx.NewTokenStore()
			auth := &fakeAuthenticator{store: store, err: tt.exchangeErr}
			api := newAuthAPI(t, auth)

			resp := api.Get(tt.path)
			require.Equal(t, http.StatusFound, resp.Code)
			assert.Equal(t, tt.wantLocation, resp.Header().Get("Location"))

			_, authed := store.AccessToken()
			assert.Equal(t, tt.wantAuthed, authed)
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		seed       *stockx.TokenPair
		refreshErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "refreshes with the stored refresh token",
			seed:       &stockx.TokenPair{AccessToken: "A", RefreshToken: "R"},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"refreshed"`,
		},
		{
			name:       "no refresh token held",
			wantStatus: http.StatusConflict,
			wantBody:   "no refresh token held",
		},
		{
			name:       "access token without refresh token",
			seed:       &stockx.TokenPair{AccessToken: "A"},
			wantStatus: http.StatusConflict,
			wantBody:   "no refresh token held",
		},
		{
			name:       "exchange failure",
			seed:       &stockx.TokenPair{AccessToken: "A", RefreshToken: "R"},
			refreshErr: errors.New("connection refused"),
			wantStatus: http.StatusBadGateway,
			wantBody:   "token refresh failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := stockx.NewTokenStore()
			if tt.seed != nil {
				store.Set(*tt.seed)
			}
			auth := &fakeAuthenticator{store: store, err: tt.refreshErr}
			api := newAuthAPI(t, auth)

			resp := api.Post("/api/stockx/oauth/refresh")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "R", auth.gotRefresh)
				token, _ := store.AccessToken()
				assert.Equal(t, "A2", token)
			}
		})
	}
}

func TestAuthHandler_Status(t *testing.T) {
	t.Parallel()

	store := stockx.NewTokenStore()
	api := newAuthAPI(t, &fakeAuthenticator{store: store})

	resp := api.Get("/api/stockx/oauth/status")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"authenticated":false,"has_refresh_token":false`)

	store.Set(stockx.TokenPair{AccessToken: "A", RefreshToken: "R"})

	resp = api.Get("/api/stockx/oauth/status")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"authenticated":true,"has_refresh_token":true`)
}
