package stockx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/sales-tracker/internal/stockx"
)

func authenticatedStore(token string) *stockx.TokenStore {
	s := stockx.NewTokenStore()
	s.Set(stockx.TokenPair{AccessToken: token, RefreshToken: "refresh"})
	return s
}

func TestClient_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, doc *stockx.Document, err error)
	}{
		{
			name: "successful request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/selling/orders/history", r.URL.Path)
				assert.Equal(t, "fromDate=2025-01-01&pageSize=5", r.URL.RawQuery)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				assert.Equal(t, "test-api-key", r.Header.Get("x-api-key"))
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				writeJSON(w, http.StatusOK, `{"orders":[{"orderNumber":"1"}],"hasNextPage":false}`)
			},
			check: func(t *testing.T, doc *stockx.Document, err error) {
				t.Helper()
				require.NoError(t, err)
				assert.Len(t, doc.Get("orders").Items(), 1)
			},
		},
		{
			name: "unauthorized is surfaced as upstream error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusUnauthorized, `{"message":"token expired"}`)
			},
			check: func(t *testing.T, _ *stockx.Document, err error) {
				t.Helper()
				var upErr *stockx.UpstreamRequestError
				require.ErrorAs(t, err, &upErr)
				assert.Equal(t, http.StatusUnauthorized, upErr.StatusCode)
				assert.True(t, upErr.IsUnauthorized())
				assert.Contains(t, upErr.Body, "token expired")
			},
		},
		{
			name: "server error keeps the body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("upstream down"))
			},
			check: func(t *testing.T, _ *stockx.Document, err error) {
				t.Helper()
				var upErr *stockx.UpstreamRequestError
				require.ErrorAs(t, err, &upErr)
				assert.Equal(t, http.StatusServiceUnavailable, upErr.StatusCode)
				assert.False(t, upErr.IsUnauthorized())
				assert.Equal(t, "upstream down", upErr.Body)
				assert.Contains(t, err.Error(), "status 503")
			},
		},
		{
			name: "malformed success body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("<html>not json</html>"))
			},
			check: func(t *testing.T, _ *stockx.Document, err error) {
				t.Helper()
				var malformed *stockx.MalformedResponseError
				require.ErrorAs(t, err, &malformed)
				assert.Equal(t, "/selling/orders/history", malformed.Path)
				assert.Equal(t, "<html>not json</html>", malformed.Body)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := stockx.NewClient("test-api-key", stockx.WithBaseURL(srv.URL+"/"))
			q := stockx.NewQuery().String("fromDate", "2025-01-01").Int("pageSize", 5)

			doc, err := c.Get(context.Background(), "/selling/orders/history", q, "tok")
			tt.check(t, doc, err)
		})
	}
}

func TestClient_Get_ResponseSizeCap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "body at the cap", body: `{"a":"12345"}`},
		{name: "body over the cap", body: `{"a":"123456"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			}))
			defer srv.Close()

			c := stockx.NewClient("test-api-key",
				stockx.WithBaseURL(srv.URL),
				stockx.WithMaxResponseBytes(int64(len(`{"a":"12345"}`))),
			)
			doc, err := c.Get(context.Background(), "/selling/listings", nil, "tok")

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, stockx.KindObject, doc.Kind())
				return
			}

			require.ErrorIs(t, err, stockx.ErrResponseTooLarge)
			var upErr *stockx.UpstreamRequestError
			require.ErrorAs(t, err, &upErr)
			assert.Equal(t, http.StatusOK, upErr.StatusCode)
			assert.Empty(t, upErr.Body)
		})
	}
}

func TestClient_Get_NoTokenDoesNoIO(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	c := stockx.NewClient("key", stockx.WithBaseURL(srv.URL))
	_, err := c.Get(context.Background(), "/selling/listings", nil, "")
	require.ErrorIs(t, err, stockx.ErrNotAuthenticated)
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_Get_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	u := srv.URL
	srv.Close()

	c := stockx.NewClient("key", stockx.WithBaseURL(u))
	_, err := c.Get(context.Background(), "/selling/listings", nil, "tok")

	var upErr *stockx.UpstreamRequestError
	require.ErrorAs(t, err, &upErr)
	assert.Zero(t, upErr.StatusCode)
	require.Error(t, upErr.Unwrap())
}

func TestClient_Get_DailyLimit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	c := stockx.NewClient("key",
		stockx.WithBaseURL(srv.URL),
		stockx.WithRateLimiter(stockx.NewRateLimiter(100, 10, 1)),
	)

	_, err := c.Get(context.Background(), "/selling/listings", nil, "tok")
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "/selling/listings", nil, "tok")
	require.ErrorIs(t, err, stockx.ErrDailyLimitReached)
	assert.Equal(t, int32(1), calls.Load())
}

func TestOrdersClient_History(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/selling/orders/history", r.URL.Path)
		assert.Equal(t, "fromDate=2025-01-01&toDate=2025-01-31&pageNumber=1&pageSize=50&sortDir=asc",
			r.URL.RawQuery)
		assert.Equal(t, "Bearer A", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"orders":[],"hasNextPage":false}`)
	}))
	defer srv.Close()

	api := stockx.NewClient("key", stockx.WithBaseURL(srv.URL))
	orders := stockx.NewOrdersClient(api, authenticatedStore("A"))

	doc, err := orders.History(context.Background(), stockx.OrderHistoryRequest{
		FromDate: "2025-01-01",
		ToDate:   "2025-01-31",
	})
	require.NoError(t, err)
	assert.Empty(t, doc.Get("orders").Items())
}

func TestDataClients_NotAuthenticated(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	api := stockx.NewClient("key", stockx.WithBaseURL(srv.URL))
	store := stockx.NewTokenStore()

	_, err := stockx.NewOrdersClient(api, store).History(context.Background(), stockx.OrderHistoryRequest{})
	require.ErrorIs(t, err, stockx.ErrNotAuthenticated)

	_, err = stockx.NewListingsClient(api, store).Listings(context.Background(), stockx.ListingsRequest{})
	require.ErrorIs(t, err, stockx.ErrNotAuthenticated)

	assert.Equal(t, int32(0), calls.Load())
}

func TestListingsClient_Listings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/selling/listings", r.URL.Path)
		assert.Equal(t, "pageNumber=2&pageSize=25&listingStatuses=ACTIVE", r.URL.RawQuery)
		writeJSON(w, http.StatusOK, `{"listings":[{"listingId":"l-1"}],"hasNextPage":true}`)
	}))
	defer srv.Close()

	api := stockx.NewClient("key", stockx.WithBaseURL(srv.URL))
	listings := stockx.NewListingsClient(api, authenticatedStore("A"))

	doc, err := listings.Listings(context.Background(), stockx.ListingsRequest{
		PageNumber:      2,
		ListingStatuses: "ACTIVE",
	})
	require.NoError(t, err)
	assert.Len(t, doc.Get("listings").Items(), 1)
}
