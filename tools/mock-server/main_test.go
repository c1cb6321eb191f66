package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/donaldgifford/sales-tracker/internal/analytics"
	"github.com/donaldgifford/sales-tracker/internal/stockx"
)

var testNewest = time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)

type pageResponse struct {
	Count       int               `json:"count"`
	PageSize    int               `json:"pageSize"`
	PageNumber  int               `json:"pageNumber"`
	HasNextPage bool              `json:"hasNextPage"`
	Orders      []json.RawMessage `json:"orders"`
	Listings    []listing         `json:"listings"`
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer mock-access-1")
	req.Header.Set("x-api-key", "key")
	return req
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder) pageResponse {
	t.Helper()
	var resp pageResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp
}

func TestGenerateFixture(t *testing.T) {
	fx := generateFixture(testNewest, 20, 10)
	if len(fx.Orders) != 20 || len(fx.Listings) != 10 {
		t.Fatalf("orders=%d listings=%d, want 20 and 10", len(fx.Orders), len(fx.Listings))
	}
	if !fx.Orders[0].CreatedAt.Equal(testNewest) {
		t.Errorf("first order at %s, want %s", fx.Orders[0].CreatedAt, testNewest)
	}
	for i := 1; i < len(fx.Orders); i++ {
		if !fx.Orders[i].CreatedAt.Before(fx.Orders[i-1].CreatedAt) {
			t.Fatalf("orders not newest first at %d", i)
		}
	}
	if fx.Orders[1].Amount != "113.00" || fx.Orders[1].Payout.TotalPayout != "101.70" {
		t.Errorf("order 1 amount=%s payout=%s, want 113.00 and 101.70",
			fx.Orders[1].Amount, fx.Orders[1].Payout.TotalPayout)
	}
}

func TestAuthorizeHandler(t *testing.T) {
	handler := authorizeHandler(testLogger())
	q := url.Values{
		"client_id":    {"abc"},
		"redirect_uri": {"http://localhost:8080/api/stockx/oauth/callback"},
		"state":        {"xyz"},
	}
	req := httptest.NewRequest(http.MethodGet, "/authorize?"+q.Encode(), http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusFound)
	}
	want := "http://localhost:8080/api/stockx/oauth/callback?code=mock-code&state=xyz"
	if got := w.Header().Get("Location"); got != want {
		t.Errorf("location=%s, want %s", got, want)
	}
}

func TestAuthorizeHandler_MissingRedirect(t *testing.T) {
	handler := authorizeHandler(testLogger())
	req := httptest.NewRequest(http.MethodGet, "/authorize?client_id=abc", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestTokenHandler(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantError  string
	}{
		{
			name: "authorization code",
			form: url.Values{
				"grant_type": {"authorization_code"}, "code": {"mock-code"},
				"client_id": {"abc"}, "client_secret": {"secret"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "refresh token",
			form: url.Values{
				"grant_type": {"refresh_token"}, "refresh_token": {"mock-refresh-1"},
				"client_id": {"abc"}, "client_secret": {"secret"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing client credentials",
			form:       url.Values{"grant_type": {"authorization_code"}, "code": {"mock-code"}},
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid_client",
		},
		{
			name: "bad code",
			form: url.Values{
				"grant_type": {"authorization_code"}, "code": {"nope"},
				"client_id": {"abc"}, "client_secret": {"secret"},
			},
			wantStatus: http.StatusForbidden,
			wantError:  "invalid_grant",
		},
		{
			name: "unsupported grant",
			form: url.Values{
				"grant_type": {"client_credentials"},
				"client_id":  {"abc"}, "client_secret": {"secret"},
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "unsupported_grant_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var issued atomic.Int64
			handler := tokenHandler(testLogger(), &issued)
			req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status=%d, want %d", w.Code, tt.wantStatus)
			}

			var resp map[string]any
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if tt.wantError != "" {
				if resp["error"] != tt.wantError {
					t.Errorf("error=%v, want %s", resp["error"], tt.wantError)
				}
				return
			}
			if resp["access_token"] != "mock-access-1" {
				t.Errorf("access_token=%v, want mock-access-1", resp["access_token"])
			}
			if resp["refresh_token"] != "mock-refresh-1" {
				t.Errorf("refresh_token=%v, want mock-refresh-1", resp["refresh_token"])
			}
			if resp["token_type"] != "Bearer" {
				t.Errorf("token_type=%v, want Bearer", resp["token_type"])
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	fx := generateFixture(testNewest, 3, 0)
	mux := newMux(testLogger(), fx)

	tests := []struct {
		name   string
		header map[string]string
	}{
		{name: "no headers"},
		{name: "no api key", header: map[string]string{"Authorization": "Bearer mock-access-1"}},
		{name: "foreign token", header: map[string]string{"Authorization": "Bearer real", "x-api-key": "key"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v2/selling/orders/history", http.NoBody)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status=%d, want %d", w.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestOrdersHandler_Pagination(t *testing.T) {
	fx := generateFixture(testNewest, 25, 0)
	handler := ordersHandler(testLogger(), fx.Orders)

	tests := []struct {
		page      string
		wantItems int
		wantNext  bool
	}{
		{page: "1", wantItems: 10, wantNext: true},
		{page: "3", wantItems: 5, wantNext: false},
		{page: "4", wantItems: 0, wantNext: false},
	}

	for _, tt := range tests {
		t.Run("page "+tt.page, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet,
				"/v2/selling/orders/history?pageSize=10&pageNumber="+tt.page, http.NoBody)
			w := httptest.NewRecorder()

			handler(w, req)

			resp := decodePage(t, w)
			if resp.Count != 25 {
				t.Errorf("count=%d, want 25", resp.Count)
			}
			if len(resp.Orders) != tt.wantItems {
				t.Errorf("orders=%d, want %d", len(resp.Orders), tt.wantItems)
			}
			if resp.Orders == nil {
				t.Error("expected empty array, got nil")
			}
			if resp.HasNextPage != tt.wantNext {
				t.Errorf("hasNextPage=%v, want %v", resp.HasNextPage, tt.wantNext)
			}
		})
	}
}

func TestOrdersHandler_DateRangeAndSort(t *testing.T) {
	fx := generateFixture(testNewest, 40, 0)
	handler := ordersHandler(testLogger(), fx.Orders)

	req := httptest.NewRequest(http.MethodGet,
		"/v2/selling/orders/history?fromDate=2025-06-01&toDate=2025-06-30&sortDir=asc&pageSize=100", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	resp := decodePage(t, w)
	if resp.Count != 12 {
		t.Fatalf("count=%d, want 12", resp.Count)
	}

	var first struct {
		CreatedAt time.Time `json:"createdAt"`
	}
	if err := json.Unmarshal(resp.Orders[0], &first); err != nil {
		t.Fatalf("decoding order: %v", err)
	}
	want := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	if !first.CreatedAt.Equal(want) {
		t.Errorf("first createdAt=%s, want %s", first.CreatedAt, want)
	}
}

func TestListingsHandler_Filters(t *testing.T) {
	fx := generateFixture(testNewest, 0, 20)
	handler := listingsHandler(testLogger(), fx.Listings)

	req := httptest.NewRequest(http.MethodGet,
		"/v2/selling/listings?listingStatuses=ACTIVE,MATCHED&inventoryTypes=STANDARD", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	resp := decodePage(t, w)
	if resp.Count == 0 {
		t.Fatal("expected filtered listings")
	}
	for _, l := range resp.Listings {
		if l.Status != "ACTIVE" && l.Status != "MATCHED" {
			t.Errorf("listing %s status=%s, want ACTIVE or MATCHED", l.ListingID, l.Status)
		}
		if l.InventoryType != "STANDARD" {
			t.Errorf("listing %s inventoryType=%s, want STANDARD", l.ListingID, l.InventoryType)
		}
	}
}

// TestMockServer_EndToEnd drives the mock through the real StockX clients:
// authorize, exchange the code, then summarize a month across pages.
func TestMockServer_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(newMux(testLogger(), generateFixture(testNewest, 40, 10)))
	defer srv.Close()

	tokens := stockx.NewTokenStore()
	auth := stockx.NewAuthClient("abc", "secret", "http://localhost:8080/api/stockx/oauth/callback", tokens,
		stockx.WithAuthorizeURL(srv.URL+"/authorize"),
		stockx.WithTokenURL(srv.URL+"/oauth/token"),
		stockx.WithRefreshURL(srv.URL+"/oauth/token"),
	)

	noRedirect := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	resp, err := noRedirect.Get(auth.AuthorizationURL())
	if err != nil {
		t.Fatalf("opening authorization URL: %v", err)
	}
	resp.Body.Close()
	callback, err := url.Parse(resp.Header.Get("Location"))
	if err != nil {
		t.Fatalf("parsing redirect: %v", err)
	}

	ctx := context.Background()
	if _, err := auth.ExchangeCode(ctx, callback.Query().Get("code")); err != nil {
		t.Fatalf("exchanging code: %v", err)
	}
	pair, err := auth.Refresh(ctx, "mock-refresh-1")
	if err != nil {
		t.Fatalf("refreshing: %v", err)
	}
	if pair.AccessToken != "mock-access-2" {
		t.Errorf("access token=%s, want mock-access-2", pair.AccessToken)
	}

	api := stockx.NewClient("key", stockx.WithBaseURL(srv.URL+"/v2"))
	agg := analytics.NewAggregator(
		stockx.NewOrdersClient(api, tokens),
		analytics.WithLocation(time.UTC),
		analytics.WithPageSize(5),
	)

	summaries, err := agg.SummarizeMonth(ctx, "2025-06")
	if err != nil {
		t.Fatalf("summarizing: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries=%d, want 1", len(summaries))
	}
	if summaries[0].OrderCount != 12 {
		t.Errorf("order count=%d, want 12", summaries[0].OrderCount)
	}
	if got := summaries[0].Revenue.StringFixed(2); got != "1434.15" {
		t.Errorf("revenue=%s, want 1434.15", got)
	}
}
