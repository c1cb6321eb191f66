// Package main implements a mock StockX API server for local development.
// It generates a deterministic order history and listing set and serves
// them behind a fake OAuth2 authorization-code flow, so sales-tracker can
// run end to end without real StockX credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

type payout struct {
	TotalPayout  string `json:"totalPayout"`
	SalePrice    string `json:"salePrice"`
	CurrencyCode string `json:"currencyCode"`
}

type product struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
}

type variant struct {
	VariantID    string `json:"variantId"`
	VariantValue string `json:"variantValue"`
}

type order struct {
	OrderNumber  string    `json:"orderNumber"`
	ListingID    string    `json:"listingId"`
	Amount       string    `json:"amount"`
	CurrencyCode string    `json:"currencyCode"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	Product      product   `json:"product"`
	Variant      variant   `json:"variant"`
	Payout       payout    `json:"payout"`
}

type listing struct {
	ListingID     string    `json:"listingId"`
	Status        string    `json:"status"`
	Amount        string    `json:"amount"`
	CurrencyCode  string    `json:"currencyCode"`
	InventoryType string    `json:"inventoryType"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Product       product   `json:"product"`
	Variant       variant   `json:"variant"`
}

type fixture struct {
	Orders   []order
	Listings []listing
}

var (
	products = []product{
		{ProductID: "p-jordan-1", ProductName: "Jordan 1 Retro High OG Chicago"},
		{ProductID: "p-dunk-low", ProductName: "Nike Dunk Low Panda"},
		{ProductID: "p-yeezy-350", ProductName: "adidas Yeezy Boost 350 V2 Onyx"},
		{ProductID: "p-nb-550", ProductName: "New Balance 550 White Green"},
	}
	listingStatuses = []string{"ACTIVE", "ACTIVE", "INACTIVE", "MATCHED", "COMPLETED"}
	inventoryTypes  = []string{"STANDARD", "FLEX"}
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	orderCount := flag.Int("orders", 240, "number of generated orders")
	listingCount := flag.Int("listings", 60, "number of generated listings")
	until := flag.String("until", "", "newest order date (YYYY-MM-DD, default today)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	newest := time.Now().UTC()
	if *until != "" {
		t, err := time.Parse(time.DateOnly, *until)
		if err != nil {
			logger.Error("invalid -until", "value", *until, "error", err)
			os.Exit(1)
		}
		newest = t.Add(20 * time.Hour)
	}

	fx := generateFixture(newest, *orderCount, *listingCount)
	logger.Info("generated fixture", "orders", len(fx.Orders), "listings", len(fx.Listings))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock StockX server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fx)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fx *fixture) *http.ServeMux {
	var issued atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("GET /authorize", authorizeHandler(logger))
	mux.HandleFunc("POST /oauth/token", tokenHandler(logger, &issued))
	mux.Handle("GET /v2/selling/orders/history", requireAuth(logger, ordersHandler(logger, fx.Orders)))
	mux.Handle("GET /v2/selling/listings", requireAuth(logger, listingsHandler(logger, fx.Listings)))
	return mux
}

// generateFixture builds orders newest first, roughly one every 31 hours
// back from newest, and a listing set cycling through every status.
func generateFixture(newest time.Time, orderCount, listingCount int) *fixture {
	fx := &fixture{
		Orders:   make([]order, 0, orderCount),
		Listings: make([]listing, 0, listingCount),
	}

	for i := range orderCount {
		p := products[i%len(products)]
		cents := 10000 + (i%7)*1250 + (i%3)*50
		fx.Orders = append(fx.Orders, order{
			OrderNumber:  fmt.Sprintf("%08d-%08d", 1000+i, 5000+i),
			ListingID:    fmt.Sprintf("l-sold-%04d", i),
			Amount:       formatCents(cents),
			CurrencyCode: "USD",
			Status:       "COMPLETED",
			CreatedAt:    newest.Add(-time.Duration(i) * 31 * time.Hour).Truncate(time.Second),
			Product:      p,
			Variant:      variant{VariantID: fmt.Sprintf("v-%s-%d", p.ProductID, 8+i%5), VariantValue: strconv.Itoa(8 + i%5)},
			Payout: payout{
				TotalPayout:  formatCents(cents * 9 / 10),
				SalePrice:    formatCents(cents),
				CurrencyCode: "USD",
			},
		})
	}

	for i := range listingCount {
		p := products[i%len(products)]
		created := newest.Add(-time.Duration(i) * 7 * time.Hour).Truncate(time.Second)
		fx.Listings = append(fx.Listings, listing{
			ListingID:     fmt.Sprintf("l-%04d", i),
			Status:        listingStatuses[i%len(listingStatuses)],
			Amount:        formatCents(12000 + (i%9)*500),
			CurrencyCode:  "USD",
			InventoryType: inventoryTypes[i%len(inventoryTypes)],
			CreatedAt:     created,
			UpdatedAt:     created.Add(90 * time.Minute),
			Product:       p,
			Variant:       variant{VariantID: fmt.Sprintf("v-%s-%d", p.ProductID, 8+i%5), VariantValue: strconv.Itoa(8 + i%5)},
		})
	}

	return fx
}

func formatCents(c int) string {
	return fmt.Sprintf("%d.%02d", c/100, c%100)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

// authorizeHandler skips the consent screen and sends the browser straight
// back to redirect_uri with a code.
func authorizeHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		redirect, err := url.Parse(q.Get("redirect_uri"))
		if err != nil || redirect.Scheme == "" || q.Get("client_id") == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "invalid_request",
				"error_description": "client_id and an absolute redirect_uri are required",
			})
			return
		}

		back := redirect.Query()
		back.Set("code", "mock-code")
		if state := q.Get("state"); state != "" {
			back.Set("state", state)
		}
		redirect.RawQuery = back.Encode()

		logger.Info("authorized", "client_id", q.Get("client_id"), "redirect", redirect.String())
		http.Redirect(w, r, redirect.String(), http.StatusFound)
	}
}

// tokenHandler serves both grants on one endpoint. Client credentials are
// expected in the form body and are not verified.
func tokenHandler(logger *slog.Logger, issued *atomic.Int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
			return
		}

		if r.PostForm.Get("client_id") == "" || r.PostForm.Get("client_secret") == "" {
			logger.Warn("token request missing client credentials")
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error":             "invalid_client",
				"error_description": "client authentication failed",
			})
			return
		}

		grant := r.PostForm.Get("grant_type")
		switch grant {
		case "authorization_code":
			if r.PostForm.Get("code") != "mock-code" {
				writeJSON(w, http.StatusForbidden, map[string]string{
					"error":             "invalid_grant",
					"error_description": "invalid authorization code",
				})
				return
			}
		case "refresh_token":
			if !strings.HasPrefix(r.PostForm.Get("refresh_token"), "mock-refresh-") {
				writeJSON(w, http.StatusForbidden, map[string]string{
					"error":             "invalid_grant",
					"error_description": "unknown refresh token",
				})
				return
			}
		default:
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported_grant_type"})
			return
		}

		n := issued.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":  "mock-access-" + strconv.FormatInt(n, 10),
			"refresh_token": "mock-refresh-" + strconv.FormatInt(n, 10),
			"id_token":      "mock-id-" + strconv.FormatInt(n, 10),
			"scope":         "offline_access openid",
			"expires_in":    43200,
			"token_type":    "Bearer",
		})
		logger.Info("issued mock token", "grant_type", grant, "n", n)
	}
}

// requireAuth rejects data calls without a mock bearer token or API key.
func requireAuth(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || !strings.HasPrefix(token, "mock-access-") || r.Header.Get("x-api-key") == "" {
			logger.Warn("rejected unauthenticated request", "path", r.URL.Path)
			writeJSON(w, http.StatusUnauthorized, map[string]string{"errorMessage": "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

type pageParams struct {
	number int
	size   int
}

func readPage(q url.Values, defaultSize int) pageParams {
	p := pageParams{number: 1, size: defaultSize}
	if v, err := strconv.Atoi(q.Get("pageNumber")); err == nil && v > 0 {
		p.number = v
	}
	if v, err := strconv.Atoi(q.Get("pageSize")); err == nil && v > 0 {
		p.size = v
	}
	return p
}

func paginate[T any](items []T, p pageParams) ([]T, bool) {
	start := (p.number - 1) * p.size
	if start >= len(items) {
		return []T{}, false
	}
	end := min(start+p.size, len(items))
	return items[start:end], end < len(items)
}

// inDateRange reports whether t falls within the inclusive YYYY-MM-DD
// bounds. Empty or unparsable bounds are open.
func inDateRange(t time.Time, from, to string) bool {
	day := t.UTC().Format(time.DateOnly)
	if _, err := time.Parse(time.DateOnly, from); err == nil && day < from {
		return false
	}
	if _, err := time.Parse(time.DateOnly, to); err == nil && day > to {
		return false
	}
	return true
}

func ordersHandler(logger *slog.Logger, orders []order) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page := readPage(q, 10)
		from, to := q.Get("fromDate"), q.Get("toDate")
		status := q.Get("orderStatus")

		var matched []order
		for i := range orders {
			if !inDateRange(orders[i].CreatedAt, from, to) {
				continue
			}
			if status != "" && !strings.EqualFold(status, orders[i].Status) {
				continue
			}
			matched = append(matched, orders[i])
		}

		asc := strings.EqualFold(q.Get("sortDir"), "asc")
		sort.SliceStable(matched, func(i, j int) bool {
			if asc {
				return matched[i].CreatedAt.Before(matched[j].CreatedAt)
			}
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})

		items, more := paginate(matched, page)
		writeJSON(w, http.StatusOK, map[string]any{
			"count":       len(matched),
			"pageSize":    page.size,
			"pageNumber":  page.number,
			"hasNextPage": more,
			"orders":      items,
		})
		logger.Info("order history", "from", from, "to", to, "matched", len(matched), "returned", len(items), "page", page.number)
	}
}

func listingsHandler(logger *slog.Logger, listings []listing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page := readPage(q, 100)
		statuses := splitFilter(q.Get("listingStatuses"))
		productIDs := splitFilter(q.Get("productIds"))
		inventory := splitFilter(q.Get("inventoryTypes"))

		var matched []listing
		for i := range listings {
			l := &listings[i]
			if !matchFilter(statuses, l.Status) ||
				!matchFilter(productIDs, l.Product.ProductID) ||
				!matchFilter(inventory, l.InventoryType) {
				continue
			}
			matched = append(matched, *l)
		}

		items, more := paginate(matched, page)
		writeJSON(w, http.StatusOK, map[string]any{
			"count":       len(matched),
			"pageSize":    page.size,
			"pageNumber":  page.number,
			"hasNextPage": more,
			"listings":    items,
		})
		logger.Info("listings", "matched", len(matched), "returned", len(items), "page", page.number)
	}
}

func splitFilter(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func matchFilter(allowed []string, v string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if strings.EqualFold(a, v) {
			return true
		}
	}
	return false
}
