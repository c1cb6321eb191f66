// Package analytics turns StockX order history into monthly sales summaries.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/donaldgifford/sales-tracker/internal/metrics"
	"github.com/donaldgifford/sales-tracker/internal/stockx"
	domain "github.com/donaldgifford/sales-tracker/pkg/types"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"

	defaultPageSize = 100
	defaultMaxPages = 20
	sortByCreatedAt = "createdAt"
	sortDescending  = "desc"
)

var (
	// ErrInvalidMonth is returned for a month key not formatted as YYYY-MM.
	ErrInvalidMonth = errors.New("month must be formatted as YYYY-MM")

	// ErrPageLimitReached is returned when a month holds more orders than
	// the configured page budget can fetch. Partial sums are never reported.
	ErrPageLimitReached = errors.New("order history exceeds the page limit")

	// ErrMalformedOrder is returned when an order carries a timestamp or
	// payout that is present but cannot be parsed.
	ErrMalformedOrder = errors.New("malformed order")
)

// Aggregator fetches a month of orders and summarizes them. Months are
// bucketed in its location, which defaults to time.Local.
type Aggregator struct {
	orders   stockx.OrderHistory
	loc      *time.Location
	pageSize int
	maxPages int
	nowFunc  func() time.Time
}

// Option configures the Aggregator.
type Option func(*Aggregator)

// WithLocation sets the time zone used to derive month keys.
func WithLocation(loc *time.Location) Option {
	return func(a *Aggregator) {
		if loc != nil {
			a.loc = loc
		}
	}
}

// WithPageSize overrides the order history page size.
func WithPageSize(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.pageSize = n
		}
	}
}

// WithMaxPages overrides the number of pages fetched per month.
func WithMaxPages(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.maxPages = n
		}
	}
}

// WithNowFunc overrides the clock used by CurrentMonth.
func WithNowFunc(f func() time.Time) Option {
	return func(a *Aggregator) {
		a.nowFunc = f
	}
}

// NewAggregator creates an Aggregator reading from orders.
func NewAggregator(orders stockx.OrderHistory, opts ...Option) *Aggregator {
	a := &Aggregator{
		orders:   orders,
		loc:      time.Local,
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Location returns the time zone months are bucketed in.
func (a *Aggregator) Location() *time.Location {
	return a.loc
}

// CurrentMonth returns the month key of the current time.
func (a *Aggregator) CurrentMonth() string {
	return a.nowFunc().In(a.loc).Format(monthLayout)
}

// MonthBounds returns the first and last calendar day of yearMonth.
func MonthBounds(yearMonth string) (first, last time.Time, err error) {
	if len(yearMonth) != len(monthLayout) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, yearMonth)
	}
	first, err = time.Parse(monthLayout, yearMonth)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, yearMonth)
	}
	last = first.AddDate(0, 1, -1)
	return first, last, nil
}

// SummarizeMonth fetches every order StockX reports for yearMonth and
// returns its summary. The result holds at most one element and is empty
// when no order of that month carries a payout.
func (a *Aggregator) SummarizeMonth(ctx context.Context, yearMonth string) ([]domain.MonthlySummary, error) {
	first, last, err := MonthBounds(yearMonth)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		metrics.AnalyticsDuration.Observe(time.Since(start).Seconds())
	}()

	req := stockx.OrderHistoryRequest{
		FromDate:   first.Format(dateLayout),
		ToDate:     last.Format(dateLayout),
		PageNumber: 1,
		PageSize:   a.pageSize,
		SortBy:     sortByCreatedAt,
		SortDir:    sortDescending,
	}

	p := stockx.NewPaginator(stockx.WithMaxPages(a.maxPages))
	result, err := p.OrderHistory(ctx, a.orders, req)
	if err != nil {
		return nil, fmt.Errorf("fetching orders for %s: %w", yearMonth, err)
	}
	if result.Truncated() {
		return nil, fmt.Errorf("%w: %s needs more than %d pages of %d orders",
			ErrPageLimitReached, yearMonth, a.maxPages, a.pageSize)
	}

	summaries, err := Summarize(result.Items, yearMonth, a.loc)
	if err != nil {
		return nil, err
	}

	for _, s := range summaries {
		metrics.AnalyticsOrdersAggregated.Add(float64(s.OrderCount))
	}

	return summaries, nil
}

type bucket struct {
	count   int
	revenue decimal.Decimal
}

// Summarize groups orders by the month of their createdAt in loc and sums
// payout.totalPayout per month. With a non-empty targetMonth, orders of
// other months are dropped. Orders without a timestamp or payout are
// skipped. Summaries are sorted by month; the input order does not matter.
func Summarize(orders []*stockx.Document, targetMonth string, loc *time.Location) ([]domain.MonthlySummary, error) {
	if loc == nil {
		loc = time.Local
	}

	buckets := make(map[string]*bucket)

	for i, order := range orders {
		createdAt, ok := order.Get("createdAt").Text()
		if !ok {
			continue
		}
		ts, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: order %d createdAt %q: %v", ErrMalformedOrder, i, createdAt, err)
		}

		month := ts.In(loc).Format(monthLayout)
		if targetMonth != "" && month != targetMonth {
			continue
		}

		payoutText, ok := order.Path("payout", "totalPayout").Text()
		if !ok {
			continue
		}
		payout, err := decimal.NewFromString(payoutText)
		if err != nil {
			return nil, fmt.Errorf("%w: order %d totalPayout %q: %v", ErrMalformedOrder, i, payoutText, err)
		}

		b, ok := buckets[month]
		if !ok {
			b = &bucket{revenue: decimal.Zero}
			buckets[month] = b
		}
		b.count++
		b.revenue = b.revenue.Add(payout)
	}

	summaries := make([]domain.MonthlySummary, 0, len(buckets))
	for month, b := range buckets {
		summaries = append(summaries, domain.MonthlySummary{
			Month:      month,
			OrderCount: b.count,
			Revenue:    b.revenue,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Month < summaries[j].Month
	})

	return summaries, nil
}
