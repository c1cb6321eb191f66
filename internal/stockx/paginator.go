package stockx

import (
	"context"
	"fmt"
)

const defaultMaxPages = 20

// Stop reasons reported in PageResult.StoppedAt.
const (
	StopLastPage = "last_page"
	StopMaxPages = "max_pages"
)

// PageFetcher fetches one page by its 1-based page number.
type PageFetcher func(ctx context.Context, pageNumber int) (*Document, error)

// Paginator walks StockX pages until the API reports no further page or
// the page budget is spent.
type Paginator struct {
	maxPages int
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithMaxPages overrides the default max pages.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		if n > 0 {
			p.maxPages = n
		}
	}
}

// NewPaginator creates a new Paginator.
func NewPaginator(opts ...PaginatorOption) *Paginator {
	p := &Paginator{maxPages: defaultMaxPages}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PageResult holds the items collected across pages.
type PageResult struct {
	Items     []*Document
	PagesUsed int
	StoppedAt string // StopLastPage or StopMaxPages
}

// Truncated reports whether more pages were available when the budget ran out.
func (r *PageResult) Truncated() bool {
	return r.StoppedAt == StopMaxPages
}

// Collect fetches pages starting at firstPage and gathers the array under
// itemsKey from each one. A page is the last one when it reports
// "hasNextPage": false or, without that field, holds fewer than pageSize items.
func (p *Paginator) Collect(
	ctx context.Context,
	itemsKey string,
	firstPage, pageSize int,
	fetch PageFetcher,
) (*PageResult, error) {
	if firstPage <= 0 {
		firstPage = defaultPageNumber
	}

	result := &PageResult{}

	for page := firstPage; page < firstPage+p.maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := fetch(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		result.PagesUsed++

		items := doc.Get(itemsKey).Items()
		result.Items = append(result.Items, items...)

		if !hasNextPage(doc, len(items), pageSize) {
			result.StoppedAt = StopLastPage
			return result, nil
		}
	}

	result.StoppedAt = StopMaxPages
	return result, nil
}

// OrderHistory collects every order matching req, starting at req.PageNumber.
func (p *Paginator) OrderHistory(
	ctx context.Context,
	src OrderHistory,
	req OrderHistoryRequest,
) (*PageResult, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = defaultOrderPageSize
	}
	return p.Collect(ctx, "orders", req.PageNumber, pageSize,
		func(ctx context.Context, page int) (*Document, error) {
			r := req
			r.PageNumber = page
			return src.History(ctx, r)
		})
}

// Listings collects every listing matching req, starting at req.PageNumber.
func (p *Paginator) Listings(
	ctx context.Context,
	src ListingSource,
	req ListingsRequest,
) (*PageResult, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = defaultListPageSize
	}
	return p.Collect(ctx, "listings", req.PageNumber, pageSize,
		func(ctx context.Context, page int) (*Document, error) {
			r := req
			r.PageNumber = page
			return src.Listings(ctx, r)
		})
}

func hasNextPage(doc *Document, itemCount, pageSize int) bool {
	if next, ok := doc.Get("hasNextPage").BoolValue(); ok {
		return next && itemCount > 0
	}
	return itemCount > 0 && itemCount >= pageSize
}
