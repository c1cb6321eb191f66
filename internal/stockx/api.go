package stockx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/sales-tracker/internal/metrics"
)

const (
	defaultAPIURL = "https://api.stockx.com/v2"
	apiKeyHeader  = "x-api-key"

	// DefaultMaxResponseBytes caps how much of a response body is read.
	DefaultMaxResponseBytes int64 = 8 << 20

	instrumentationName = "github.com/donaldgifford/sales-tracker/internal/stockx"
)

// Client executes authenticated GET requests against the StockX REST API
// and parses the JSON reply into a Document. It holds no per-call state and
// is safe for concurrent use. It performs no authentication itself: callers
// pass an already-valid access token.
type Client struct {
	baseURL     string
	apiKey      string
	client      *http.Client
	rateLimiter *RateLimiter
	maxBody     int64

	tracer   trace.Tracer
	requests metric.Int64Counter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL overrides the default StockX API base URL.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every Get() call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) ClientOption {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// WithMaxResponseBytes caps the response body size. Non-positive values
// keep DefaultMaxResponseBytes.
func WithMaxResponseBytes(n int64) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// NewClient creates a new StockX API client sending apiKey on every call.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: defaultAPIURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		maxBody: DefaultMaxResponseBytes,
		tracer:  otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(c)
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"stockx.client.requests",
		metric.WithDescription("StockX API requests by path and status."),
	)
	if err != nil {
		c.requests = noop.Int64Counter{}
	} else {
		c.requests = counter
	}

	return c
}

// Get issues GET baseURL+path?query with bearer and API key headers.
//
// Errors: ErrNotAuthenticated for an empty token (no I/O is done),
// *UpstreamRequestError for transport failures, oversized bodies and
// non-2xx replies, and
// *MalformedResponseError when a 2xx body is not JSON.
func (c *Client) Get(
	ctx context.Context,
	path string,
	q *Query,
	accessToken string,
) (*Document, error) {
	if accessToken == "" {
		return nil, ErrNotAuthenticated
	}

	ctx, span := c.tracer.Start(ctx, "stockx.get",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("stockx.path", path)),
	)
	defer span.End()

	doc, status, err := c.get(ctx, path, q, accessToken)

	c.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("path", path),
		attribute.Int("status", status),
	))
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return doc, nil
}

func (c *Client) get(
	ctx context.Context,
	path string,
	q *Query,
	accessToken string,
) (*Document, int, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.StockXDailyLimitHits.Inc()
			}
			return nil, 0, fmt.Errorf("rate limit: %w", err)
		}
		metrics.StockXDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	u := c.baseURL + path
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.StockXAPICallsTotal.WithLabelValues(path, "error").Inc()
		return nil, 0, &UpstreamRequestError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	metrics.StockXAPICallsTotal.WithLabelValues(path, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.StockXAPIDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, resp.StatusCode, &UpstreamRequestError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("reading response body: %w", err),
		}
	}

	if int64(len(body)) > c.maxBody {
		return nil, resp.StatusCode, &UpstreamRequestError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w (limit %d bytes)", ErrResponseTooLarge, c.maxBody),
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, resp.StatusCode, &UpstreamRequestError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	doc, err := ParseDocument(body)
	if err != nil {
		return nil, resp.StatusCode, &MalformedResponseError{
			Path: path,
			Body: string(body),
			Err:  err,
		}
	}

	return doc, resp.StatusCode, nil
}
