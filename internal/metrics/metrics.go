// Package metrics defines Prometheus metrics for sales-tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sales_tracker"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded, 0 otherwise.",
	})
)

// StockX API metrics.
var (
	StockXAPICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stockx_api_calls_total",
		Help:      "Total StockX API calls by path and HTTP status (\"error\" for transport failures).",
	}, []string{"path", "status"})

	StockXAPIDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stockx_api_duration_seconds",
		Help:      "Duration of StockX API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path"})

	StockXDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stockx_daily_usage",
		Help:      "StockX API calls made in the current UTC day.",
	})

	StockXDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stockx_daily_limit_hits_total",
		Help:      "Total number of times the daily StockX API limit was reached.",
	})

	StockXTokenExchangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stockx_token_exchanges_total",
		Help:      "Total OAuth token exchanges by grant type and result.",
	}, []string{"grant_type", "result"})
)

// Analytics metrics.
var (
	AnalyticsDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analytics_monthly_duration_seconds",
		Help:      "Duration of monthly sales summaries in seconds, upstream calls included.",
		Buckets:   prometheus.DefBuckets,
	})

	AnalyticsOrdersAggregated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_orders_aggregated_total",
		Help:      "Total number of orders counted into monthly summaries.",
	})
)

// Listing sync metrics.
var (
	SyncListingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_listings_total",
		Help:      "Total number of listing snapshots written by the sync job.",
	})

	SyncErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_errors_total",
		Help:      "Total number of failed listing sync runs.",
	})

	SyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sync_duration_seconds",
		Help:      "Duration of listing sync runs in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	SchedulerNextSyncTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_sync_timestamp",
		Help:      "Unix time of the next scheduled listing sync.",
	})
)
