package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/sales-tracker/api/openapi"
	"github.com/donaldgifford/sales-tracker/internal/analytics"
	"github.com/donaldgifford/sales-tracker/internal/api/handlers"
	"github.com/donaldgifford/sales-tracker/internal/api/middleware"
	"github.com/donaldgifford/sales-tracker/internal/config"
	"github.com/donaldgifford/sales-tracker/internal/engine"
	"github.com/donaldgifford/sales-tracker/internal/stockx"
	"github.com/donaldgifford/sales-tracker/internal/store"
)

// server bundles the HTTP router with the components whose lifetime it
// owns.
type server struct {
	echo      *echo.Echo
	api       huma.API
	store     *store.PostgresStore
	scheduler *engine.Scheduler
	log       *slog.Logger
}

const apiTitle = "sales-tracker API"

// upstreamHTTPClient traces every outbound StockX call.
func upstreamHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

func newAuthClient(cfg config.StockXConfig, tokens *stockx.TokenStore) *stockx.AuthClient {
	return stockx.NewAuthClient(
		cfg.ClientID, cfg.ClientSecret, cfg.RedirectURI, tokens,
		stockx.WithAuthorizeURL(cfg.AuthorizeURL),
		stockx.WithTokenURL(cfg.TokenURL),
		stockx.WithRefreshURL(cfg.RefreshURL),
		stockx.WithAudience(cfg.Audience),
		stockx.WithState(cfg.State),
		stockx.WithAuthHTTPClient(upstreamHTTPClient(cfg.Timeout)),
	)
}

// newServer wires every component named in cfg. The database, and with it
// the snapshot and sync routes, is only set up when database.host is set.
func newServer(ctx context.Context, cfg *config.Config, log *slog.Logger) (*server, error) {
	loc, err := cfg.Analytics.Location()
	if err != nil {
		return nil, err
	}

	tokens := stockx.NewTokenStore()
	auth := newAuthClient(cfg.StockX, tokens)

	limiter := stockx.NewRateLimiter(
		cfg.StockX.RateLimit.PerSecond,
		cfg.StockX.RateLimit.Burst,
		cfg.StockX.RateLimit.DailyLimit,
	)
	apiClient := stockx.NewClient(
		cfg.StockX.APIKey,
		stockx.WithBaseURL(cfg.StockX.APIURL),
		stockx.WithHTTPClient(upstreamHTTPClient(cfg.StockX.Timeout)),
		stockx.WithRateLimiter(limiter),
		stockx.WithMaxResponseBytes(cfg.StockX.MaxResponseBytes),
	)
	orders := stockx.NewOrdersClient(apiClient, tokens)
	listings := stockx.NewListingsClient(apiClient, tokens)

	aggregator := analytics.NewAggregator(
		orders,
		analytics.WithLocation(loc),
		analytics.WithPageSize(cfg.Analytics.PageSize),
		analytics.WithMaxPages(cfg.Analytics.MaxPages),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	srv := &server{echo: e, log: log}

	var pinger handlers.Pinger
	if cfg.Database.Enabled() {
		pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(cfg.Database.PoolSize))
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		srv.store = pg
		pinger = pg
	}

	health := handlers.NewHealthHandler(pinger)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig(apiTitle, Version)
	humaCfg.Info.Description = "StockX order history, listings and monthly sales summaries."
	api := humaecho.New(e, humaCfg)
	srv.api = api
	openapi.RegisterRoutes(e, apiTitle, humaCfg.OpenAPIPath+".json")

	handlers.RegisterAuthRoutes(api, handlers.NewAuthHandler(auth, tokens, log))
	handlers.RegisterStockXRoutes(api, handlers.NewStockXHandler(orders, listings))
	handlers.RegisterAnalyticsRoutes(api, handlers.NewAnalyticsHandler(aggregator))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(limiter))

	if srv.store != nil {
		syncer := engine.NewSyncer(
			srv.store, listings,
			engine.WithLogger(log),
			engine.WithPageSize(cfg.Sync.PageSize),
			engine.WithMaxPages(cfg.Sync.MaxPages),
			engine.WithListingStatuses(cfg.Sync.ListingStatuses),
		)
		manual := engine.NewExclusiveSyncer(syncer, srv.store, cfg.Sync.Interval, log)
		handlers.RegisterSyncRoutes(api, handlers.NewSyncHandler(srv.store, manual))
		handlers.RegisterSnapshotRoutes(api, handlers.NewSnapshotsHandler(srv.store))
		handlers.RegisterSystemStateRoutes(api, handlers.NewSystemStateHandler(srv.store))

		if cfg.Sync.Enabled {
			sched, err := engine.NewScheduler(syncer, srv.store, cfg.Sync.Interval, log)
			if err != nil {
				srv.store.Close()
				return nil, fmt.Errorf("creating scheduler: %w", err)
			}
			srv.scheduler = sched
		}
	}

	return srv, nil
}

// start recovers crashed sync runs and starts the scheduler, if any.
func (s *server) start(ctx context.Context) {
	if s.scheduler == nil {
		return
	}
	s.scheduler.RecoverStaleSyncRuns(ctx)
	s.scheduler.Start()
	s.log.Info("listing sync scheduler started")
}

// shutdown stops the scheduler, waiting for a running sync, then the HTTP
// server and finally the database pool.
func (s *server) shutdown(ctx context.Context) error {
	var errs []error

	if s.scheduler != nil {
		select {
		case <-s.scheduler.Stop().Done():
		case <-ctx.Done():
			errs = append(errs, fmt.Errorf("waiting for scheduler: %w", ctx.Err()))
		}
	}

	if err := s.echo.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down server: %w", err))
	}

	if s.store != nil {
		s.store.Close()
	}

	return errors.Join(errs...)
}
