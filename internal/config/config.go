// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // analytics.time_zone must resolve on hosts without zoneinfo

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/sales-tracker/pkg/logger"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	StockX    StockXConfig    `yaml:"stockx"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Sync      SyncConfig      `yaml:"sync"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings. The database is
// optional: without a host the server runs without listing sync history.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// Enabled reports whether a database is configured.
func (d *DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// StockXConfig defines StockX API and OAuth2 settings.
type StockXConfig struct {
	APIURL       string          `yaml:"api_url"`
	APIKey       string          `yaml:"api_key"`
	ClientID     string          `yaml:"client_id"`
	ClientSecret string          `yaml:"client_secret"`
	RedirectURI  string          `yaml:"redirect_uri"`
	AuthorizeURL string          `yaml:"authorize_url"`
	TokenURL     string          `yaml:"token_url"`
	RefreshURL   string          `yaml:"refresh_url"`
	Audience     string          `yaml:"audience"`
	State        string          `yaml:"state"`
	Timeout      time.Duration   `yaml:"timeout"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`

	MaxResponseBytes int64 `yaml:"max_response_bytes"`
}

// RateLimitConfig defines StockX API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// AnalyticsConfig defines how monthly summaries fetch and bucket orders.
type AnalyticsConfig struct {
	PageSize int    `yaml:"page_size"`
	MaxPages int    `yaml:"max_pages"`
	TimeZone string `yaml:"time_zone"` // IANA name; empty means process local
}

// Location resolves TimeZone. An empty value yields time.Local.
func (a *AnalyticsConfig) Location() (*time.Location, error) {
	if a.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(a.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", a.TimeZone, err)
	}
	return loc, nil
}

// SyncConfig defines the periodic listing sync job.
type SyncConfig struct {
	Enabled         bool          `yaml:"enabled"` // default: false
	Interval        time.Duration `yaml:"interval"`
	PageSize        int           `yaml:"page_size"`
	MaxPages        int           `yaml:"max_pages"`
	ListingStatuses string        `yaml:"listing_statuses"`
}

// TracingConfig defines the OpenTelemetry OTLP exporter.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"` // host:port of the OTLP gRPC collector
	Insecure    bool   `yaml:"insecure"`
	ServiceName string `yaml:"service_name"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyStockXDefaults(&cfg.StockX)
	applyAnalyticsDefaults(&cfg.Analytics)
	applySyncDefaults(&cfg.Sync)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 60 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyStockXDefaults(s *StockXConfig) {
	if s.APIURL == "" {
		s.APIURL = "https://api.stockx.com/v2"
	}
	if s.AuthorizeURL == "" {
		s.AuthorizeURL = "https://accounts.stockx.com/authorize"
	}
	if s.TokenURL == "" {
		s.TokenURL = "https://accounts.stockx.com/oauth/token" //nolint:gosec // not a credential
	}
	if s.RefreshURL == "" {
		s.RefreshURL = "https://gateway.stockx.com/oauth/token" //nolint:gosec // not a credential
	}
	if s.Audience == "" {
		s.Audience = "gateway.stockx.com"
	}
	if s.State == "" {
		s.State = "xyz"
	}
	if s.Timeout == 0 {
		s.Timeout = 30 * time.Second
	}
	if s.MaxResponseBytes == 0 {
		s.MaxResponseBytes = 8 << 20
	}
	applyRateLimitDefaults(&s.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 1.0
	}
	if r.Burst == 0 {
		r.Burst = 5
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 25000
	}
}

func applyAnalyticsDefaults(a *AnalyticsConfig) {
	if a.PageSize == 0 {
		a.PageSize = 100
	}
	if a.MaxPages == 0 {
		a.MaxPages = 20
	}
}

func applySyncDefaults(s *SyncConfig) {
	if s.Interval == 0 {
		s.Interval = time.Hour
	}
	if s.PageSize == 0 {
		s.PageSize = 100
	}
	if s.MaxPages == 0 {
		s.MaxPages = 50
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "sales-tracker"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.StockX.APIKey == "" {
		errs = append(errs, errors.New("stockx.api_key is required"))
	}
	if cfg.StockX.ClientID == "" {
		errs = append(errs, errors.New("stockx.client_id is required"))
	}
	if cfg.StockX.ClientSecret == "" {
		errs = append(errs, errors.New("stockx.client_secret is required"))
	}
	if cfg.StockX.RedirectURI == "" {
		errs = append(errs, errors.New("stockx.redirect_uri is required"))
	}

	if cfg.StockX.MaxResponseBytes < 0 {
		errs = append(errs, errors.New("stockx.max_response_bytes must be positive"))
	}

	if cfg.Database.Enabled() {
		if cfg.Database.Name == "" {
			errs = append(errs, errors.New("database.name is required when database.host is set"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, errors.New("database.user is required when database.host is set"))
		}
	}

	if cfg.Analytics.PageSize < 0 || cfg.Analytics.MaxPages < 0 {
		errs = append(errs, errors.New("analytics.page_size and analytics.max_pages must be positive"))
	}
	if _, err := cfg.Analytics.Location(); err != nil {
		errs = append(errs, fmt.Errorf("analytics.time_zone: %w", err))
	}

	if cfg.Sync.Enabled {
		if !cfg.Database.Enabled() {
			errs = append(errs, errors.New("sync.enabled requires a database"))
		}
		if cfg.Sync.Interval < time.Minute {
			errs = append(errs, fmt.Errorf("sync.interval must be at least 1m (got %s)", cfg.Sync.Interval))
		}
	}

	if !logger.ValidLevel(cfg.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
	}
	if !logger.ValidFormat(cfg.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
