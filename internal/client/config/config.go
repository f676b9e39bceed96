package config

import "time"

// Config holds runtime settings for the clientdesk CLI.
//
// Fields:
//   - ServerBaseURL: root of the REST API; endpoint paths are joined to it.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - DatabasePath: SQLite file holding the session and the remembered username.
//   - ExpiryCheckInterval: how often the session expiry watcher runs.
//   - LogBackend: "slog" or "zap".
type Config struct {
	ServerBaseURL       string
	RequestTimeout      time.Duration
	DatabasePath        string
	ExpiryCheckInterval time.Duration
	LogBackend          string
}

// Default values.
const (
	DefaultServerBaseURL       = "https://pruebareactjs.test-class.com/Api/"
	DefaultRequestTimeout      = 15 * time.Second
	DefaultDatabasePath        = "clientdesk.db"
	DefaultExpiryCheckInterval = 30 * time.Second
	DefaultLogBackend          = "slog"
)

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = DefaultServerBaseURL
	c.RequestTimeout = DefaultRequestTimeout
	c.DatabasePath = DefaultDatabasePath
	c.ExpiryCheckInterval = DefaultExpiryCheckInterval
	c.LogBackend = DefaultLogBackend
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
