package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the dashauth CLI.
//
// Fields:
//   - ServerURL: base URL of the REST auth endpoint, e.g. http://127.0.0.1:8080/api/v1.
//   - StoragePath: SQLite file holding the persisted token record.
//   - RequestTimeout: per-request bound; zero means no client-side timeout.
//   - LogBackend: "slog" or "zap".
//   - LogLevel: "debug", "info", "warn" or "error".
type Config struct {
	ServerURL      string        `env:"DASHAUTH_SERVER_URL"`
	StoragePath    string        `env:"DASHAUTH_STORAGE_PATH"`
	RequestTimeout time.Duration `env:"DASHAUTH_REQUEST_TIMEOUT"`
	LogBackend     string        `env:"DASHAUTH_LOG_BACKEND"`
	LogLevel       string        `env:"DASHAUTH_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080/api/v1"
	c.StoragePath = "dashauth.db"
	c.RequestTimeout = 0
	c.LogBackend = "slog"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if cfg.RequestTimeout < 0 {
		return nil, fmt.Errorf("request timeout must not be negative, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}
