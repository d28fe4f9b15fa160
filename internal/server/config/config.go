// Package config handles configuration for the stub auth server: defaults,
// JSON overlay, environment and command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds runtime settings for the dashauth stub server.
//
// Fields:
//   - EndpointAddr: HTTP bind address.
//   - BasePath: prefix the auth routes are mounted under, e.g. /api/v1.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - TokenValidityDuration: lifetime of issued tokens.
//   - RegisterConfirmOnly: answer /register with {message,user_id} instead of a session.
//   - LogBackend / LogLevel: see logging.New.
type Config struct {
	EndpointAddr          string        `env:"DASHAUTH_SERVER_ADDR"`
	BasePath              string        `env:"DASHAUTH_SERVER_BASE_PATH"`
	SecretKey             string        `env:"DASHAUTH_SERVER_SECRET_KEY"`
	TokenValidityDuration time.Duration `env:"DASHAUTH_SERVER_TOKEN_TTL"`
	RegisterConfirmOnly   bool          `env:"DASHAUTH_SERVER_REGISTER_CONFIRM_ONLY"`
	LogBackend            string        `env:"DASHAUTH_SERVER_LOG_BACKEND"`
	LogLevel              string        `env:"DASHAUTH_SERVER_LOG_LEVEL"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.BasePath = "/api/v1"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.RegisterConfirmOnly = false
	c.LogBackend = "slog"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
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

	if cfg.BasePath != "" && !strings.HasPrefix(cfg.BasePath, "/") {
		cfg.BasePath = "/" + cfg.BasePath
	}
	cfg.BasePath = strings.TrimRight(cfg.BasePath, "/")

	if cfg.TokenValidityDuration <= 0 {
		return nil, fmt.Errorf("token validity must be positive, got %s", cfg.TokenValidityDuration)
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("secret key must not be empty")
	}
	return cfg, nil
}
