package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/dashauth/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., ":8080")
//	-b string     base path of the auth routes
//	-s string     JWT HMAC secret key
//	-t duration   token validity (e.g., "24h")
//	-confirm      answer /register with a confirmation instead of a session
//	-log string   log backend: slog or zap
//	-l string     log level
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-b", "-s", "-t", "-confirm", "-log", "-l"})

	fs := flag.NewFlagSet("dashauth-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port to run server")
	fs.StringVar(&cfg.BasePath, "b", cfg.BasePath, "base path of the auth routes")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	fs.DurationVar(&cfg.TokenValidityDuration, "t", cfg.TokenValidityDuration, "token validity duration")
	fs.BoolVar(&cfg.RegisterConfirmOnly, "confirm", cfg.RegisterConfirmOnly, "register returns a confirmation only")
	fs.StringVar(&cfg.LogBackend, "log", cfg.LogBackend, "log backend (slog, zap)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(args)
}
