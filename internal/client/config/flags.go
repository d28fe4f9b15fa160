package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/dashauth/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-s string     base URL of the auth server
//	-d string     path of the local session database
//	-t duration   request timeout (0 = none)
//	-log string   log backend: slog or zap
//	-l string     log level
//
// Only the flags above are looked at; see flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-s", "-d", "-t", "-log", "-l"})

	fs := flag.NewFlagSet("dashauth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "s", cfg.ServerURL, "base URL of the auth server")
	fs.StringVar(&cfg.StoragePath, "d", cfg.StoragePath, "path of the local session database")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout, 0 disables it")
	fs.StringVar(&cfg.LogBackend, "log", cfg.LogBackend, "log backend (slog, zap)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(args)
}
