// Package config loads runtime configuration for the dashauth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables (DASHAUTH_SERVER_URL, DASHAUTH_STORAGE_PATH,
//     DASHAUTH_REQUEST_TIMEOUT, DASHAUTH_LOG_BACKEND, DASHAUTH_LOG_LEVEL).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-s string     base URL of the auth server
//	-d string     path of the local session database
//	-t duration   request timeout (0 = none)
//	-log string   log backend: slog or zap
//	-l string     log level
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:8080/api/v1",
//	  "storage_path": "dashauth.db",
//	  "request_timeout": "10s",
//	  "log_backend": "zap",
//	  "log_level": "debug"
//	}
package config
