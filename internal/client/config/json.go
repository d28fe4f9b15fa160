package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/dashauth/internal/flagx"
	"github.com/dmitrijs2005/dashauth/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Pointers tell
// an absent key from an empty one, so a partial file only overrides what it
// names. Durations accept "5s" or integer nanoseconds.
type JSONConfig struct {
	ServerURL      *string         `json:"server_url"`
	StoragePath    *string         `json:"storage_path"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogBackend     *string         `json:"log_backend"`
	LogLevel       *string         `json:"log_level"`
}

// parseJSON overlays cfg with the file named by -c / -config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFilePathFrom(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.LogBackend != nil {
		cfg.LogBackend = *jc.LogBackend
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
