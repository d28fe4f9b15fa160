package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/dashauth/internal/flagx"
	"github.com/dmitrijs2005/dashauth/internal/timex"
)

// JSONConfig is the on-disk shape of Config. Absent keys leave the current
// value untouched; durations accept "24h" or integer nanoseconds.
type JSONConfig struct {
	EndpointAddr          *string         `json:"endpoint_addr"`
	BasePath              *string         `json:"base_path"`
	SecretKey             *string         `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	RegisterConfirmOnly   *bool           `json:"register_confirm_only"`
	LogBackend            *string         `json:"log_backend"`
	LogLevel              *string         `json:"log_level"`
}

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

	if jc.EndpointAddr != nil {
		cfg.EndpointAddr = *jc.EndpointAddr
	}
	if jc.BasePath != nil {
		cfg.BasePath = *jc.BasePath
	}
	if jc.SecretKey != nil {
		cfg.SecretKey = *jc.SecretKey
	}
	if jc.TokenValidityDuration != nil {
		cfg.TokenValidityDuration = time.Duration(jc.TokenValidityDuration.Duration)
	}
	if jc.RegisterConfirmOnly != nil {
		cfg.RegisterConfirmOnly = *jc.RegisterConfirmOnly
	}
	if jc.LogBackend != nil {
		cfg.LogBackend = *jc.LogBackend
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
