package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays cfg with DASHAUTH_SERVER_* variables.
func parseEnv(cfg *Config) error {
	return cleanenv.ReadEnv(cfg)
}
