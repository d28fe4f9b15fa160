package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays cfg with DASHAUTH_* variables. Unset variables leave the
// current values alone.
func parseEnv(cfg *Config) error {
	return cleanenv.ReadEnv(cfg)
}
