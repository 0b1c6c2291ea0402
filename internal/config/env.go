package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvPath is the file loaded into the process environment before env overrides are applied.
var dotEnvPath = ".env"

// loadDotEnv loads key/value pairs from .env without overriding variables that are already set.
func loadDotEnv() error {
	if _, err := os.Stat(dotEnvPath); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load(dotEnvPath)
}

// loadFromEnv overrides configuration with environment variables declared in env tags.
// Fields whose variable is unset keep the value from defaults or the YAML file.
func loadFromEnv(config *Config) error {
	return env.Parse(config)
}
