// Package config loads client configuration from the environment and the
// per-user preferences file.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the hosted API the console talks to when nothing else is
// configured.
const DefaultBaseURL = "http://inventopro.runasp.net/Api/V1"

// Config holds client configuration.
type Config struct {
	// BaseURL is the API root, including the /Api/V1 prefix.
	BaseURL string

	// Timeout applies to every outgoing request. There is no retry.
	Timeout time.Duration

	LogLevel    string
	Development bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		BaseURL:     getEnv("INVENTO_API_BASE_URL", DefaultBaseURL),
		Timeout:     getEnvDuration("INVENTO_API_TIMEOUT", 30*time.Second),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
