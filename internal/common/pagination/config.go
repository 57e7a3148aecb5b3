// Package pagination provides a reusable cursor-based pagination framework:
// page size configuration, opaque continuation tokens, and request metrics.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
// These values can be loaded from environment variables or config files.
type Config struct {
	PageSize int // Items per page
	MaxSize  int // Upper bound enforced on PageSize
}

// DefaultConfig returns the default pagination configuration.
// Default values: size=20, max=100
func DefaultConfig() Config {
	return Config{
		PageSize: 20,
		MaxSize:  100,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - FEED_PAGE_SIZE: Items per page
//   - FEED_PAGE_MAX: Upper bound on items per page
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	cfg := Config{
		PageSize: getEnvAsInt("FEED_PAGE_SIZE", 20),
		MaxSize:  getEnvAsInt("FEED_PAGE_MAX", 100),
	}
	if cfg.PageSize > cfg.MaxSize {
		cfg.PageSize = cfg.MaxSize
	}
	return cfg
}

// getEnvAsInt retrieves an environment variable and parses it as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 1 {
		return defaultValue
	}
	return val
}
