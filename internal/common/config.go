package common

import (
	"os"
	"time"
)

// Config holds all application configuration
type Config struct {
	Storage StorageConfig
	Rates   RatesConfig
}

// StorageConfig holds document-store configuration
type StorageConfig struct {
	Path string
}

// RatesConfig holds exchange-rate engine configuration
type RatesConfig struct {
	URL          string
	Base         string
	TTL          time.Duration
	FetchTimeout time.Duration
	StaticFile   string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: getEnv("BIZBOOKS_DB_PATH", "./data/bizbooks.db"),
		},
		Rates: RatesConfig{
			URL:          getEnv("BIZBOOKS_RATES_URL", ""),
			Base:         getEnv("BIZBOOKS_BASE_CURRENCY", "USD"),
			TTL:          getEnvAsDuration("BIZBOOKS_RATES_TTL", time.Hour),
			FetchTimeout: getEnvAsDuration("BIZBOOKS_RATES_FETCH_TIMEOUT", 10*time.Second),
			StaticFile:   getEnv("BIZBOOKS_RATES_FILE", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
