package main

import (
	"os"
)

// Config holds all environment variables for the aronia backend.
type Config struct {
	DatabaseURL  string // MongoDB connection string; empty means run without a store
	DatabaseName string
	Port         string // Service port (default: 8000)
}

// LoadConfig reads configuration from environment variables with defaults.
// A missing DATABASE_URL is not an error: the service is expected to come
// up and serve degraded responses until a store is configured.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: getEnv("DATABASE_NAME", "aronia"),
		Port:         getEnv("PORT", "8000"),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
