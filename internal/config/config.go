package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// HKOBaseURL overrides the upstream endpoint, mainly for tests.
	HKOBaseURL string

	// HTTPTimeout bounds each outbound feed fetch.
	HTTPTimeout time.Duration

	// RefreshInterval controls how often the snapshot is rebuilt.
	RefreshInterval time.Duration

	// ReferenceStation is the humidity reference station.
	ReferenceStation string

	Port        string
	MetricsAddr string
	LogLevel    string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.HKOBaseURL = os.Getenv("HKO_BASE_URL")

	// Feed fetch timeout: default 30 seconds, matching the upstream client's
	// historical behaviour.
	timeoutStr := getenvDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	// Refresh interval: default 10 minutes, the rhrread update cadence.
	intervalStr := getenvDefault("REFRESH_INTERVAL", "10m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	cfg.ReferenceStation = getenvDefault("REFERENCE_STATION", "Hong Kong Observatory")
	cfg.Port = getenvDefault("PORT", "8080")
	cfg.MetricsAddr = getenvDefault("METRICS_ADDR", ":9090")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
