package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 10*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, "Hong Kong Observatory", cfg.ReferenceStation)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.HKOBaseURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("REFRESH_INTERVAL", "1m")
	t.Setenv("REFERENCE_STATION", "King's Park")
	t.Setenv("HKO_BASE_URL", "http://localhost:9999/weather")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
	assert.Equal(t, "King's Park", cfg.ReferenceStation)
	assert.Equal(t, "http://localhost:9999/weather", cfg.HKOBaseURL)
}

func TestLoadInvalidDurations(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("HTTP_TIMEOUT", "30s")
	t.Setenv("REFRESH_INTERVAL", "often")
	_, err = Load()
	require.Error(t, err)
}
