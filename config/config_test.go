package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_DefaultsMissingSections(t *testing.T) {
	path := writeConfig(t, `
http:
  address: ":8080"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Booking.RefundPercent)
	assert.Equal(t, 300, cfg.Booking.ToursCacheTTL)
	assert.Equal(t, 60, cfg.Booking.WebhookDedupTTL)
	// A zero sweep interval would panic the worker's ticker.
	assert.Equal(t, 30, cfg.Worker.CompletionSweepMinutes)
}

func TestLoadConfig_ExplicitValuesKept(t *testing.T) {
	path := writeConfig(t, `
booking:
  refund_percent: 50
  tours_cache_ttl_seconds: 120
worker:
  completion_sweep_minutes: 5
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Booking.RefundPercent)
	assert.Equal(t, 120, cfg.Booking.ToursCacheTTL)
	assert.Equal(t, 5, cfg.Worker.CompletionSweepMinutes)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
