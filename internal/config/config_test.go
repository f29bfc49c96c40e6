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

	assert.Equal(t, "issue-dashboard", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())

	assert.Equal(t, "Issues", cfg.Sheet.SheetName)
	assert.Equal(t, 15*time.Second, cfg.Sheet.FetchTimeout)

	assert.Equal(t, 5*time.Minute, cfg.Refresh.Interval)
	assert.Equal(t, 6, cfg.Refresh.ManualPerMinute)
	assert.Equal(t, 2, cfg.Refresh.ManualBurst)
	assert.Equal(t, 20, cfg.Refresh.StaleAgeDays)
	assert.Equal(t, 24*time.Hour, cfg.Refresh.SnapshotCacheTTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL_SECONDS", "60")
	t.Setenv("STALE_AGE_THRESHOLD_DAYS", "30")
	t.Setenv("SHEET_URL", "https://example.com/feed.csv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Refresh.Interval)
	assert.Equal(t, 30, cfg.Refresh.StaleAgeDays)
	assert.Equal(t, "https://example.com/feed.csv", cfg.Sheet.URL)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
