package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/builduhq/tenant-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "tenant-api", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.False(t, cfg.Latency.Enabled)
	assert.Equal(t, 400*time.Millisecond, cfg.Latency.Read)
	assert.Equal(t, 500*time.Millisecond, cfg.Latency.Write)

	assert.True(t, cfg.Seed.Enabled)
	assert.Empty(t, cfg.Seed.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LATENCY_ENABLED", "true")
	t.Setenv("LATENCY_READ", "50ms")
	t.Setenv("SEED_DEMO_DATA", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.True(t, cfg.Latency.Enabled)
	assert.Equal(t, 50*time.Millisecond, cfg.Latency.Read)
	assert.False(t, cfg.Seed.Enabled)
}

func TestLoad_UnparsableValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("LATENCY_WRITE", "later")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.Latency.Write)
}

func TestValidate(t *testing.T) {
	t.Run("rejects out-of-range port", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "70000")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid server port")
	})

	t.Run("rejects negative latency", func(t *testing.T) {
		t.Setenv("LATENCY_READ", "-5ms")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-negative")
	})

	t.Run("rejects simulated latency in production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("LATENCY_ENABLED", "true")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "production")
	})

	t.Run("production without latency is fine", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}
