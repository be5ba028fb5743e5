package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetEnvAsInt tests the getEnvAsInt helper function
func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "")
		os.Unsetenv("TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("returns default for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42), "Should return default for invalid integer")
	})

	t.Run("returns default for float values", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "42.5")
		assert.Equal(t, 10, getEnvAsInt("TEST_INT_VAR", 10))
	})
}

// TestGetEnvAsDuration tests the getEnvAsDuration helper function
func TestGetEnvAsDuration(t *testing.T) {
	t.Run("parses valid duration from env var", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "10m")
		assert.Equal(t, 10*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})

	t.Run("parses milliseconds", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "500ms")
		assert.Equal(t, 500*time.Millisecond, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})

	t.Run("returns default for plain numbers without unit", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "100")
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})

	t.Run("returns default for empty string", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "")
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})
}

// TestLoad_DatabasePoolConfig tests that database pool configuration is loaded correctly
func TestLoad_DatabasePoolConfig(t *testing.T) {
	t.Run("loads default database pool configuration", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 10, cfg.DBMaxConns, "Should use default max connections")
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime, "Should use default idle time")
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime, "Should use default lifetime")
	})

	t.Run("uses defaults for invalid pool config values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DB_MAX_CONNS", "not-a-number")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "invalid")
		t.Setenv("DB_MAX_CONN_LIFETIME", "bad-duration")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 10, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
	})
}
