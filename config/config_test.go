package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "LOG_LEVEL", "LOG_PRETTY", "ALLOWED_ORIGINS", "RISK_FREE_RATE", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, []string{DefaultAllowedOrigin}, cfg.AllowedOrigins)
	assert.Equal(t, 0.0, cfg.RiskFreeRate)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "TRUE")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, ,http://b.example")
	t.Setenv("RISK_FREE_RATE", "0.0025")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 0.0025, cfg.RiskFreeRate)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnv_Invalid(t *testing.T) {
	testCases := []struct {
		key   string
		value string
	}{
		{"PORT", "eighty"},
		{"PORT", "-1"},
		{"RISK_FREE_RATE", "one percent"},
		{"SHUTDOWN_TIMEOUT", "10"},
	}

	for _, tc := range testCases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFile_ReadsFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("RISK_FREE_RATE")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RISK_FREE_RATE=0.001\n"), 0o600))

	require.NoError(t, LoadEnvFile(path))
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 0.001, cfg.RiskFreeRate)
}

func TestLoadEnvFile_MissingFile(t *testing.T) {
	err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadEnvFile_KeepsExistingValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))

	require.NoError(t, LoadEnvFile(path))
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}
