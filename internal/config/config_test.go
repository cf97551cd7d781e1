package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottocraft/internal/logger"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvBook, EnvLogLevel, EnvLogFile, EnvSeed} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.HasSeed)
	assert.Empty(t, cfg.BookPath)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBook, "books/forge.toml")
	t.Setenv(EnvLogLevel, "verbose")
	t.Setenv(EnvLogFile, StderrLog)
	t.Setenv(EnvSeed, " 42 ")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "books/forge.toml", cfg.BookPath)
	assert.Equal(t, logger.LevelVerbose, cfg.LogLevel)
	assert.Equal(t, StderrLog, cfg.LogFile)
	assert.True(t, cfg.HasSeed)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"level", EnvLogLevel, "shouty"},
		{"seed", EnvSeed, "-3"},
		{"seed text", EnvSeed, "lucky"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}
