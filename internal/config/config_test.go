package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("FARS_DATA_DIR", "/srv/fars/data")
	t.Setenv("FARS_LOG_LEVEL", "debug")
	t.Setenv("FARS_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/fars/data", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("FARS_LOG_LEVEL", "loud")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FARS_LOG_LEVEL")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("FARS_LOG_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FARS_LOG_FORMAT")
}
