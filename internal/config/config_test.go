package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, os.TempDir(), cfg.OutputDir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("EXCELMERGE_OUTPUT_DIR", "/data/out")
	t.Setenv("EXCELMERGE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/out", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.Log.Level)
}
