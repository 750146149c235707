package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/spritegen/spritegen/internal/config"
)

// TestRunInit verifies that init writes a configuration that decodes back
// into the defaults.
func TestRunInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project")

	path, err := runInit(dir, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.DefaultFile), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# spritegen configuration.")

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, *config.Default(), cfg)

	loaded, err := config.Load(config.NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)
}

func TestRunInit_Exists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("custom: true\n"), 0644))

	_, err := runInit(dir, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runInit(dir, true)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "custom: true")
}
