package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spritegen/spritegen/internal/templates"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, []string{".png"}, cfg.Input.Extensions)
	assert.Equal(t, "root", cfg.Naming.Root)
	assert.Equal(t, CollisionError, cfg.Naming.OnCollision)
	assert.Equal(t, "stub", cfg.Output.Variant)
	assert.Equal(t, "assets.h", cfg.Output.Header)
	assert.Equal(t, "assets.c", cfg.Output.Source)
	require.NotNil(t, cfg.Output.Atomic)
	assert.True(t, *cfg.Output.Atomic)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	f := false
	cfg := &Config{
		Output: OutputConfig{Variant: "renderer", Atomic: &f},
		Naming: NamingConfig{Root: "sprites"},
	}
	ApplyDefaults(cfg)

	assert.Equal(t, "renderer", cfg.Output.Variant)
	assert.False(t, *cfg.Output.Atomic)
	assert.Equal(t, "sprites", cfg.Naming.Root)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:      "extension without dot",
			mutate:    func(c *Config) { c.Input.Extensions = []string{"png"} },
			wantError: `extension "png" must start with a dot`,
		},
		{
			name:      "unknown collision policy",
			mutate:    func(c *Config) { c.Naming.OnCollision = "first-wins" },
			wantError: "invalid collision policy: first-wins (allowed: error, ignore, last-wins)",
		},
		{
			name:      "unknown variant",
			mutate:    func(c *Config) { c.Output.Variant = "vulkan" },
			wantError: "unknown variant: vulkan",
		},
		{
			name: "unknown variant with template dir",
			mutate: func(c *Config) {
				c.Output.Variant = "custom"
				c.Templates.Dir = "tmpl"
			},
		},
		{
			name:      "same header and source",
			mutate:    func(c *Config) { c.Output.Source = c.Output.Header },
			wantError: "header and source must differ",
		},
		{
			name:      "output path with directory",
			mutate:    func(c *Config) { c.Output.Header = "gen/assets.h" },
			wantError: "must be a plain file name",
		},
		{
			name:      "bad logging level",
			mutate:    func(c *Config) { c.Logging.Level = "trace" },
			wantError: "invalid logging level: trace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
input:
  extensions: [".png", ".jpg"]
naming:
  root: sprites
  on_collision: last-wins
output:
  variant: texture
  atomic: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{".png", ".jpg"}, cfg.Input.Extensions)
	assert.Equal(t, "sprites", cfg.Naming.Root)
	assert.Equal(t, CollisionLastWins, cfg.Naming.OnCollision)
	assert.Equal(t, "texture", cfg.Output.Variant)
	assert.False(t, *cfg.Output.Atomic)
	assert.Equal(t, "assets.h", cfg.Output.Header)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SPRITEGEN_OUTPUT_VARIANT", "renderer")
	t.Setenv("SPRITEGEN_NAMING_STRICT", "true")

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "renderer", cfg.Output.Variant)
	assert.True(t, cfg.Naming.Strict)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spritegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  variant: vulkan\n"), 0o644))

	_, err := Load(NewViper(), path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate_EmbeddedVariants(t *testing.T) {
	for _, variant := range templates.Variants() {
		cfg := Default()
		cfg.Output.Variant = variant
		assert.NoError(t, Validate(cfg), variant)
	}

	cfg := Default()
	cfg.Output.Variant = "vulkan"
	err := Validate(cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "allowed: "+strings.Join(templates.Variants(), ", "))
}
