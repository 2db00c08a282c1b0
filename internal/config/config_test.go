package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv points config lookups at a fresh temp dir
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvAPITimeout, "")
	t.Setenv(EnvThemeFile, "")
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "taskman")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "a", defaults.AddTask)
	assert.Equal(t, "v", defaults.ViewTask)
	assert.Equal(t, "ctrl+s", defaults.SaveForm)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultAPITimeout, cfg.API.Timeout)
	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolateEnv(t)
	writeConfig(t, dir, `api:
  base_url: "http://tasks.internal:8080/api"
  timeout: 3s
key_mappings:
  quit: "x"
  add_task: "n"
theme:
  preset: monochrome
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://tasks.internal:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "n", cfg.KeyMappings.AddTask)
	// Unspecified values should use defaults
	assert.Equal(t, "e", cfg.KeyMappings.EditTask)
	assert.Equal(t, MonochromeColorScheme().Accent, cfg.ColorScheme.Accent)
}

// Edge case: a corrupt file is an error, not silently the defaults
func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := isolateEnv(t)
	writeConfig(t, dir, "api: [unterminated")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := isolateEnv(t)
	writeConfig(t, dir, "api:\n  base_url: http://from-file/api\n")
	t.Setenv(EnvAPIURL, "http://from-env/api")
	t.Setenv(EnvAPITimeout, "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://from-env/api", cfg.API.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.API.Timeout)
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	for _, raw := range []string{"soon", "-1s", "0s"} {
		t.Run(raw, func(t *testing.T) {
			isolateEnv(t)
			t.Setenv(EnvAPITimeout, raw)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestThemeFileLoading(t *testing.T) {
	isolateEnv(t)
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
`), 0o644))
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.Create)
	// Verify other colors still have defaults
	assert.Equal(t, DefaultColorScheme().Delete, cfg.ColorScheme.Delete)
}
