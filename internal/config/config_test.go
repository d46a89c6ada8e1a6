package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 0, cfg.LogLimit)
	assert.Equal(t, 200000, cfg.DiffDisplayLimit)
	assert.Equal(t, string(PresetDefault), cfg.ThemePreset)
	assert.Equal(t, DefaultTheme(), cfg.Theme)
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
log_limit = 500
diff_display_limit = 1000
theme = "dracula"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.LogLimit)
	assert.Equal(t, 1000, cfg.DiffDisplayLimit)
	assert.Equal(t, "dracula", cfg.ThemePreset)
	assert.Equal(t, ThemeForPreset(PresetDracula), cfg.Theme)
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_limit = [[["), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestThemeForPreset_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, DefaultTheme(), ThemeForPreset("no-such-theme"))
}

func TestSetTheme(t *testing.T) {
	cfg := Default()
	cfg.SetTheme("solarized")

	assert.Equal(t, "solarized", cfg.ThemePreset)
	assert.Equal(t, ThemeForPreset(PresetSolarize), cfg.Theme)
}
