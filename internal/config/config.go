// Package config loads jagt's optional configuration file and resolves
// theme presets to concrete color sets.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration. Values come from the
// optional TOML file, overridden by command line flags.
type Config struct {
	// LogLimit caps how many commits the startup listing requests.
	// Zero requests the entire history.
	LogLimit int `toml:"log_limit"`

	// DiffDisplayLimit is the character count at which the diff pane
	// truncates its copy of the diff. The underlying record keeps the
	// full text. Zero disables truncation.
	DiffDisplayLimit int `toml:"diff_display_limit"`

	ThemePreset string `toml:"theme"`

	Theme Theme `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLimit:         0,
		DiffDisplayLimit: 200000,
		ThemePreset:      string(PresetDefault),
		Theme:            ThemeForPreset(PresetDefault),
	}
}

// Load reads the configuration from the user's config directory. A
// missing file is not an error; defaults apply.
func Load() (*Config, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(filepath.Join(dir, "jagt", "config.toml"))
}

// LoadFile reads the configuration from the given path, falling back to
// defaults when the file does not exist.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Theme = ThemeForPreset(ThemePreset(cfg.ThemePreset))
	return cfg, nil
}

// SetTheme switches the active theme preset.
func (c *Config) SetTheme(preset string) {
	c.ThemePreset = preset
	c.Theme = ThemeForPreset(ThemePreset(preset))
}
