// Package config loads the dashboard settings for the xint application.
// Settings come from an optional tui.yaml in the xint home directory, then
// from XINT_* environment variables; command-line flags are applied last by
// the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is the settings file inside the xint home directory.
	FileName = "tui.yaml"

	DefaultTheme = "classic"
)

// Config holds presentation and launch settings. Nothing here is session
// state; the dashboard never writes this file.
type Config struct {
	Theme      string `yaml:"theme"`
	ThemeFile  string `yaml:"theme_file"`
	Hero       bool   `yaml:"hero"`
	WatchTheme bool   `yaml:"watch_theme"`
	Policy     string `yaml:"policy"`
	Executable string `yaml:"executable"`
	Debug      bool   `yaml:"debug"`

	// NerdFonts forces Nerd Font icons on or off. Nil keeps detection.
	NerdFonts *bool `yaml:"nerd_fonts"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:  DefaultTheme,
		Hero:   true,
		Policy: "read_only",
	}
}

// GetXintDir returns the xint home directory: $XINT_HOME or ~/.xint.
func GetXintDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("XINT_HOME")); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".xint"), nil
}

// EnsureXintDir creates the xint home directory if it doesn't exist
func EnsureXintDir() error {
	xintDir, err := GetXintDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(xintDir, 0755)
}

// Path returns the location of tui.yaml.
func Path() (string, error) {
	xintDir, err := GetXintDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(xintDir, FileName), nil
}

// Load reads tui.yaml from the xint home directory, if present, and applies
// environment overrides.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		cfg := Default()
		applyEnvOverrides(&cfg)
		return cfg, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads settings from path. A missing file is not an error.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("read %s: %w", FileName, err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", FileName, err)
		}
	}

	applyEnvOverrides(&cfg)
	normalize(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if raw := os.Getenv("XINT_TUI_THEME"); raw != "" {
		cfg.Theme = raw
	}
	if raw := os.Getenv("XINT_TUI_THEME_FILE"); raw != "" {
		cfg.ThemeFile = raw
	}
	if raw := os.Getenv("XINT_TUI_HERO"); raw != "" {
		cfg.Hero = raw != "0"
	}
	if raw := os.Getenv("XINT_POLICY"); raw != "" {
		cfg.Policy = raw
	}
	if raw := os.Getenv("XINT_EXECUTABLE"); raw != "" {
		cfg.Executable = raw
	}
	if raw := os.Getenv("XINT_DEBUG"); raw != "" {
		cfg.Debug = isTruthy(raw)
	}
	if raw := os.Getenv("XINT_NERD_FONTS"); raw != "" {
		enabled := isTruthy(raw)
		cfg.NerdFonts = &enabled
	}
}

func normalize(cfg *Config) {
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	cfg.ThemeFile = strings.TrimSpace(cfg.ThemeFile)
	if strings.TrimSpace(cfg.Policy) == "" {
		cfg.Policy = "read_only"
	}
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
