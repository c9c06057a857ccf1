// Package config defines the IndicatorBar demo configuration format and
// helpers for loading or saving it to disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/edward-ap/indicatorbar/internal/indicator"
	"github.com/edward-ap/indicatorbar/internal/presets"
)

const (
	// AppID is the stable application identifier used by the GUI framework.
	AppID = "io.github.edward-ap.indicatorbar"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "IndicatorBar"
	// AppConfigName is the JSON file stored on disk.
	AppConfigName = "config.json"

	// DefaultWidth is the preferred window width when no persisted value exists.
	DefaultWidth = 480
	// DefaultHeight leaves room for the bubble above the track and the controls.
	DefaultHeight = 220
	// MinWindowWidth keeps the bar wide enough to drag comfortably.
	MinWindowWidth = 240
	// MinWindowHeight fits the bar and one row of controls.
	MinWindowHeight = 160
)

// Config aggregates every user-facing preference persisted between sessions.
type Config struct {
	Min      int64   `json:"min"`
	Max      int64   `json:"max"`
	Step     int64   `json:"step"`
	Progress float64 `json:"progress"`
	Policy   string  `json:"policy"`
	Disabled bool    `json:"disabled,omitempty"`
	Preset   string  `json:"preset,omitempty"`
	WindowW  int     `json:"windowW"`
	WindowH  int     `json:"windowH"`

	dir string
}

// ConfigDir resolves the writable directory that should contain the config
// file. INDICATORBAR_CONFIG_DIR takes precedence over the OS default.
func ConfigDir() (string, error) {
	if env, err := LoadEnv(); err == nil && strings.TrimSpace(env.ConfigDir) != "" {
		return env.ConfigDir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath is a helper that returns the full path to config.json.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config from the default directory.
func Load() (*Config, error) {
	d, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(d)
}

// LoadFrom reads dir/config.json, creating it with defaults when missing and
// repairing values that would not configure a valid bar.
func LoadFrom(dir string) (*Config, error) {
	path := filepath.Join(dir, AppConfigName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := newDefaultConfig()
			cfg.dir = dir
			// Try saving an initial config, but still return defaults even if it fails.
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}

	cfg := &Config{dir: dir}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// Save persists the configuration to disk, creating directories as needed.
func (c *Config) Save() error {
	dir := c.dir
	if dir == "" {
		d, err := ConfigDir()
		if err != nil {
			return err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, AppConfigName), b, 0o644)
}

// AppID returns the stable identifier used by the GUI framework.
func (c *Config) AppID() string { return AppID }

// Range builds the validated range the config describes.
func (c *Config) Range() (indicator.Range, error) {
	return indicator.NewRange(c.Min, c.Max, c.Step)
}

// DisplayPolicy parses the stored policy name.
func (c *Config) DisplayPolicy() indicator.DisplayPolicy {
	p, _ := indicator.ParseDisplayPolicy(c.Policy)
	return p
}

// ApplyPreset copies a preset's range and starting progress into c.
func (c *Config) ApplyPreset(p presets.RangePreset) {
	c.Preset = p.Name
	c.Min, c.Max, c.Step = p.Min, p.Max, p.Step
	c.Progress = p.Progress
}

// Defaults returns an unsaved config with default values. Save writes it to
// ConfigDir.
func Defaults() *Config { return newDefaultConfig() }

// newDefaultConfig builds an in-memory config populated with safe defaults.
func newDefaultConfig() *Config {
	cfg := &Config{
		Min:      indicator.DefaultMin,
		Max:      indicator.DefaultMax,
		Step:     indicator.DefaultStep,
		Progress: indicator.DefaultProgress,
		Policy:   indicator.HideWhileDragging.String(),
		WindowW:  DefaultWidth,
		WindowH:  DefaultHeight,
	}
	if p, ok := presets.FindPresetByName("Percent"); ok {
		cfg.Preset = p.Name
	}
	cfg.applyRuntimeDefaults()
	return cfg
}

// applyRuntimeDefaults normalizes config values after a load or when defaults
// are constructed, ensuring the UI always receives sane inputs.
func (c *Config) applyRuntimeDefaults() {
	if _, err := c.Range(); err != nil {
		c.Min, c.Max, c.Step = indicator.DefaultMin, indicator.DefaultMax, indicator.DefaultStep
		c.Preset = ""
	}
	switch {
	case math.IsNaN(c.Progress):
		c.Progress = indicator.DefaultProgress
	case c.Progress < 0:
		c.Progress = 0
	case c.Progress > 1:
		c.Progress = 1
	}
	if _, err := indicator.ParseDisplayPolicy(c.Policy); err != nil {
		c.Policy = indicator.HideWhileDragging.String()
	}
	if c.Preset != "" {
		if _, ok := presets.FindPresetByName(c.Preset); !ok {
			c.Preset = ""
		}
	}
	if c.WindowW == 0 {
		c.WindowW = DefaultWidth
	}
	if c.WindowW < MinWindowWidth {
		c.WindowW = MinWindowWidth
	}
	if c.WindowH == 0 {
		c.WindowH = DefaultHeight
	}
	if c.WindowH < MinWindowHeight {
		c.WindowH = MinWindowHeight
	}
}
