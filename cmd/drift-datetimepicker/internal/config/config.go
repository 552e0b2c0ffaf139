// Package config loads the optional datetimepicker.yaml used by the
// drift-datetimepicker CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/datetimepicker/pkg/widgets"
)

// FileName is the configuration file looked up in the project root.
const FileName = "datetimepicker.yaml"

// Config represents the optional datetimepicker.yaml configuration.
type Config struct {
	Picker  PickerConfig                  `yaml:"picker"`
	Heights map[string]map[string]float64 `yaml:"heights,omitempty"`
}

// PickerConfig contains picker defaults.
type PickerConfig struct {
	ReadinessDelay  string `yaml:"readinessDelay,omitempty"`
	PlatformVersion string `yaml:"platformVersion,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root            string
	ModulePath      string
	ReadinessDelay  time.Duration
	PlatformVersion string
	Heights         map[widgets.Display]map[widgets.Mode]float64
}

// LoadOptional reads datetimepicker.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads datetimepicker.yaml (if present) and applies defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	delay := widgets.DefaultReadinessDelay
	if s := strings.TrimSpace(cfg.Picker.ReadinessDelay); s != "" {
		delay, err = time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("picker.readinessDelay: %w", err)
		}
		if delay < 0 {
			return nil, fmt.Errorf("picker.readinessDelay must not be negative, got %s", s)
		}
	}

	heights, err := resolveHeights(cfg.Heights)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Root:            dir,
		ModulePath:      modulePath(dir),
		ReadinessDelay:  delay,
		PlatformVersion: strings.TrimSpace(cfg.Picker.PlatformVersion),
		Heights:         heights,
	}, nil
}

// HeightResolver returns a platform height resolver pinned to the
// configured heights.
func (r *Resolved) HeightResolver() *widgets.PlatformHeightResolver {
	resolver := widgets.NewPlatformHeightResolver()
	resolver.Overrides = r.Heights
	return resolver
}

// File renders the resolved values back into datetimepicker.yaml form.
func (r *Resolved) File() *Config {
	cfg := &Config{
		Picker: PickerConfig{
			ReadinessDelay:  r.ReadinessDelay.String(),
			PlatformVersion: r.PlatformVersion,
		},
	}
	if len(r.Heights) > 0 {
		cfg.Heights = make(map[string]map[string]float64, len(r.Heights))
		for display, modes := range r.Heights {
			byMode := make(map[string]float64, len(modes))
			for mode, h := range modes {
				byMode[string(mode)] = h
			}
			cfg.Heights[string(display)] = byMode
		}
	}
	return cfg
}

// FindProjectRoot walks up from the current directory to the first
// directory holding datetimepicker.yaml or go.mod. It falls back to the
// current directory.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := start
	for {
		for _, name := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

func resolveHeights(raw map[string]map[string]float64) (map[widgets.Display]map[widgets.Mode]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	heights := make(map[widgets.Display]map[widgets.Mode]float64, len(raw))
	for displayName, modes := range raw {
		display, err := ParseDisplay(displayName)
		if err != nil {
			return nil, fmt.Errorf("heights: %w", err)
		}
		byMode := make(map[widgets.Mode]float64, len(modes))
		for modeName, h := range modes {
			mode, err := ParseMode(modeName)
			if err != nil {
				return nil, fmt.Errorf("heights.%s: %w", displayName, err)
			}
			if h <= 0 {
				return nil, fmt.Errorf("heights.%s.%s must be positive, got %v", displayName, modeName, h)
			}
			byMode[mode] = h
		}
		heights[display] = byMode
	}
	return heights, nil
}

// ParseDisplay maps a display name to a widgets.Display.
func ParseDisplay(s string) (widgets.Display, error) {
	switch d := widgets.Display(strings.ToLower(strings.TrimSpace(s))); d {
	case widgets.DisplayDefault, widgets.DisplaySpinner, widgets.DisplayCompact, widgets.DisplayInline:
		return d, nil
	}
	return "", fmt.Errorf("unknown display %q", s)
}

// ParseMode maps a mode name to a widgets.Mode.
func ParseMode(s string) (widgets.Mode, error) {
	switch m := widgets.Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case widgets.ModeDate, widgets.ModeTime, widgets.ModeDateTime, widgets.ModeCountdown:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}
