package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the optional stepwise.yaml project file: overrides for the
// runtime constants above plus the snapshot directory used by
// internal/persist.
type Settings struct {
	MaxSteps     int    `yaml:"max_steps,omitempty"`
	SessionDir   string `yaml:"session_dir,omitempty"`
	AlphaVarName string `yaml:"alpha_var_name,omitempty"`
}

// DefaultSettings returns the built-in defaults used when no stepwise.yaml
// is present.
func DefaultSettings() Settings {
	return Settings{
		MaxSteps:   DefaultMaxSteps,
		SessionDir: ".stepwise",
	}
}

// LoadSettings reads and parses a stepwise.yaml file, falling back to
// DefaultSettings for any field the file leaves zero.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if s.MaxSteps == 0 {
		s.MaxSteps = DefaultMaxSteps
	}
	if s.SessionDir == "" {
		s.SessionDir = ".stepwise"
	}
	return s, nil
}
