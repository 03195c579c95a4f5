// Package config loads the user-tunable parameters. Every knob has an
// in-code default; a YAML file, when present, overrides only the fields it
// names.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ivelina/tendril/internal/agitation"
	"github.com/ivelina/tendril/internal/flow"
	"github.com/ivelina/tendril/internal/focus"
)

// Config is the full parameter set.
type Config struct {
	// DailyGoalMinutes is the daily focus target. Zero disables goal
	// tracking and streaks.
	DailyGoalMinutes int `yaml:"daily_goal_minutes"`

	// DefaultSessionMinutes seeds the duration prompt.
	DefaultSessionMinutes int `yaml:"default_session_minutes"`

	Session   focus.Config     `yaml:"session"`
	Agitation agitation.Config `yaml:"agitation"`
	Flow      flow.Params      `yaml:"flow"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		DailyGoalMinutes:      0,
		DefaultSessionMinutes: 25,
		Session:               focus.DefaultConfig(),
		Agitation:             agitation.DefaultConfig(),
		Flow:                  flow.DefaultParams(),
	}
}

// Load reads the config file at path over the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath resolves the config file location in priority order:
// 1. TENDRIL_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/tendril/config.yaml
// 3. ~/.config/tendril/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("TENDRIL_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tendril", "config.yaml"), nil
}
