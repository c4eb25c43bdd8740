// Package config loads and saves simulator configuration as YAML.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 100
	DefaultHeight     = 100
	DefaultMode       = "life"
	DefaultBoundary   = "wrap"
	DefaultStates     = 4
	DefaultMaxHistory = 100
	DefaultMaxLog     = 1000
	DefaultMaxCycle   = 1000
)

// Config mirrors the simulator's construction parameters plus the
// initial pattern selection.
type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Mode     string `yaml:"mode"`
	Pattern  string `yaml:"pattern"`
	Rule     string `yaml:"rule"`     // B/S notation for life-like modes
	Boundary string `yaml:"boundary"` // wrap, fixed, reflect
	States   int    `yaml:"states"`   // generations mode
	Seed     int64  `yaml:"seed"`

	MaxHistory int `yaml:"max_history"`
	MaxLog     int `yaml:"max_log"`
	MaxCycle   int `yaml:"max_cycle"`
}

// DefaultConfig returns the stock 100x100 Conway setup.
func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Mode:       DefaultMode,
		Boundary:   DefaultBoundary,
		States:     DefaultStates,
		MaxHistory: DefaultMaxHistory,
		MaxLog:     DefaultMaxLog,
		MaxCycle:   DefaultMaxCycle,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
