// Package config loads the optional fivetakes.yaml file that pre-seats a
// table: player names, an RNG seed for reproducible games, and a target
// score override for shorter or longer games. Anything missing here is
// prompted for interactively.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level YAML structure.
type Config struct {
	Players     []string `yaml:"players"`
	Seed        int64    `yaml:"seed"`
	TargetScore int      `yaml:"target_score"`
}

// Load parses the YAML config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}
	return &cfg, nil
}

// LoadOptional is Load, except a missing file yields an empty config.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}
