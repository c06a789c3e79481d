// Package config loads and watches the viewer's scene configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/hiviz/pkg/model"
)

// Config is the on-disk scene description: what to generate and how to
// filter/display it. Camera state is deliberately not part of it; the view is
// session-scoped and never persisted.
type Config struct {
	Gen  model.GenSpec    `yaml:"gen"`
	View model.ViewParams `yaml:"view"`
}

// Default returns the configuration a fresh viewer starts with.
func Default() Config {
	return Config{
		Gen:  model.GenSpec{Total: 5000, MaxFanout: 6, Seed: 42},
		View: model.DefaultViewParams(),
	}
}

// Validate checks both sections.
func (c Config) Validate() error {
	if err := c.Gen.Validate(); err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	if err := c.View.Validate(); err != nil {
		return fmt.Errorf("view: %w", err)
	}
	return nil
}

// Load reads and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path as YAML.
func Save(c Config, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
