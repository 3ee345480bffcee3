// Package config loads and saves the YAML settings consumed by the qrencode
// command line tool.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the default encoding and rendering parameters for qrencode.
// Any value left unset by a loaded file keeps its default.
type Config struct {
	Ecl      string `yaml:"ecl"`
	Border   int    `yaml:"border"`
	Scale    int    `yaml:"scale"`
	LogLevel string `yaml:"loglevel"`
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Ecl:      "M",
		Border:   4,
		Scale:    8,
		LogLevel: "warn",
	}
}

// Load reads the YAML file at path, starting from Defaults() and overlaying
// whatever fields the file sets. A missing file is not an error: Load returns
// Defaults() unchanged, so callers never need to special-case first-run.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
