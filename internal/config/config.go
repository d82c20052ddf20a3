// Package config loads and saves the application configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// Greenwich, the GMST reference meridian.
	DefaultLatitude  = 51.4779
	DefaultLongitude = -0.0015

	DefaultBinaryURL = "https://raw.githubusercontent.com/litescript/ls-exosky-data/main/binaries.json"
)

// Observer is the ground location used for sky projections.
type Observer struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

type Config struct {
	Observer    Observer `yaml:"observer"`
	CatalogPath string   `yaml:"catalog_path"`
	BinaryURL   string   `yaml:"binary_url"`
	BinaryPath  string   `yaml:"binary_path"`
	LogLevel    string   `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Observer: Observer{
			Name:      "Greenwich",
			Latitude:  DefaultLatitude,
			Longitude: DefaultLongitude,
		},
		BinaryURL: DefaultBinaryURL,
		LogLevel:  "info",
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that the observer location is on the globe.
func (c *Config) Validate() error {
	if c.Observer.Latitude < -90 || c.Observer.Latitude > 90 {
		return fmt.Errorf("observer latitude %v out of range [-90, 90]", c.Observer.Latitude)
	}
	if c.Observer.Longitude < -180 || c.Observer.Longitude > 180 {
		return fmt.Errorf("observer longitude %v out of range [-180, 180]", c.Observer.Longitude)
	}
	return nil
}
