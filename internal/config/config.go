// Package config exposes strongly typed application configuration structs
// loaded from YAML, with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the binaries look for a config file when
// TRENDQUEST_CONFIG is unset.
const DefaultPath = "config.yaml"

// App captures process-wide runtime settings such as name, environment,
// metrics address, and logging level.
type App struct {
	Name        string `yaml:"name"`
	Env         string `yaml:"env"`
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// Game bounds the inclusive secret range for the guessing loop.
type Game struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Advisor carries the comparator threshold band.
type Advisor struct {
	TauPos float64 `yaml:"tau_pos"`
	TauNeg float64 `yaml:"tau_neg"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App     App     `yaml:"app"`
	Game    Game    `yaml:"game"`
	Advisor Advisor `yaml:"advisor"`
}

// Default returns the settings the binaries run with when no file is present,
// keeping them zero-setup.
func Default() *Config {
	return &Config{
		App:     App{Name: "trendquest", Env: "dev", LogLevel: "info"},
		Game:    Game{Min: 1, Max: 100},
		Advisor: Advisor{TauPos: 0.2, TauNeg: -0.2},
	}
}

// Load reads a YAML file from disk and hydrates a Config struct over the
// defaults, so omitted leaves keep their default values.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	config := Default()
	if err := yaml.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return config, nil
}

// FromEnv resolves the effective config for a binary: best-effort .env
// loading, TRENDQUEST_CONFIG for the file path (falling back to DefaultPath,
// and to pure defaults when no file exists there), and TRENDQUEST_LOG_LEVEL
// as a level override.
func FromEnv() (*Config, error) {
	_ = godotenv.Load() // best-effort

	path := os.Getenv("TRENDQUEST_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	if level := os.Getenv("TRENDQUEST_LOG_LEVEL"); level != "" {
		cfg.App.LogLevel = level
	}
	return cfg, nil
}
