// Package options holds the generator configuration.
//
// A Config is read from YAML, then overridden by FAIRY_* environment
// variables, then validated.
package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Seed makes generated data reproducible, zero picks a random seed.
	Seed uint64 `yaml:"seed" env:"FAIRY_SEED"`
	// TextLimit cuts text results to this many runes, zero means unlimited.
	TextLimit int `yaml:"text_limit" env:"FAIRY_TEXT_LIMIT"`
	// Unique makes every generated text distinct within one generator.
	Unique bool `yaml:"unique" env:"FAIRY_UNIQUE"`
	// Verbose logs fields skipped while bewitching.
	Verbose bool `yaml:"verbose" env:"FAIRY_VERBOSE"`
}

// Load reads the config file at path, if any, and applies environment overrides.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return cfg, nil
}

// ParseEnv overrides cfg with the FAIRY_* environment variables that are set.
func ParseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func (c Config) Validate() error {
	if c.TextLimit < 0 {
		return fmt.Errorf("%w: text_limit must not be negative, got %d", ErrInvalidConfig, c.TextLimit)
	}

	return nil
}
