// Package config loads the optional YAML generator configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"modelgen/internal/resolve"
)

// Config is the root of a YAML generator configuration file. Every setting
// has a flag equivalent; flags win when both are given.
type Config struct {
	// Package is the target namespace string applied to every emitted
	// artifact (the generated package name, after sanitization).
	Package string `yaml:"package,omitempty"`

	// Output is the output directory.
	Output string `yaml:"output,omitempty"`

	// Scalars pins declared scalar type names to a target representation
	// ahead of classification rules. Values: integer, decimal, boolean,
	// timestamp, text.
	Scalars map[string]string `yaml:"scalars,omitempty"`
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Package == "" {
		cfg.Package = "models"
	}

	if cfg.Output == "" {
		cfg.Output = "./generated"
	}
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// KindOverrides translates the scalar pin entries into resolver overrides.
func (c *Config) KindOverrides() (map[string]resolve.ScalarKind, error) {
	if len(c.Scalars) == 0 {
		return nil, nil
	}

	overrides := make(map[string]resolve.ScalarKind, len(c.Scalars))
	for name, kind := range c.Scalars {
		switch kind {
		case "integer":
			overrides[name] = resolve.KindInteger
		case "decimal":
			overrides[name] = resolve.KindDecimal
		case "boolean":
			overrides[name] = resolve.KindBoolean
		case "timestamp":
			overrides[name] = resolve.KindTimestamp
		case "text":
			overrides[name] = resolve.KindText
		default:
			return nil, fmt.Errorf("unknown scalar kind %q for type %s", kind, name)
		}
	}

	return overrides, nil
}
