// Package config loads the optional cookielog configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no --config flag
// is given.
const EnvPath = "COOKIELOG_CONFIG"

// Config holds settings that can also be given on the command line.
// Flags always win over the file.
type Config struct {
	Verbose   bool   `yaml:"verbose"`
	DateBasis string `yaml:"date_basis" default:"utc"`
	Format    string `yaml:"format" default:"text"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var cfg Config
	_ = defaults.Set(&cfg)
	return cfg
}

// Load reads the YAML file at path and fills unset keys with defaults.
// An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated keys. Date basis values are checked by
// the caller, which owns their parsing.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("invalid format %q: expected text or json", c.Format)
}
