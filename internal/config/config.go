// Package config handles loading and validation of CLI configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete CLI configuration.
type Config struct {
	Servers []string      `yaml:"servers"`
	Query   QueryConfig   `yaml:"query"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// QueryConfig holds per-query settings.
type QueryConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// OutputConfig holds display options.
type OutputConfig struct {
	JSON     bool          `yaml:"json"`
	Interval time.Duration `yaml:"interval"` // watch mode poll interval
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Query: QueryConfig{
			Timeout: time.Second,
		},
		Output: OutputConfig{
			Interval: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "warning",
		},
	}
}

// Load reads and parses the configuration from the given file path,
// applying defaults for anything left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Query.Timeout <= 0 {
		return fmt.Errorf("query.timeout must be positive")
	}

	if c.Output.Interval < time.Second {
		return fmt.Errorf("output.interval must be at least 1s")
	}

	return nil
}
