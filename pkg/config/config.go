// Package config holds the distributed solver's run configuration, loaded
// from a YAML file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/distributed-dijkstra/pkg/partition"
)

type Config struct {
	// Processes is the size of the process group, fixed for the run.
	Processes int `yaml:"processes" validate:"gte=1"`
	// Strategy is "contiguous" or "round-robin".
	Strategy string `yaml:"strategy" validate:"oneof=contiguous round-robin"`
	// MaxRounds overrides the relaxation round bound; 0 keeps the
	// node-count bound.
	MaxRounds int    `yaml:"max_rounds" validate:"gte=0"`
	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

func Default() *Config {
	return &Config{
		Processes: 4,
		Strategy:  partition.RoundRobin.String(),
		MaxRounds: 0,
		LogLevel:  "info",
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ParseStrategy maps the configured strategy name to its partition value.
func (c *Config) ParseStrategy() (partition.Strategy, error) {
	switch c.Strategy {
	case partition.Contiguous.String():
		return partition.Contiguous, nil
	case partition.RoundRobin.String():
		return partition.RoundRobin, nil
	default:
		return 0, fmt.Errorf("unknown partitioning strategy %q", c.Strategy)
	}
}

// Load reads a YAML config file over the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv applies environment overrides on top of cfg and validates the
// result.
func FromEnv(cfg *Config) (*Config, error) {
	out := *cfg
	out.Processes = getEnvInt("SSSP_PROCESSES", cfg.Processes)
	out.Strategy = getEnv("SSSP_STRATEGY", cfg.Strategy)
	out.MaxRounds = getEnvInt("SSSP_MAX_ROUNDS", cfg.MaxRounds)
	out.LogLevel = getEnv("SSSP_LOG_LEVEL", cfg.LogLevel)

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
