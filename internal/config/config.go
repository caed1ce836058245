// Package config loads vecdist settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/viant/vecmetric/metric"
)

// Prefix is the environment variable prefix, e.g. VECDIST_METRIC.
const Prefix = "VECDIST"

// Config validation errors
var (
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'text'")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, or error")
)

// Config holds the vecdist settings.
type Config struct {
	// Metric is a metric name or shorthand. It is resolved by DistanceMetric
	// so that a command-line override can replace an invalid value.
	Metric    string `envconfig:"METRIC" default:"euclidean"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
}

// Load reads envFiles (missing files are skipped) and then the process
// environment. Variables already set in the environment win over .env
// values.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	cfg := &Config{}
	if err := envconfig.Process(Prefix, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DistanceMetric resolves the configured metric name.
func (c *Config) DistanceMetric() (metric.Metric, error) {
	m, err := metric.ParseMetric(c.Metric)
	if err != nil {
		return 0, fmt.Errorf("config: %s_METRIC: %w", Prefix, err)
	}
	return m, nil
}

// Validate checks the logging settings. Metric is checked by DistanceMetric.
func Validate(cfg *Config) error {
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return ErrInvalidLogFormat
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}
