package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/ycsbseries/pkg/parser"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.ApplyEnvironmentOverrides(); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Delta <= 0 {
		return fmt.Errorf("delta: must be positive, got %d", cfg.Delta)
	}

	if !parser.Metric(cfg.Metric).Valid() {
		return fmt.Errorf("metric: invalid value %q (must be avglatency or throughput)", cfg.Metric)
	}

	if err := validateMarkers(&cfg.Markers); err != nil {
		return fmt.Errorf("markers: %w", err)
	}

	if cfg.LatencyScale <= 0 {
		return fmt.Errorf("latency_scale: must be positive, got %v", cfg.LatencyScale)
	}

	return nil
}

func validateMarkers(m *MarkerConfig) error {
	if m.Ops == "" {
		return errors.New("ops is required")
	}
	if m.Failed == "" {
		return errors.New("failed is required")
	}
	if m.Latency == "" {
		return errors.New("latency is required")
	}
	if m.Ops == m.Failed {
		return fmt.Errorf("ops and failed must differ, both are %q", m.Ops)
	}
	return nil
}
