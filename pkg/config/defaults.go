package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ccollicutt/ycsbseries/pkg/parser"
	"github.com/ccollicutt/ycsbseries/pkg/series"
)

// Default values for configuration.
const (
	DefaultDelta         = series.DefaultDelta
	DefaultMetric        = string(parser.MetricAvgLatency)
	DefaultOpsMarker     = series.DefaultOpsMarker
	DefaultFailedMarker  = series.DefaultFailureMarker
	DefaultLatencyMarker = parser.DefaultLatencyMarker
	DefaultLatencyScale  = parser.DefaultLatencyScale
)

// Environment variable names.
const (
	EnvDelta  = "YCSBSERIES_DELTA"
	EnvMetric = "YCSBSERIES_METRIC"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Delta:  DefaultDelta,
		Metric: DefaultMetric,
		Markers: MarkerConfig{
			Ops:     DefaultOpsMarker,
			Failed:  DefaultFailedMarker,
			Latency: DefaultLatencyMarker,
		},
		LatencyScale: DefaultLatencyScale,
	}
}

// ApplyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) ApplyEnvironmentOverrides() error {
	if v := os.Getenv(EnvDelta); v != "" {
		d, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid delta %q: %w", EnvDelta, v, err)
		}
		c.Delta = d
	}

	if v := os.Getenv(EnvMetric); v != "" {
		c.Metric = v
	}

	return nil
}
