// Package config provides configuration loading and validation for ycsbseries.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Delta is the nominal time step between samples, in seconds.
	Delta int64 `yaml:"delta"`

	// Metric is the reported value: avglatency or throughput.
	Metric string `yaml:"metric"`

	// Markers identifies the relevant lines of a status log.
	Markers MarkerConfig `yaml:"markers"`

	// LatencyScale divides the raw latency value. The default converts
	// microseconds to milliseconds.
	LatencyScale float64 `yaml:"latency_scale"`
}

// MarkerConfig defines the substrings that classify log lines.
type MarkerConfig struct {
	// Ops marks status lines carrying a sample.
	Ops string `yaml:"ops"`

	// Failed marks lines that are skipped outright.
	Failed string `yaml:"failed"`

	// Latency precedes the latency value within a status line.
	Latency string `yaml:"latency"`
}
