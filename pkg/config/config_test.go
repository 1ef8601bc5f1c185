package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
delta: 5
metric: throughput
markers:
  ops: "current ops/sec"
  failed: "FAILED"
  latency: "UPDATE AverageLatency(us)="
latency_scale: 1
`
	path := writeTempFile(t, "config.yaml", content)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Delta != 5 {
		t.Errorf("Delta = %d, want 5", cfg.Delta)
	}
	if cfg.Metric != "throughput" {
		t.Errorf("Metric = %q, want throughput", cfg.Metric)
	}
	if cfg.Markers.Failed != "FAILED" {
		t.Errorf("Markers.Failed = %q, want FAILED", cfg.Markers.Failed)
	}
	if cfg.Markers.Latency != "UPDATE AverageLatency(us)=" {
		t.Errorf("Markers.Latency = %q", cfg.Markers.Latency)
	}
	if cfg.LatencyScale != 1 {
		t.Errorf("LatencyScale = %v, want 1", cfg.LatencyScale)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "delta: 30\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Delta != 30 {
		t.Errorf("Delta = %d, want 30", cfg.Delta)
	}
	if cfg.Metric != DefaultMetric {
		t.Errorf("Metric = %q, want %q", cfg.Metric, DefaultMetric)
	}
	if cfg.Markers.Ops != DefaultOpsMarker {
		t.Errorf("Markers.Ops = %q, want %q", cfg.Markers.Ops, DefaultOpsMarker)
	}
	if cfg.LatencyScale != DefaultLatencyScale {
		t.Errorf("LatencyScale = %v, want %v", cfg.LatencyScale, DefaultLatencyScale)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	content := `invalid: yaml: content: [`
	path := writeTempFile(t, "invalid.yaml", content)
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "delta: 0\n")
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Fatal("Load() expected error for zero delta")
	}
	if !strings.Contains(err.Error(), "delta") {
		t.Errorf("error = %v, want mention of delta", err)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvDelta, "60")
	t.Setenv(EnvMetric, "throughput")

	path := writeTempFile(t, "config.yaml", "delta: 5\nmetric: avglatency\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Delta != 60 {
		t.Errorf("Delta = %d, want 60", cfg.Delta)
	}
	if cfg.Metric != "throughput" {
		t.Errorf("Metric = %q, want throughput", cfg.Metric)
	}
}

func TestLoad_InvalidEnvironmentDelta(t *testing.T) {
	t.Setenv(EnvDelta, "ten")

	path := writeTempFile(t, "config.yaml", "delta: 5\n")
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Fatal("Load() expected error for invalid env delta")
	}
	if !strings.Contains(err.Error(), EnvDelta) {
		t.Errorf("error = %v, want mention of %s", err, EnvDelta)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative delta", func(c *Config) { c.Delta = -1 }, true},
		{"zero delta", func(c *Config) { c.Delta = 0 }, true},
		{"unknown metric", func(c *Config) { c.Metric = "p99" }, true},
		{"empty metric", func(c *Config) { c.Metric = "" }, true},
		{"throughput metric", func(c *Config) { c.Metric = "throughput" }, false},
		{"empty ops marker", func(c *Config) { c.Markers.Ops = "" }, true},
		{"empty failed marker", func(c *Config) { c.Markers.Failed = "" }, true},
		{"empty latency marker", func(c *Config) { c.Markers.Latency = "" }, true},
		{"same ops and failed", func(c *Config) { c.Markers.Failed = c.Markers.Ops }, true},
		{"zero latency scale", func(c *Config) { c.LatencyScale = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if cfg.Delta != 10 {
		t.Errorf("Delta = %d, want 10", cfg.Delta)
	}
	if cfg.Markers.Ops != "current ops/sec" {
		t.Errorf("Markers.Ops = %q", cfg.Markers.Ops)
	}
	if cfg.Markers.Failed != "failed" {
		t.Errorf("Markers.Failed = %q", cfg.Markers.Failed)
	}
	if cfg.Markers.Latency != "READ AverageLatency(us)=" {
		t.Errorf("Markers.Latency = %q", cfg.Markers.Latency)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(DefaultConfig()) error = %v", err)
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}
