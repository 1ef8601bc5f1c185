package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/ycsbseries/pkg/config"
	"github.com/ccollicutt/ycsbseries/pkg/parser"
	"github.com/ccollicutt/ycsbseries/pkg/series"
)

// stdinPath selects standard input as the log source.
const stdinPath = "-"

// SourceOptions holds the options shared by commands that read a status log.
type SourceOptions struct {
	File   string
	Delta  int64
	Metric string
	Config string
}

func addSourceFlags(cmd *cobra.Command, opts *SourceOptions) {
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "YCSB status log to read (- for stdin)")
	cmd.Flags().Int64VarP(&opts.Delta, "delta", "d", config.DefaultDelta, "Time step between samples, in seconds")
	cmd.Flags().StringVarP(&opts.Metric, "metric", "m", config.DefaultMetric, "Reported metric (avglatency|throughput)")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Optional YAML configuration file")
	_ = cmd.MarkFlagRequired("file")
}

// resolveConfig loads the configuration file, if any, and applies flags the
// user set explicitly on top of it.
func resolveConfig(ctx context.Context, cmd *cobra.Command, opts *SourceOptions) (*config.Config, error) {
	var cfg *config.Config
	if opts.Config != "" {
		loaded, err := config.Load(ctx, opts.Config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
		if err := cfg.ApplyEnvironmentOverrides(); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("delta") {
		cfg.Delta = opts.Delta
	}
	if cmd.Flags().Changed("metric") {
		cfg.Metric = opts.Metric
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

func openSource(path string, stdin io.Reader) parser.LineSource {
	if path == stdinPath {
		return parser.NewReaderSource("stdin", stdin)
	}
	return parser.NewFileSource(path)
}

// closeSource releases the log source. A failed close cannot affect output
// that was already written, so it is only logged.
func closeSource(src parser.LineSource) {
	if err := src.Close(); err != nil {
		log.Debug().Err(err).Msg("Closing log source")
	}
}

func newExtractor(src parser.LineSource, cfg *config.Config) (*series.Extractor, error) {
	return series.NewExtractor(src,
		series.WithDelta(cfg.Delta),
		series.WithMetric(parser.Metric(cfg.Metric)),
		series.WithMarkers(cfg.Markers.Ops, cfg.Markers.Failed),
		series.WithLineParser(parser.NewLineParser(cfg.Markers.Latency, cfg.LatencyScale)),
		series.WithLogger(log.Logger),
	)
}
