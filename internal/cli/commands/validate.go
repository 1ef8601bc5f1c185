package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/ycsbseries/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a ycsbseries configuration file without reading any log.

Checks:
  - YAML syntax
  - Positive delta and latency scale
  - Known metric (avglatency or throughput)
  - Non-empty, distinct line markers
  - Environment overrides (YCSBSERIES_DELTA, YCSBSERIES_METRIC)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Delta:          %ds\n", cfg.Delta)
	fmt.Fprintf(w, "  Metric:         %s\n", cfg.Metric)
	fmt.Fprintf(w, "  Ops marker:     %q\n", cfg.Markers.Ops)
	fmt.Fprintf(w, "  Failed marker:  %q\n", cfg.Markers.Failed)
	fmt.Fprintf(w, "  Latency marker: %q\n", cfg.Markers.Latency)
	fmt.Fprintf(w, "  Latency scale:  %g\n", cfg.LatencyScale)

	return nil
}
