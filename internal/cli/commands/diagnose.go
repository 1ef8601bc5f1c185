package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/ycsbseries/pkg/series"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	SourceOptions
	Verbose bool
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
	Filled   []int64 // times of gap-fill samples
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose -f <log-file>",
		Short: "Diagnose a YCSB log before extracting a series",
		Long: `Diagnose a YCSB client status log.

This command reads the log once and reports:
- Log file existence and accessibility
- Status lines found
- Status lines that could not be parsed
- Failed operations and skipped intervals
- Status lines whose time did not advance

Example:
  ycsbseries diagnose -f run.log
  ycsbseries diagnose -v -f run.log  # verbose output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runDiagnose(ctx, cmd, opts)
		},
	}

	addSourceFlags(cmd, &opts.SourceOptions)
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")

	return cmd
}

func runDiagnose(ctx context.Context, cmd *cobra.Command, opts *DiagnoseOptions) error {
	w := cmd.OutOrStdout()
	results := []DiagnosticResult{}

	// 1. Check log file
	if opts.File != stdinPath {
		result := checkLogFile(opts.File)
		results = append(results, result)
		if result.Status == "error" {
			printDiagnostics(w, results, opts)
			return nil
		}
	}

	// 2. Resolve options
	cfg, err := resolveConfig(ctx, cmd, &opts.SourceOptions)
	if err != nil {
		results = append(results, DiagnosticResult{
			Check:   "Options",
			Status:  "error",
			Message: err.Error(),
		})
		printDiagnostics(w, results, opts)
		return nil
	}

	// 3. Read the log
	src := openSource(opts.File, cmd.InOrStdin())
	defer closeSource(src)

	ext, err := newExtractor(src, cfg)
	if err != nil {
		return fmt.Errorf("creating extractor: %w", err)
	}

	var samples []series.Sample
	for s, err := range ext.All(ctx) {
		if err != nil {
			return fmt.Errorf("reading log: %w", err)
		}
		if opts.Verbose && s.Filled {
			samples = append(samples, s)
		}
	}

	results = append(results, checkStats(ext.Stats(), samples)...)

	printDiagnostics(w, results, opts)
	return nil
}

func checkLogFile(path string) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Log File",
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		result.Status = "error"
		result.Message = fmt.Sprintf("Log file not found: %s", path)
		result.Suggests = []string{"Check the file path is correct"}
		return result
	}
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access log file: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return result
	}
	if info.IsDir() {
		result.Status = "error"
		result.Message = "Path is a directory, not a file"
		return result
	}
	if info.Size() == 0 {
		result.Status = "warning"
		result.Message = "Log file is empty"
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Found: %s (%d bytes)", path, info.Size())
	return result
}

func checkStats(stats series.Stats, filled []series.Sample) []DiagnosticResult {
	results := []DiagnosticResult{}

	status := DiagnosticResult{
		Check: "Status Lines",
		Details: []string{
			fmt.Sprintf("Lines read: %d", stats.LinesRead),
			fmt.Sprintf("Samples: %d", stats.Samples),
		},
	}
	if stats.OpsLines == 0 {
		status.Status = "error"
		status.Message = "No status lines found"
		status.Suggests = []string{
			"Run the YCSB client with -s to print status lines",
			"Check the markers.ops setting in your config",
		}
	} else {
		status.Status = "ok"
		status.Message = fmt.Sprintf("Found %d status line(s)", stats.OpsLines)
	}
	results = append(results, status)

	if stats.OpsLines == 0 {
		return results
	}

	parsing := DiagnosticResult{Check: "Parsing"}
	switch {
	case stats.UnparsedLines > 0:
		parsing.Status = "warning"
		parsing.Message = fmt.Sprintf("%d status line(s) skipped without a time", stats.UnparsedLines)
		parsing.Suggests = []string{"Status lines must read '<time> sec ...; <ops> current ops/sec; [...]'"}
	case stats.PartialLines > 0:
		parsing.Status = "warning"
		parsing.Message = fmt.Sprintf("%d status line(s) reported as -1 (metric not found)", stats.PartialLines)
		parsing.Suggests = []string{"Check the markers.latency setting in your config"}
	default:
		parsing.Status = "ok"
		parsing.Message = "All status lines parsed"
	}
	results = append(results, parsing)

	gaps := DiagnosticResult{Check: "Gaps"}
	if stats.GapFills > 0 {
		gaps.Status = "warning"
		gaps.Message = fmt.Sprintf("%d interval(s) filled with -1", stats.GapFills)
		for _, s := range filled {
			gaps.Filled = append(gaps.Filled, s.Time)
		}
	} else {
		gaps.Status = "ok"
		gaps.Message = "No skipped intervals"
	}
	if stats.FailedLines > 0 {
		gaps.Details = append(gaps.Details, fmt.Sprintf("Failed lines skipped: %d", stats.FailedLines))
	}
	results = append(results, gaps)

	ordering := DiagnosticResult{Check: "Ordering"}
	if stats.OutOfOrder > 0 {
		ordering.Status = "warning"
		ordering.Message = fmt.Sprintf("%d status line(s) did not advance in time", stats.OutOfOrder)
		ordering.Suggests = []string{"Check that the log holds a single run, or that delta matches the status interval"}
	} else {
		ordering.Status = "ok"
		ordering.Message = "Times strictly increasing"
	}
	results = append(results, ordering)

	return results
}

// maxListedFills caps the gap-fill times printed for one check.
const maxListedFills = 10

var statusLabels = map[string]string{
	"ok":      "PASS",
	"warning": "WARN",
	"error":   "FAIL",
}

type diagnosticCounts struct {
	passed, warnings, errors int
}

func (c *diagnosticCounts) add(status string) {
	switch status {
	case "ok":
		c.passed++
	case "warning":
		c.warnings++
	case "error":
		c.errors++
	}
}

func (c diagnosticCounts) verdict() string {
	switch {
	case c.errors > 0:
		return "fix the errors above before extracting a series"
	case c.warnings > 0:
		return "log is usable but has warnings"
	default:
		return "log looks good"
	}
}

func printDiagnostics(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions) {
	name := opts.File
	if name == stdinPath {
		name = "stdin"
	}
	fmt.Fprintf(w, "Diagnostics for %s\n\n", name)

	var counts diagnosticCounts
	for _, r := range results {
		counts.add(r.Status)
		writeResult(w, r, opts.Verbose || r.Status != "ok")
	}

	fmt.Fprintf(w, "\n%d passed, %d warnings, %d errors: %s\n",
		counts.passed, counts.warnings, counts.errors, counts.verdict())
}

func writeResult(w io.Writer, r DiagnosticResult, detailed bool) {
	fmt.Fprintf(w, "[%s] %-13s %s\n", statusLabels[r.Status], r.Check, r.Message)

	if detailed {
		if len(r.Filled) > 0 {
			fmt.Fprintf(w, "       %s\n", formatFilled(r.Filled))
		}
		for _, d := range r.Details {
			fmt.Fprintf(w, "       - %s\n", d)
		}
	}
	for _, s := range r.Suggests {
		fmt.Fprintf(w, "       hint: %s\n", s)
	}
}

// formatFilled renders gap-fill times as "filled at t=20, 40 and 3 more".
func formatFilled(times []int64) string {
	var b strings.Builder
	b.WriteString("filled at t=")
	for i, t := range times {
		if i == maxListedFills {
			fmt.Fprintf(&b, " and %d more", len(times)-i)
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(t, 10))
	}
	return b.String()
}
