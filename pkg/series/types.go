// Package series turns a YCSB status log into an evenly spaced sample series.
package series

// NoData is the sample value reported for an interval without valid data.
// A status line whose throughput cannot be read also reports NoData, not
// zero, so every missing value carries the same sentinel.
const NoData = -1.0

// Default extraction settings.
const (
	DefaultDelta         int64 = 10
	DefaultOpsMarker           = "current ops/sec"
	DefaultFailureMarker       = "failed"
)

// Sample is one (timestamp, value) pair of the output series.
type Sample struct {
	// Time is the elapsed benchmark time in seconds.
	Time int64

	// Value is the reported metric, or NoData.
	Value float64

	// Filled is true for samples synthesized to cover a skipped interval.
	Filled bool
}

// Stats counts what the extractor saw and produced.
type Stats struct {
	// LinesRead is the number of lines read from the source.
	LinesRead int

	// OpsLines is the number of status lines containing the ops marker.
	OpsLines int

	// FailedLines is the number of lines skipped for containing the failure marker.
	FailedLines int

	// UnparsedLines is the number of status lines skipped because no time
	// could be parsed.
	UnparsedLines int

	// PartialLines is the number of status lines whose requested metric
	// could not be parsed and were reported as NoData.
	PartialLines int

	// OutOfOrder is the number of status lines whose time did not advance.
	OutOfOrder int

	// Samples is the total number of samples emitted, gap-fills included.
	Samples int

	// GapFills is the number of synthesized samples emitted.
	GapFills int
}
