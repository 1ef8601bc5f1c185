// Package parser provides log file reading and status line parsing.
package parser

// LogLine is a raw log line as read from a source.
type LogLine struct {
	// Content is the raw line text.
	Content string

	// Source is the file path this line came from.
	Source string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}

// Metric selects which value of a status line is reported.
type Metric string

const (
	MetricAvgLatency Metric = "avglatency"
	MetricThroughput Metric = "throughput"
)

// Valid reports whether m is a known metric.
func (m Metric) Valid() bool {
	return m == MetricAvgLatency || m == MetricThroughput
}

// Field is a bitmask of the fields successfully parsed from a status line.
type Field uint8

const (
	FieldTime Field = 1 << iota
	FieldThroughput
	FieldLatency
)

// Result is the outcome of parsing a single status line.
// Only the fields set in Parsed carry meaningful values.
type Result struct {
	// Time is the elapsed benchmark time in seconds.
	Time int64

	// Throughput is the current operations per second.
	Throughput float64

	// Latency is the READ average latency in milliseconds.
	Latency float64

	// Parsed records which of the fields above were parsed.
	Parsed Field
}

// Has reports whether field f was parsed.
func (r Result) Has(f Field) bool {
	return r.Parsed&f != 0
}

// Complete reports whether every field was parsed.
func (r Result) Complete() bool {
	return r.Has(FieldTime) && r.Has(FieldThroughput) && r.Has(FieldLatency)
}

// Value returns the requested metric and whether it was parsed.
func (r Result) Value(m Metric) (float64, bool) {
	switch m {
	case MetricThroughput:
		return r.Throughput, r.Has(FieldThroughput)
	case MetricAvgLatency:
		return r.Latency, r.Has(FieldLatency)
	default:
		return 0, false
	}
}
