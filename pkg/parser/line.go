package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Default status line markers, matching the YCSB client status output.
const (
	DefaultLatencyMarker = "READ AverageLatency(us)="
	DefaultLatencyScale  = 1000.0
)

var (
	// ErrMalformed is returned when a status line lacks an expected field,
	// token or marker.
	ErrMalformed = errors.New("malformed status line")

	// ErrNotNumeric is returned when a status line field is not a number.
	ErrNotNumeric = errors.New("non-numeric field")
)

// LineParser extracts time, throughput and latency from YCSB status lines
// of the form:
//
//	10 sec: 1000 operations; 100.5 current ops/sec; [READ AverageLatency(us)=2500]
type LineParser struct {
	latencyMarker string
	latencyScale  float64
}

// NewLineParser creates a parser using the given latency marker and scale.
// Empty or non-positive arguments fall back to the defaults.
func NewLineParser(latencyMarker string, latencyScale float64) *LineParser {
	if latencyMarker == "" {
		latencyMarker = DefaultLatencyMarker
	}
	if latencyScale <= 0 {
		latencyScale = DefaultLatencyScale
	}
	return &LineParser{
		latencyMarker: latencyMarker,
		latencyScale:  latencyScale,
	}
}

var defaultLineParser = NewLineParser(DefaultLatencyMarker, DefaultLatencyScale)

// ParseLine parses a status line with the default markers.
func ParseLine(line string) (Result, error) {
	return defaultLineParser.Parse(line)
}

// Parse parses a status line. Fields are parsed in order (time, throughput,
// latency) and parsing stops at the first failure; the returned Result holds
// whatever was parsed before the error.
func (p *LineParser) Parse(line string) (Result, error) {
	var r Result

	fields := strings.Split(line, ";")
	if len(fields) != 3 {
		return r, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformed, len(fields))
	}

	timeTok, err := firstToken(fields[0], "time")
	if err != nil {
		return r, err
	}
	t, err := strconv.ParseInt(timeTok, 10, 64)
	if err != nil {
		return r, fmt.Errorf("%w: time %q", ErrNotNumeric, timeTok)
	}
	r.Time = t
	r.Parsed |= FieldTime

	tputTok, err := firstToken(fields[1], "throughput")
	if err != nil {
		return r, err
	}
	tput, err := strconv.ParseFloat(tputTok, 64)
	if err != nil {
		return r, fmt.Errorf("%w: throughput %q", ErrNotNumeric, tputTok)
	}
	r.Throughput = tput
	r.Parsed |= FieldThroughput

	_, rest, ok := strings.Cut(fields[2], p.latencyMarker)
	if !ok {
		return r, fmt.Errorf("%w: latency marker %q not found", ErrMalformed, p.latencyMarker)
	}
	raw, _, _ := strings.Cut(rest, "]")
	raw = strings.TrimSpace(raw)
	lat, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return r, fmt.Errorf("%w: latency %q", ErrNotNumeric, raw)
	}
	r.Latency = lat / p.latencyScale
	r.Parsed |= FieldLatency

	return r, nil
}

func firstToken(field, name string) (string, error) {
	toks := strings.Fields(field)
	if len(toks) == 0 {
		return "", fmt.Errorf("%w: empty %s field", ErrMalformed, name)
	}
	return toks[0], nil
}
