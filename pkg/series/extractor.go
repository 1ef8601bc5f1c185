package series

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ccollicutt/ycsbseries/pkg/parser"
)

// Option configures an Extractor.
type Option func(*Extractor)

// WithDelta sets the nominal time step between samples.
func WithDelta(delta int64) Option {
	return func(e *Extractor) {
		e.delta = delta
	}
}

// WithMetric selects the reported metric.
func WithMetric(m parser.Metric) Option {
	return func(e *Extractor) {
		e.metric = m
	}
}

// WithMarkers sets the substrings that identify status lines and failed
// operation lines. Empty values keep the current marker.
func WithMarkers(ops, failed string) Option {
	return func(e *Extractor) {
		if ops != "" {
			e.opsMarker = ops
		}
		if failed != "" {
			e.failedMarker = failed
		}
	}
}

// WithLineParser sets the parser used for status lines.
func WithLineParser(p *parser.LineParser) Option {
	return func(e *Extractor) {
		if p != nil {
			e.lineParser = p
		}
	}
}

// WithLogger sets the logger for skipped and irregular lines.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Extractor) {
		e.log = l
	}
}

// Extractor produces the sample series of a log in a single forward pass.
// It is not safe for concurrent use and cannot be restarted.
type Extractor struct {
	src          parser.LineSource
	lineParser   *parser.LineParser
	delta        int64
	metric       parser.Metric
	opsMarker    string
	failedMarker string
	log          zerolog.Logger

	expected int64
	gap      gap
	pending  *Sample
	done     bool
	stats    Stats
}

// NewExtractor creates an extractor reading from src.
func NewExtractor(src parser.LineSource, opts ...Option) (*Extractor, error) {
	if src == nil {
		return nil, errors.New("line source is required")
	}

	e := &Extractor{
		src:          src,
		lineParser:   parser.NewLineParser(parser.DefaultLatencyMarker, parser.DefaultLatencyScale),
		delta:        DefaultDelta,
		metric:       parser.MetricAvgLatency,
		opsMarker:    DefaultOpsMarker,
		failedMarker: DefaultFailureMarker,
		log:          zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.delta <= 0 {
		return nil, fmt.Errorf("delta must be positive, got %d", e.delta)
	}
	if !e.metric.Valid() {
		return nil, fmt.Errorf("unknown metric %q (use avglatency or throughput)", e.metric)
	}

	e.expected = -e.delta

	return e, nil
}

// Next returns the next sample of the series.
// Returns io.EOF once the source is exhausted and every sample was emitted.
func (e *Extractor) Next(ctx context.Context) (Sample, error) {
	for {
		if !e.gap.empty() {
			e.stats.GapFills++
			e.stats.Samples++
			return e.gap.pop(), nil
		}

		if e.pending != nil {
			s := *e.pending
			e.pending = nil
			e.stats.Samples++
			return s, nil
		}

		if e.done {
			return Sample{}, io.EOF
		}

		line, err := e.src.Next(ctx)
		if err == io.EOF {
			e.done = true
			continue
		}
		if err != nil {
			return Sample{}, err
		}

		e.process(line)
	}
}

// All returns an iterator over the remaining samples. Iteration stops after
// the first error, which is yielded with a zero Sample.
func (e *Extractor) All(ctx context.Context) iter.Seq2[Sample, error] {
	return func(yield func(Sample, error) bool) {
		for {
			s, err := e.Next(ctx)
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Sample{}, err)
				return
			}
			if !yield(s, nil) {
				return
			}
		}
	}
}

// Stats returns the counters accumulated so far.
func (e *Extractor) Stats() Stats {
	return e.stats
}

func (e *Extractor) process(line *parser.LogLine) {
	e.stats.LinesRead++

	if strings.Contains(line.Content, e.failedMarker) {
		e.stats.FailedLines++
		return
	}
	if !strings.Contains(line.Content, e.opsMarker) {
		return
	}
	e.stats.OpsLines++

	r, err := e.lineParser.Parse(line.Content)
	if !r.Has(parser.FieldTime) {
		e.stats.UnparsedLines++
		e.log.Warn().
			Err(err).
			Str("source", line.Source).
			Int("line", line.LineNum).
			Msg("Skipping status line without time")
		return
	}

	value, ok := r.Value(e.metric)
	if !ok {
		value = NoData
		e.stats.PartialLines++
		e.log.Debug().
			Err(err).
			Str("source", line.Source).
			Int("line", line.LineNum).
			Str("metric", string(e.metric)).
			Msg("Metric not found in status line")
	}

	if r.Time <= e.expected {
		e.stats.OutOfOrder++
		e.log.Warn().
			Int64("time", r.Time).
			Int64("previous", e.expected).
			Str("source", line.Source).
			Int("line", line.LineNum).
			Msg("Status line time did not advance")
	} else {
		e.gap = newGap(e.expected, r.Time, e.delta)
	}
	e.expected = r.Time
	e.pending = &Sample{Time: r.Time, Value: value}
}
