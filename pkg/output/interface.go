// Package output writes extracted sample series.
package output

import (
	"context"

	"github.com/ccollicutt/ycsbseries/pkg/series"
)

// SampleWriter renders samples to an output stream.
type SampleWriter interface {
	// Write renders a single sample.
	Write(s series.Sample) error

	// Flush writes any buffered output.
	Flush() error
}

// SampleSource yields samples until io.EOF.
type SampleSource interface {
	Next(ctx context.Context) (series.Sample, error)
}
