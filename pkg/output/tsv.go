package output

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/ccollicutt/ycsbseries/pkg/series"
)

// TSVWriter writes samples as "<time>\t<value>" lines.
// Values use the shortest decimal form that round-trips, e.g. 2.5, 500, -1.
type TSVWriter struct {
	w   *bufio.Writer
	buf []byte
}

// NewTSVWriter creates a buffered TSV writer on w.
func NewTSVWriter(w io.Writer) *TSVWriter {
	return &TSVWriter{
		w:   bufio.NewWriter(w),
		buf: make([]byte, 0, 64),
	}
}

// Write renders a single sample.
func (t *TSVWriter) Write(s series.Sample) error {
	b := t.buf[:0]
	b = strconv.AppendInt(b, s.Time, 10)
	b = append(b, '\t')
	b = strconv.AppendFloat(b, s.Value, 'f', -1, 64)
	b = append(b, '\n')
	t.buf = b

	_, err := t.w.Write(b)
	return err
}

// Flush writes any buffered output.
func (t *TSVWriter) Flush() error {
	return t.w.Flush()
}

// Copy drains src into w and flushes it. It returns the number of samples
// written.
func Copy(ctx context.Context, w SampleWriter, src SampleSource) (int, error) {
	n := 0
	for {
		s, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			_ = w.Flush()
			return n, err
		}

		if err := w.Write(s); err != nil {
			return n, fmt.Errorf("writing sample: %w", err)
		}
		n++
	}

	if err := w.Flush(); err != nil {
		return n, fmt.Errorf("flushing output: %w", err)
	}
	return n, nil
}
