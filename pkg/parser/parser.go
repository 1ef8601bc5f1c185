package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

const maxLineSize = 1024 * 1024 // 1MB max line size

// FileSource implements LineSource for reading a single log file.
// The file is opened on the first call to Next.
type FileSource struct {
	path string

	file    *os.File
	scanner *bufio.Scanner
	lineNum int
	done    bool
}

// NewFileSource creates a LineSource that reads from the given file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Next returns the next log line.
// Returns io.EOF when the file has been exhausted.
func (s *FileSource) Next(ctx context.Context) (*LogLine, error) {
	if s.done {
		return nil, io.EOF
	}

	if s.scanner == nil {
		if err := s.open(); err != nil {
			return nil, err
		}
	}

	line, err := scanLine(ctx, s.scanner, s.path, &s.lineNum)
	if err == io.EOF {
		s.done = true
		if cerr := s.Close(); cerr != nil {
			return nil, fmt.Errorf("closing %s: %w", s.path, cerr)
		}
	}
	return line, err
}

// Close releases resources.
func (s *FileSource) Close() error {
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		s.scanner = nil
		return err
	}
	return nil
}

func (s *FileSource) open() error {
	f, err := os.Open(s.path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", s.path, err)
	}

	s.file = f
	s.scanner = newScanner(f)
	s.lineNum = 0

	return nil
}

// ReaderSource implements LineSource over an arbitrary reader, such as stdin.
// Close does not close the underlying reader.
type ReaderSource struct {
	name    string
	scanner *bufio.Scanner
	lineNum int
}

// NewReaderSource creates a LineSource reading lines from r.
// The name is reported as the Source of every line.
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{
		name:    name,
		scanner: newScanner(r),
	}
}

// Next returns the next log line, or io.EOF when the reader is exhausted.
func (s *ReaderSource) Next(ctx context.Context) (*LogLine, error) {
	return scanLine(ctx, s.scanner, s.name, &s.lineNum)
}

// Close is a no-op.
func (s *ReaderSource) Close() error {
	return nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

func scanLine(ctx context.Context, sc *bufio.Scanner, source string, lineNum *int) (*LogLine, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if sc.Scan() {
		*lineNum++
		return &LogLine{
			Content: sc.Text(),
			Source:  source,
			LineNum: *lineNum,
		}, nil
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return nil, io.EOF
}
