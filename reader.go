package svmlight

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Reader yields one Row per successfully parsed line of a line source. It is
// forward-only and single-pass: malformed lines are skipped silently, and the
// sequence ends at source exhaustion or on the first read error. Reader is
// not safe for concurrent use.
type Reader[T, F any] struct {
	scanner *bufio.Scanner
	parser  Parser[T, F]
	row     Row[T, F]
	line    int
	closers []io.Closer
}

// maxLineSize caps a single input line. Extreme-classification rows
// routinely run past bufio.Scanner's default 64KiB token limit.
const maxLineSize = 16 * 1024 * 1024

// NewReader wraps an existing line source. The caller keeps ownership of r;
// Close on the returned Reader is a no-op.
func NewReader[T, F any](r io.Reader, target TargetDecoder[T], features FeatureDecoder[F]) *Reader[T, F] {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader[T, F]{
		scanner: sc,
		parser:  Parser[T, F]{Target: target, Features: features},
	}
}

// Open opens the file at path and returns a Reader over its lines. Files
// ending in ".gz" or ".zst" are decompressed transparently. The Reader owns
// the file handle; release it with Close.
func Open[T, F any](path string, target TargetDecoder[T], features FeatureDecoder[F]) (*Reader[T, F], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	var src io.Reader = f
	closers := []io.Closer{f}
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read gzip stream %s: %w", path, err)
		}
		src = zr
		closers = append([]io.Closer{zr}, closers...)
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read zstd stream %s: %w", path, err)
		}
		rc := zr.IOReadCloser()
		src = rc
		closers = append([]io.Closer{rc}, closers...)
	}

	rd := NewReader(src, target, features)
	rd.closers = closers
	return rd, nil
}

// Scan advances to the next successfully parsed Row, skipping malformed
// lines. It returns false when the source is exhausted or a read error
// occurs; the error, if any, is available via Err.
func (r *Reader[T, F]) Scan() bool {
	for r.scanner.Scan() {
		r.line++
		if row, ok := r.parser.ParseLine(r.scanner.Text()); ok {
			r.row = row
			return true
		}
	}
	return false
}

// Row returns the Row produced by the most recent successful Scan.
func (r *Reader[T, F]) Row() Row[T, F] {
	return r.row
}

// Err returns the first non-EOF error encountered while reading the source.
// Per-line decode failures are not errors and are never reported here.
func (r *Reader[T, F]) Err() error {
	return r.scanner.Err()
}

// LineNumber returns the number of source lines consumed so far, skipped
// ones included.
func (r *Reader[T, F]) LineNumber() int {
	return r.line
}

// All returns a single-use iterator over the remaining rows, for use with
// range-over-func. It shares the Reader's cursor: rows consumed through it
// are gone from subsequent Scan calls and vice versa.
func (r *Reader[T, F]) All() iter.Seq[Row[T, F]] {
	return func(yield func(Row[T, F]) bool) {
		for r.Scan() {
			if !yield(r.row) {
				return
			}
		}
	}
}

// Close releases the underlying source. Only Readers constructed by Open own
// a source; for Readers from NewReader, Close does nothing.
func (r *Reader[T, F]) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	r.closers = nil
	return first
}
