package chartfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/racechart/textchart/domain/model"
)

// Reader decodes chart records one line at a time.
//
// Lines are split with the configured delimiter; quoting follows CSV rules
// leniently. Blank lines are skipped. Lines whose tag names no record kind
// are skipped, or reported as an error when Options.Strict is set.
type Reader struct {
	csv     *csv.Reader
	opts    Options
	line    int
	skipped int
	closer  func() error
}

// NewReader creates a Reader over r. The stream is read as is; use
// ReadChart or Open for decompression.
func NewReader(r io.Reader, opts Options) *Reader {
	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	return &Reader{
		csv:  cr,
		opts: opts,
	}
}

// Open opens a chart file by path. Compression is taken from
// opts.Compression, or detected from the extension when that is
// CompressionNone. The caller must Close the returned Reader.
func Open(path string, opts Options) (*Reader, error) {
	if !IsSupportedFile(filepath.Base(path)) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	compression := opts.Compression
	if compression == CompressionNone {
		compression = DetectCompressionType(path)
	}

	r, cleanup, err := openCompressed(path, compression)
	if err != nil {
		return nil, err
	}

	reader := NewReader(r, opts)
	reader.closer = cleanup
	return reader, nil
}

// Next returns the next decoded record. It returns io.EOF when the input
// is exhausted.
func (r *Reader) Next() (model.Record, error) {
	for {
		fields, err := r.csv.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("failed to read chart line: %w", err)
		}
		r.line, _ = r.csv.FieldPos(0)

		rec, err := model.Decode(model.Row(fields))
		if err != nil {
			if r.opts.Strict {
				return nil, fmt.Errorf("line %d: %w", r.line, err)
			}
			r.skipped++
			continue
		}
		return rec, nil
	}
}

// Line returns the line number of the record last returned by Next.
func (r *Reader) Line() int {
	return r.line
}

// Skipped returns the number of lines skipped for an unknown tag.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Close releases the file opened by Open. It is a no-op for readers
// created with NewReader.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	closer := r.closer
	r.closer = nil
	return closer()
}

// ReadChart decodes a whole chart stream, decompressing it according to
// opts.Compression.
func ReadChart(ctx context.Context, r io.Reader, opts Options) (*model.Chart, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	dr, cleanup, err := NewCompressionHandler(opts.Compression).CreateReader(r)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cleanup() // Ignore cleanup error; decoding already finished
	}()

	return collect(ctx, NewReader(dr, opts))
}

// ReadFile decodes a whole chart file.
func ReadFile(ctx context.Context, path string, opts Options) (*model.Chart, error) {
	reader, err := Open(path, opts)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	chart, err := collect(ctx, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return chart, nil
}

func collect(ctx context.Context, reader *Reader) (*model.Chart, error) {
	chart := model.NewChart()
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		chart.Add(rec)
	}

	if chart.Len() == 0 {
		return nil, ErrEmptyChart
	}
	return chart, nil
}
