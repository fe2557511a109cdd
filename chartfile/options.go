package chartfile

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// DefaultDelimiter separates fields of a chart line.
const DefaultDelimiter = ','

// Options configures how chart lines are read.
//
// Example:
//
//	opts := chartfile.NewOptions().
//		WithDelimiter('|').
//		WithStrict(true)
type Options struct {
	// Delimiter separates the fields of a line. There is no detection.
	Delimiter rune
	// Compression of streams passed to ReadChart. Files opened by path
	// use the compression implied by their extension when this is CompressionNone.
	Compression CompressionType
	// Strict makes lines with an unknown record tag an error instead of
	// skipping them.
	Strict bool
}

// NewOptions creates Options with default values.
func NewOptions() Options {
	return Options{
		Delimiter:   DefaultDelimiter,
		Compression: CompressionNone,
	}
}

// WithDelimiter sets the field delimiter.
func (o Options) WithDelimiter(delimiter rune) Options {
	o.Delimiter = delimiter
	return o
}

// WithCompression sets the stream compression.
func (o Options) WithCompression(compression CompressionType) Options {
	o.Compression = compression
	return o
}

// WithStrict sets whether unknown record tags are errors.
func (o Options) WithStrict(strict bool) Options {
	o.Strict = strict
	return o
}

// Validate checks that the delimiter can split a line.
func (o Options) Validate() error {
	d := o.Delimiter
	if d == 0 || d == '"' || d == '\r' || d == '\n' || d == utf8.RuneError ||
		!utf8.ValidRune(d) || (unicode.IsSpace(d) && d != '\t') {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, d)
	}
	return nil
}
