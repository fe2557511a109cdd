package chartfile

import "errors"

var (
	// ErrUnsupportedFile is returned when a path does not carry a chart file extension
	ErrUnsupportedFile = errors.New("chartfile: unsupported file")

	// ErrEmptyChart is returned when a chart contains no decodable records
	ErrEmptyChart = errors.New("chartfile: empty chart")

	// ErrUnsupportedCompression is returned for an unknown compression name or type
	ErrUnsupportedCompression = errors.New("chartfile: unsupported compression")

	// ErrInvalidDelimiter is returned when the delimiter cannot split a line
	ErrInvalidDelimiter = errors.New("chartfile: invalid delimiter")
)
