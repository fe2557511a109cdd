package textchart

import (
	"fmt"
	"strings"

	"github.com/racechart/textchart/chartfile"
)

// OutputFormat represents the output file format
type OutputFormat int

const (
	// OutputFormatCSV represents CSV output format
	OutputFormatCSV OutputFormat = iota
	// OutputFormatTSV represents TSV output format
	OutputFormatTSV
	// OutputFormatParquet represents Parquet output format
	OutputFormatParquet
	// OutputFormatXLSX represents Excel XLSX output format
	OutputFormatXLSX
)

// String returns the string representation of OutputFormat
func (f OutputFormat) String() string {
	switch f {
	case OutputFormatCSV:
		return "csv"
	case OutputFormatTSV:
		return "tsv"
	case OutputFormatParquet:
		return "parquet"
	case OutputFormatXLSX:
		return "xlsx"
	default:
		return "csv"
	}
}

// Extension returns the file extension for the format
func (f OutputFormat) Extension() string {
	switch f {
	case OutputFormatCSV:
		return ".csv"
	case OutputFormatTSV:
		return ".tsv"
	case OutputFormatParquet:
		return ".parquet"
	case OutputFormatXLSX:
		return ".xlsx"
	default:
		return ".csv"
	}
}

// ParseOutputFormat maps a format name such as "csv" or "parquet" to its OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "csv":
		return OutputFormatCSV, nil
	case "tsv":
		return OutputFormatTSV, nil
	case "parquet":
		return OutputFormatParquet, nil
	case "xlsx", "excel":
		return OutputFormatXLSX, nil
	default:
		return OutputFormatCSV, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Type aliases for the chart file layer
type (
	// CompressionType represents the compression type
	CompressionType = chartfile.CompressionType
	// ReadOptions configures how chart files are read
	ReadOptions = chartfile.Options
)

// Re-export constants for easier use
const (
	// CompressionNone represents no compression
	CompressionNone = chartfile.CompressionNone
	// CompressionGZ represents gzip compression
	CompressionGZ = chartfile.CompressionGZ
	// CompressionBZ2 represents bzip2 compression
	CompressionBZ2 = chartfile.CompressionBZ2
	// CompressionXZ represents xz compression
	CompressionXZ = chartfile.CompressionXZ
	// CompressionZSTD represents zstd compression
	CompressionZSTD = chartfile.CompressionZSTD
)

// NewReadOptions creates ReadOptions with default values (comma delimiter, lenient)
var NewReadOptions = chartfile.NewOptions

// ExportOptions configure the output of Export and DumpDatabase
type ExportOptions struct {
	// Format specifies the output file format
	Format OutputFormat
	// Compression specifies the compression type
	Compression CompressionType
}

// NewExportOptions creates new ExportOptions with default values (CSV format, no compression)
func NewExportOptions() ExportOptions {
	return ExportOptions{
		Format:      OutputFormatCSV,
		Compression: CompressionNone,
	}
}

// WithFormat sets the output format
//
// Example:
//
//	options := NewExportOptions().WithFormat(OutputFormatParquet)
func (o ExportOptions) WithFormat(format OutputFormat) ExportOptions {
	o.Format = format
	return o
}

// WithCompression sets the compression type
func (o ExportOptions) WithCompression(compression CompressionType) ExportOptions {
	o.Compression = compression
	return o
}

// FileExtension returns the complete file extension including compression
func (o ExportOptions) FileExtension() string {
	return o.Format.Extension() + o.Compression.Extension()
}

// Validate reports whether the options can be used for writing.
func (o ExportOptions) Validate() error {
	switch o.Format {
	case OutputFormatCSV, OutputFormatTSV, OutputFormatParquet, OutputFormatXLSX:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, o.Format)
	}

	switch o.Compression {
	case CompressionNone, CompressionGZ, CompressionXZ, CompressionZSTD:
		return nil
	case CompressionBZ2:
		return fmt.Errorf("%w: bzip2 is not supported for writing", chartfile.ErrUnsupportedCompression)
	default:
		return fmt.Errorf("%w: %d", chartfile.ErrUnsupportedCompression, o.Compression)
	}
}
