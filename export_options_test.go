package textchart

import (
	"testing"

	"github.com/racechart/textchart/chartfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormat_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format OutputFormat
		want   string
		ext    string
	}{
		{name: "CSV format", format: OutputFormatCSV, want: "csv", ext: ".csv"},
		{name: "TSV format", format: OutputFormatTSV, want: "tsv", ext: ".tsv"},
		{name: "Parquet format", format: OutputFormatParquet, want: "parquet", ext: ".parquet"},
		{name: "XLSX format", format: OutputFormatXLSX, want: "xlsx", ext: ".xlsx"},
		{name: "Unknown format defaults to csv", format: OutputFormat(999), want: "csv", ext: ".csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.format.String(); got != tt.want {
				t.Errorf("OutputFormat.String() = %v, want %v", got, tt.want)
			}
			if got := tt.format.Extension(); got != tt.ext {
				t.Errorf("OutputFormat.Extension() = %v, want %v", got, tt.ext)
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]OutputFormat{
		"":        OutputFormatCSV,
		"CSV":     OutputFormatCSV,
		"tsv":     OutputFormatTSV,
		"parquet": OutputFormatParquet,
		"xlsx":    OutputFormatXLSX,
		" excel ": OutputFormatXLSX,
	} {
		got, err := ParseOutputFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseOutputFormat("ltsv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNewExportOptions(t *testing.T) {
	t.Parallel()

	opts := NewExportOptions()
	assert.Equal(t, OutputFormatCSV, opts.Format)
	assert.Equal(t, CompressionNone, opts.Compression)
	assert.NoError(t, opts.Validate())
}

func TestExportOptions_ChainedMethods(t *testing.T) {
	t.Parallel()

	base := NewExportOptions()
	opts := base.WithFormat(OutputFormatParquet).WithCompression(CompressionZSTD)

	assert.Equal(t, OutputFormatParquet, opts.Format)
	assert.Equal(t, CompressionZSTD, opts.Compression)
	assert.Equal(t, OutputFormatCSV, base.Format, "options are values")
}

func TestExportOptions_FileExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format      OutputFormat
		compression CompressionType
		want        string
	}{
		{format: OutputFormatCSV, compression: CompressionNone, want: ".csv"},
		{format: OutputFormatTSV, compression: CompressionGZ, want: ".tsv.gz"},
		{format: OutputFormatParquet, compression: CompressionXZ, want: ".parquet.xz"},
		{format: OutputFormatXLSX, compression: CompressionZSTD, want: ".xlsx.zst"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			opts := NewExportOptions().WithFormat(tt.format).WithCompression(tt.compression)
			assert.Equal(t, tt.want, opts.FileExtension())
		})
	}
}

func TestExportOptions_Validate(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, NewExportOptions().WithCompression(CompressionBZ2).Validate(), chartfile.ErrUnsupportedCompression)
	assert.ErrorIs(t, NewExportOptions().WithCompression(CompressionType(9)).Validate(), chartfile.ErrUnsupportedCompression)
	assert.ErrorIs(t, NewExportOptions().WithFormat(OutputFormat(9)).Validate(), ErrUnsupportedFormat)
	assert.NoError(t, NewExportOptions().WithFormat(OutputFormatXLSX).WithCompression(CompressionGZ).Validate())
}
