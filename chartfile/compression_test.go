package chartfile

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		compression CompressionType
		name        string
		ext         string
	}{
		{compression: CompressionNone, name: "none", ext: ""},
		{compression: CompressionGZ, name: "gz", ext: ".gz"},
		{compression: CompressionBZ2, name: "bz2", ext: ".bz2"},
		{compression: CompressionXZ, name: "xz", ext: ".xz"},
		{compression: CompressionZSTD, name: "zstd", ext: ".zst"},
		{compression: CompressionType(99), name: "none", ext: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name+tt.ext, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.name, tt.compression.String())
			assert.Equal(t, tt.ext, tt.compression.Extension())
		})
	}
}

func TestParseCompressionType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  CompressionType
	}{
		{input: "", want: CompressionNone},
		{input: "none", want: CompressionNone},
		{input: "GZ", want: CompressionGZ},
		{input: "gzip", want: CompressionGZ},
		{input: "bz2", want: CompressionBZ2},
		{input: "xz", want: CompressionXZ},
		{input: "zstd", want: CompressionZSTD},
		{input: "zst", want: CompressionZSTD},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCompressionType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCompressionType("lz4")
	assert.ErrorIs(t, err, ErrUnsupportedCompression)
}

func TestDetectCompressionType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CompressionGZ, DetectCompressionType("a.txt.GZ"))
	assert.Equal(t, CompressionBZ2, DetectCompressionType("a.txt.bz2"))
	assert.Equal(t, CompressionXZ, DetectCompressionType("a.txt.xz"))
	assert.Equal(t, CompressionZSTD, DetectCompressionType("a.txt.zst"))
	assert.Equal(t, CompressionNone, DetectCompressionType("a.txt"))

	assert.Equal(t, "a.txt", RemoveCompressionExtension("a.txt.zst"))
	assert.Equal(t, "a.txt", RemoveCompressionExtension("a.txt"))
}

func TestCompressionHandler_RoundTrip(t *testing.T) {
	t.Parallel()

	payload := []byte("H,USA,AQU,20240105,1,D,\n")

	for _, compression := range []CompressionType{CompressionNone, CompressionGZ, CompressionXZ, CompressionZSTD} {
		t.Run(compression.String(), func(t *testing.T) {
			t.Parallel()

			handler := NewCompressionHandler(compression)
			assert.Equal(t, compression.Extension(), handler.Extension())

			var buf bytes.Buffer
			w, closeWriter, err := handler.CreateWriter(&buf)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, closeWriter())

			r, closeReader, err := handler.CreateReader(&buf)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, closeReader())
			assert.Equal(t, payload, got)
		})
	}
}

func TestCompressionHandler_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := NewCompressionHandler(CompressionBZ2).CreateWriter(&bytes.Buffer{})
	require.Error(t, err)

	_, _, err = NewCompressionHandler(CompressionGZ).CreateReader(bytes.NewReader([]byte("not gzip")))
	require.Error(t, err)

	_, _, err = NewCompressionHandler(CompressionType(42)).CreateReader(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnsupportedCompression)
}
