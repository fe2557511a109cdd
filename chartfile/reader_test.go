package chartfile

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/racechart/textchart/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleChart = "../testdata/charts/aqu20240105.txt"

func TestReadFile(t *testing.T) {
	t.Parallel()

	chart, err := ReadFile(context.Background(), sampleChart, NewOptions())
	require.NoError(t, err)

	assert.Equal(t, 12, chart.Len())
	require.Len(t, chart.Headers, 1)
	assert.Equal(t, "AQU", chart.Headers[0].TrackCode)
	assert.Equal(t, 2, chart.Headers[0].NumberOfRaces)

	require.Len(t, chart.Races, 2)
	race := chart.Races[0]
	assert.Equal(t, 1, race.RaceNumber)
	assert.Equal(t, 25000, race.Purse)
	assert.InDelta(t, 72.34, race.FinalTime, 1e-9)
	assert.InDelta(t, 22.34, race.Fraction1, 1e-9)
	assert.InDelta(t, 45.67, race.Fraction2, 1e-9)
	assert.InDelta(t, 60.12, race.Fraction3, 1e-9)
	assert.True(t, math.IsNaN(race.Fraction4))
	assert.Equal(t, model.SurfaceTurf, chart.Races[1].SurfaceCode())

	require.Len(t, chart.Starters, 5)
	assert.Equal(t, "Alpha Star", chart.Starters[0].HorseName)
	assert.InDelta(t, 6.20, chart.Starters[0].WinPayoff, 1e-9)
	assert.True(t, math.IsNaN(chart.Starters[1].WinPayoff))
	assert.Equal(t, "1A", chart.Starters[3].ProgramNumber)
	assert.True(t, chart.Starters[4].Scratched())

	require.Len(t, chart.Comments, 1)
	assert.Equal(t, "Inquiry, start", chart.Comments[0].Text)
	require.Len(t, chart.Footnotes, 1)
	require.Len(t, chart.Attendance, 1)
	assert.Equal(t, 4512, chart.Attendance[0].Attendance)
	require.Len(t, chart.ExoticWagers, 1)
	assert.Equal(t, "1-2", chart.ExoticWagers[0].WinningNumbers)
}

func TestReadFile_Compressed(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(sampleChart)
	require.NoError(t, err)

	for _, compression := range []CompressionType{CompressionGZ, CompressionXZ, CompressionZSTD} {
		t.Run(compression.String(), func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "aqu20240105.txt"+compression.Extension())
			w, cleanup, err := CreateWriterForFile(path, compression)
			require.NoError(t, err)
			_, err = w.Write(data)
			require.NoError(t, err)
			require.NoError(t, cleanup())

			chart, err := ReadFile(context.Background(), path, NewOptions())
			require.NoError(t, err)
			assert.Equal(t, 12, chart.Len())
			assert.Len(t, chart.Starters, 5)
		})
	}
}

func TestReadFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()

		_, err := ReadFile(context.Background(), "../testdata/chart.parquet", NewOptions())
		assert.ErrorIs(t, err, ErrUnsupportedFile)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := ReadFile(context.Background(), "../testdata/missing.txt", NewOptions())
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty chart", func(t *testing.T) {
		t.Parallel()

		_, err := ReadFile(context.Background(), "../testdata/empty.txt", NewOptions())
		assert.ErrorIs(t, err, ErrEmptyChart)
	})

	t.Run("invalid delimiter", func(t *testing.T) {
		t.Parallel()

		_, err := ReadFile(context.Background(), sampleChart, NewOptions().WithDelimiter('"'))
		assert.ErrorIs(t, err, ErrInvalidDelimiter)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := ReadFile(ctx, sampleChart, NewOptions())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReader_UnknownTags(t *testing.T) {
	t.Parallel()

	t.Run("skipped by default", func(t *testing.T) {
		t.Parallel()

		reader, err := Open("../testdata/unknown_tag.txt", NewOptions())
		require.NoError(t, err)
		defer reader.Close()

		var kinds []model.RecordType
		for {
			rec, err := reader.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			require.NoError(t, err)
			kinds = append(kinds, rec.Kind())
		}
		assert.Equal(t, []model.RecordType{model.RecordTypeHeader, model.RecordTypeFootnote}, kinds)
		assert.Equal(t, 1, reader.Skipped())
		assert.Equal(t, 3, reader.Line())
	})

	t.Run("error when strict", func(t *testing.T) {
		t.Parallel()

		_, err := ReadFile(context.Background(), "../testdata/unknown_tag.txt", NewOptions().WithStrict(true))
		require.ErrorIs(t, err, model.ErrUnknownRecordType)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestReadChart(t *testing.T) {
	t.Parallel()

	t.Run("custom delimiter", func(t *testing.T) {
		t.Parallel()

		input := "H|USA|SAR|20230801|1|D|\n\nF|1|1|  walked over  \n"
		chart, err := ReadChart(context.Background(), strings.NewReader(input), NewOptions().WithDelimiter('|'))
		require.NoError(t, err)

		require.Len(t, chart.Headers, 1)
		assert.Equal(t, "SAR", chart.Headers[0].TrackCode)
		require.Len(t, chart.Footnotes, 1)
		assert.Equal(t, "  walked over", chart.Footnotes[0].Text)
	})

	t.Run("compressed stream", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w, cleanup, err := NewCompressionHandler(CompressionGZ).CreateWriter(&buf)
		require.NoError(t, err)
		_, err = io.WriteString(w, "F,1,1,note\n")
		require.NoError(t, err)
		require.NoError(t, cleanup())

		chart, err := ReadChart(context.Background(), &buf, NewOptions().WithCompression(CompressionGZ))
		require.NoError(t, err)
		assert.Equal(t, 1, chart.Len())
	})

	t.Run("short rows decode with defaults", func(t *testing.T) {
		t.Parallel()

		chart, err := ReadChart(context.Background(), strings.NewReader("R,7\nS\n"), NewOptions())
		require.NoError(t, err)

		require.Len(t, chart.Races, 1)
		assert.Equal(t, 7, chart.Races[0].RaceNumber)
		assert.True(t, math.IsNaN(chart.Races[0].FinalTime))
		require.Len(t, chart.Starters, 1)
		assert.Equal(t, 0, chart.Starters[0].RaceNumber)
	})

	t.Run("empty stream", func(t *testing.T) {
		t.Parallel()

		_, err := ReadChart(context.Background(), strings.NewReader(""), NewOptions())
		assert.ErrorIs(t, err, ErrEmptyChart)
	})
}

func TestReader_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	reader, err := Open(sampleChart, NewOptions())
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.NoError(t, reader.Close())

	assert.NoError(t, NewReader(strings.NewReader(""), NewOptions()).Close())
}
