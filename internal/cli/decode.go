package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/racechart/textchart/chartfile"
	"github.com/racechart/textchart/domain/model"
)

// stdinPath reads a chart from standard input.
const stdinPath = "-"

var decodeKinds string

var decodeCmd = &cobra.Command{
	Use:   "decode FILE...",
	Short: "Print chart records as JSON lines",
	Long: `Decodes chart files and prints one JSON object per record with the
chart name, the record kind and every field of the record. Values that could
not be decoded as numbers are printed as null. Use "-" to read standard input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&decodeKinds, "kind", "", "comma separated record kinds to print (default all)")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	kinds, err := parseKinds(decodeKinds)
	if err != nil {
		return err
	}
	opts, err := cfg.Read.Options()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)

	for _, path := range args {
		var n int
		if path == stdinPath {
			n, err = decodeStream(cmd.Context(), enc, chartfile.NewReader(cmd.InOrStdin(), opts), "stdin", kinds)
		} else {
			n, err = decodeFile(cmd.Context(), enc, path, opts, kinds)
		}
		if err != nil {
			return err
		}
		slog.Debug("chart decoded", "path", path, "records", n)
	}
	return nil
}

func decodeFile(ctx context.Context, enc *json.Encoder, path string, opts chartfile.Options, kinds map[model.RecordType]bool) (int, error) {
	reader, err := chartfile.Open(path, opts)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	defer reader.Close()

	n, err := decodeStream(ctx, enc, reader, chartfile.TableName(path), kinds)
	if err != nil {
		return n, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

func decodeStream(ctx context.Context, enc *json.Encoder, reader *chartfile.Reader, chart string, kinds map[model.RecordType]bool) (int, error) {
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}

		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, err
		}
		if kinds != nil && !kinds[rec.Kind()] {
			continue
		}

		if err := enc.Encode(jsonRecord{chart: chart, record: rec}); err != nil {
			return n, fmt.Errorf("failed to encode record: %w", err)
		}
		n++
	}

	if skipped := reader.Skipped(); skipped > 0 {
		slog.Warn("lines with unknown record tags skipped", "chart", chart, "skipped", skipped)
	}
	return n, nil
}

// jsonRecord renders a record as a JSON object with keys in schema order.
type jsonRecord struct {
	chart  string
	record model.Record
}

// MarshalJSON implements json.Marshaler.
func (r jsonRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	if err := writeMember(&buf, "chart", r.chart); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeMember(&buf, "kind", r.record.Kind().Name()); err != nil {
		return nil, err
	}

	values := r.record.Values()
	for i, f := range r.record.Schema().Fields() {
		buf.WriteByte(',')
		if err := writeMember(&buf, f.Name, jsonValue(values[i])); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("field %s: %w", key, err)
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// jsonValue maps NaN and infinities, which JSON cannot carry, to null.
func jsonValue(v any) any {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return nil
	}
	return v
}
