package textchart

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/parquet"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/racechart/textchart/chartfile"
	"github.com/racechart/textchart/domain/model"
	chartdriver "github.com/racechart/textchart/driver"
	"github.com/xuri/excelize/v2"
)

// exportTable is a typed, row-oriented view of one record kind.
// Row values are string, int, int64, float64 or nil.
type exportTable struct {
	name   string
	fields []model.Field
	rows   [][]any
}

// Export writes every non-empty record kind of chart to outputDir, one file
// per kind named "<name>_<kind><ext>" (or "<kind><ext>" when name is empty).
// Each file starts with a header of schema field names.
//
// Example usage:
//
//	chart, err := textchart.ReadFile(ctx, "aqu20240105.txt")
//	if err != nil {
//		return err
//	}
//	opts := textchart.NewExportOptions().
//		WithFormat(textchart.OutputFormatParquet).
//		WithCompression(textchart.CompressionZSTD)
//	err = textchart.Export(ctx, chart, "./out", "aqu20240105", opts)
func Export(ctx context.Context, chart *model.Chart, outputDir, name string, opts ExportOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if chart == nil || chart.Len() == 0 {
		return ErrEmptyData
	}
	return exportTables(ctx, chartTables(chart), outputDir, name, opts)
}

// DumpDatabase exports all chart tables of a database opened with this
// package to outputDir, one file per non-empty table named "<table><ext>".
// The leading chart column is included so rows from several files stay apart.
//
// Modifications made through SQL are never written back to the source chart
// files; DumpDatabase is the way to persist them.
func DumpDatabase(ctx context.Context, db *sql.DB, outputDir string, opts ...ExportOptions) error {
	options := NewExportOptions()
	if len(opts) > 0 {
		options = opts[0]
	}
	if err := options.Validate(); err != nil {
		return err
	}

	tables, err := databaseTables(ctx, db)
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		return ErrNoTables
	}
	return exportTables(ctx, tables, outputDir, "", options)
}

func exportTables(ctx context.Context, tables []exportTable, outputDir, name string, opts ExportOptions) error {
	if err := newValidator().validateOutputDirectory(outputDir); err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return NewErrorContext("export", outputDir).Error(err)
	}

	written := 0
	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(table.rows) == 0 {
			continue
		}

		path := filepath.Join(outputDir, exportFileName(name, table.name, opts))
		if err := writeTableFile(path, table, opts); err != nil {
			return NewErrorContext("export", path).WithTable(table.name).Error(err)
		}
		written++
	}
	if written == 0 {
		return ErrEmptyData
	}
	return nil
}

func exportFileName(name, table string, opts ExportOptions) string {
	if name == "" {
		return table + opts.FileExtension()
	}
	return name + "_" + table + opts.FileExtension()
}

func chartTables(chart *model.Chart) []exportTable {
	tables := make([]exportTable, 0, len(model.RecordTypes()))
	for _, kind := range model.RecordTypes() {
		schema, _ := model.SchemaFor(kind)
		records := chart.Records(kind)

		rows := make([][]any, 0, len(records))
		for _, rec := range records {
			rows = append(rows, rec.Values())
		}
		tables = append(tables, exportTable{
			name:   kind.Name(),
			fields: schema.Fields(),
			rows:   rows,
		})
	}
	return tables
}

func databaseTables(ctx context.Context, db *sql.DB) ([]exportTable, error) {
	var tables []exportTable
	for _, kind := range model.RecordTypes() {
		exists, err := tableExists(ctx, db, chartdriver.TableName(kind))
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}

		schema, _ := model.SchemaFor(kind)
		fields := append([]model.Field{{Name: chartdriver.ChartColumn, Type: model.ColumnTypeText}}, schema.Fields()...)
		rows, err := queryRows(ctx, db, chartdriver.TableName(kind), len(fields))
		if err != nil {
			return nil, err
		}
		tables = append(tables, exportTable{name: kind.Name(), fields: fields, rows: rows})
	}
	return tables, nil
}

func tableExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to look up table %s: %w", name, err)
	}
	return n > 0, nil
}

func queryRows(ctx context.Context, db *sql.DB, table string, columns int) ([][]any, error) {
	rows, err := db.QueryContext(ctx, "SELECT * FROM ["+table+"]") //nolint:gosec // table names come from the fixed record kinds
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", table, err)
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		values := make([]any, columns)
		dest := make([]any, columns)
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan table %s: %w", table, err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		out = append(out, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}
	return out, nil
}

func writeTableFile(path string, table exportTable, opts ExportOptions) (err error) {
	writer, cleanup, err := chartfile.CreateWriterForFile(path, opts.Compression)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := cleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	switch opts.Format {
	case OutputFormatCSV:
		return writeDelimited(writer, table, ',')
	case OutputFormatTSV:
		return writeDelimited(writer, table, '\t')
	case OutputFormatParquet:
		return writeParquet(writer, table)
	case OutputFormatXLSX:
		return writeXLSX(writer, table)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, opts.Format)
	}
}

func writeDelimited(w io.Writer, table exportTable, comma rune) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = comma

	header := make([]string, len(table.fields))
	for i, f := range table.fields {
		header[i] = f.Name
	}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(table.fields))
	for _, row := range table.rows {
		for i, v := range row {
			record[i] = formatValue(v)
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// formatValue renders a value for delimited output. NaN and NULL become empty.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if math.IsNaN(v) {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func arrowType(ct model.ColumnType) arrow.DataType {
	switch ct {
	case model.ColumnTypeInteger:
		return arrow.PrimitiveTypes.Int64
	case model.ColumnTypeReal:
		return arrow.PrimitiveTypes.Float64
	default:
		return arrow.BinaryTypes.String
	}
}

func arrowSchema(fields []model.Field) *arrow.Schema {
	arrowFields := make([]arrow.Field, len(fields))
	for i, f := range fields {
		arrowFields[i] = arrow.Field{Name: f.Name, Type: arrowType(f.Type), Nullable: true}
	}
	return arrow.NewSchema(arrowFields, nil)
}

func writeParquet(w io.Writer, table exportTable) error {
	schema := arrowSchema(table.fields)

	builder := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer builder.Release()

	for _, row := range table.rows {
		for i, v := range row {
			appendArrowValue(builder.Field(i), v)
		}
	}
	record := builder.NewRecord()
	defer record.Release()

	// The parquet writer closes its sink; the compression cleanup owns that.
	sink := struct{ io.Writer }{w}
	fileWriter, err := pqarrow.NewFileWriter(schema, sink, parquet.NewWriterProperties(), pqarrow.DefaultWriterProps())
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	if err := fileWriter.Write(record); err != nil {
		_ = fileWriter.Close()
		return fmt.Errorf("failed to write parquet record: %w", err)
	}
	if err := fileWriter.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// appendArrowValue appends v to a column builder. NaN reals stay NaN.
func appendArrowValue(b array.Builder, v any) {
	if v == nil {
		b.AppendNull()
		return
	}

	switch b := b.(type) {
	case *array.Int64Builder:
		switch n := v.(type) {
		case int:
			b.Append(int64(n))
		case int64:
			b.Append(n)
		default:
			b.AppendNull()
		}
	case *array.Float64Builder:
		switch n := v.(type) {
		case float64:
			b.Append(n)
		case int64:
			b.Append(float64(n))
		case int:
			b.Append(float64(n))
		default:
			b.AppendNull()
		}
	case *array.StringBuilder:
		b.Append(formatValue(v))
	default:
		b.AppendNull()
	}
}

func writeXLSX(w io.Writer, table exportTable) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	sheet := table.name
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	stream, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet writer: %w", err)
	}

	header := make([]any, len(table.fields))
	for i, field := range table.fields {
		header[i] = field.Name
	}
	if err := stream.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range table.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cells := make([]any, len(row))
		for j, v := range row {
			if n, ok := v.(float64); ok && math.IsNaN(n) {
				continue
			}
			cells[j] = v
		}
		if err := stream.SetRow(cell, cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := stream.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
