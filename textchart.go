package textchart

import (
	"context"
	"database/sql"
	"sync"

	"github.com/racechart/textchart/chartfile"
	"github.com/racechart/textchart/domain/model"
	chartdriver "github.com/racechart/textchart/driver"
)

const (
	// DriverName is the name for the textchart driver
	DriverName = chartdriver.DriverName
)

var registerOnce sync.Once

// Register registers the textchart driver with database/sql.
// Calling it more than once has no effect.
func Register() {
	registerOnce.Do(func() {
		sql.Register(DriverName, chartdriver.NewDriver())
	})
}

func init() {
	Register()
}

// Type aliases for the decoded chart model
type (
	// Chart groups the decoded records of one chart file by kind
	Chart = model.Chart
	// Record is a decoded chart record of any kind
	Record = model.Record
)

// Open opens a database connection over one or more chart files or directories.
//
// Every chart is decoded and loaded into an in-memory SQLite database with one
// table per record kind: header, race, starter, exotic_wager, attendance,
// comment and footnote. Each table starts with a chart column holding the
// chart name (the file name without extensions), followed by the record's
// fields as TEXT, INTEGER or REAL columns. Missing numeric values are NULL.
//
// Supported inputs:
//   - Chart files (.txt, .chart, .csv)
//   - Compressed versions of above (.gz, .bz2, .xz, .zst)
//   - Directories (supported files directly inside are loaded)
//
// INSERT, UPDATE, and DELETE operations are applied only to the in-memory
// database. Use DumpDatabase to export modified data.
//
// Example usage:
//
//	db, err := textchart.Open("charts/aqu20240105.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.Close()
//
//	rows, err := db.Query(`
//		SELECT r.race_number, s.horse_name, s.win_payoff
//		FROM race r
//		JOIN starter s ON s.chart = r.chart AND s.race_number = r.race_number
//		WHERE s.official_finish = 1
//		ORDER BY r.race_number
//	`)
func Open(paths ...string) (*sql.DB, error) {
	return OpenContext(context.Background(), paths...)
}

// OpenContext is Open with a context that bounds loading the charts.
func OpenContext(ctx context.Context, paths ...string) (*sql.DB, error) {
	builder := NewBuilder().AddPaths(paths...)

	validatedBuilder, err := builder.Build(ctx)
	if err != nil {
		return nil, err
	}
	return validatedBuilder.Open(ctx)
}

// ReadFile decodes one chart file with default read options.
// Use chartfile.ReadFile for custom delimiters or strict tag checking.
func ReadFile(ctx context.Context, path string) (*Chart, error) {
	return chartfile.ReadFile(ctx, path, chartfile.NewOptions())
}
