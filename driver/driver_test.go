package driver

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/racechart/textchart/chartfile"
	"github.com/racechart/textchart/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aquChart = "../testdata/charts/aqu20240105.txt"
	belChart = "../testdata/charts/bel20240106.txt.gz"
)

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()

	db := sql.OpenDB(NewConnector(dsn, chartfile.NewOptions()))
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Ping())
	return db
}

func countRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(query, args...).Scan(&n))
	return n
}

func TestNewDriver(t *testing.T) {
	t.Parallel()

	d := NewDriver()
	if d == nil {
		t.Fatal("NewDriver() returned nil")
	}

	connector, err := d.OpenConnector(aquChart)
	if err != nil {
		t.Fatalf("OpenConnector() error = %v", err)
	}
	if connector.Driver() == nil {
		t.Error("Connector.Driver() returned nil")
	}
}

func TestDriverOpen(t *testing.T) {
	t.Parallel()

	d := NewDriver()

	tests := []struct {
		name    string
		dsn     string
		wantErr bool
	}{
		{name: "Valid chart file", dsn: aquChart, wantErr: false},
		{name: "Compressed chart file", dsn: belChart, wantErr: false},
		{name: "Non-existent file", dsn: "../testdata/charts/nonexistent.txt", wantErr: true},
		{name: "Empty DSN", dsn: " ; ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conn, err := d.Open(tt.dsn)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			defer conn.Close()

			stmt, err := conn.Prepare("SELECT COUNT(*) FROM header")
			if err != nil {
				t.Fatalf("Prepare() error = %v", err)
			}
			defer stmt.Close()

			rows, err := stmt.Query([]driver.Value{})
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			defer rows.Close()

			dest := make([]driver.Value, 1)
			if err := rows.Next(dest); err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			if dest[0] != int64(1) {
				t.Errorf("expected 1 header, got %v", dest[0])
			}
		})
	}
}

func TestConnector_Tables(t *testing.T) {
	t.Parallel()

	db := openDB(t, aquChart)

	want := map[string]int{
		"header":       1,
		"race":         2,
		"starter":      5,
		"exotic_wager": 1,
		"attendance":   1,
		"comment":      1,
		"footnote":     1,
	}
	for table, n := range want {
		assert.Equal(t, n, countRows(t, db, "SELECT COUNT(*) FROM ["+table+"]"), table)
	}

	rows, err := db.Query("PRAGMA table_info([race])")
	require.NoError(t, err)
	defer rows.Close()

	var names, types []string
	for rows.Next() {
		var (
			cid       int
			name, typ string
			notNull   int
			dflt      sql.NullString
			pk        int
		)
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk))
		names = append(names, name)
		types = append(types, typ)
	}
	require.NoError(t, rows.Err())

	schema, _ := model.SchemaFor(model.RecordTypeRace)
	require.Len(t, names, schema.Len()+1)
	assert.Equal(t, ChartColumn, names[0])
	assert.Equal(t, "final_time", names[49])
	assert.Equal(t, "REAL", types[49])
	assert.Equal(t, "INTEGER", types[1])
}

func TestConnector_TypedValues(t *testing.T) {
	t.Parallel()

	db := openDB(t, aquChart)

	var (
		chartName string
		purse     int
		finalTime float64
		fraction4 sql.NullFloat64
	)
	err := db.QueryRow(
		"SELECT chart, purse, final_time, fraction4 FROM race WHERE race_number = ?", 1,
	).Scan(&chartName, &purse, &finalTime, &fraction4)
	require.NoError(t, err)

	assert.Equal(t, "aqu20240105", chartName)
	assert.Equal(t, 25000, purse)
	assert.InDelta(t, 72.34, finalTime, 1e-9)
	assert.False(t, fraction4.Valid, "NaN should be stored as NULL")

	var winners int
	err = db.QueryRow("SELECT COUNT(*) FROM starter WHERE official_finish = 1").Scan(&winners)
	require.NoError(t, err)
	assert.Equal(t, 2, winners)
}

func TestConnector_MultiplePaths(t *testing.T) {
	t.Parallel()

	db := openDB(t, aquChart+";"+belChart)

	assert.Equal(t, 2, countRows(t, db, "SELECT COUNT(*) FROM header"))
	assert.Equal(t, 7, countRows(t, db, "SELECT COUNT(*) FROM starter"))
	assert.Equal(t, 2, countRows(t, db, "SELECT COUNT(*) FROM starter WHERE chart = ?", "bel20240106"))

	var odds sql.NullFloat64
	require.NoError(t, db.QueryRow(
		"SELECT odds FROM starter WHERE chart = 'bel20240106' AND horse_name = 'Golf Course'",
	).Scan(&odds))
	assert.False(t, odds.Valid)
}

func TestConnector_Directory(t *testing.T) {
	t.Parallel()

	db := openDB(t, "../testdata/charts")
	assert.Equal(t, 2, countRows(t, db, "SELECT COUNT(DISTINCT chart) FROM header"))
}

func TestConnector_DirectorySkipsBadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data, err := os.ReadFile(aquChart)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.txt"), data, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), []byte("\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o600))

	db := openDB(t, dir)
	assert.Equal(t, 1, countRows(t, db, "SELECT COUNT(*) FROM header"))
}

func TestConnector_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dsn     string
		wantErr error
	}{
		{name: "no paths", dsn: "", wantErr: ErrNoPathsProvided},
		{name: "unsupported file", dsn: "driver.go", wantErr: chartfile.ErrUnsupportedFile},
		{name: "duplicate chart name", dsn: aquChart + ";" + aquChart, wantErr: ErrDuplicateChartName},
		{name: "empty chart", dsn: "../testdata/empty.txt", wantErr: chartfile.ErrEmptyChart},
		{name: "null byte", dsn: "chart\x00.txt", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewConnector(tt.dsn, chartfile.NewOptions()).Connect(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Connect() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewConnector(t.TempDir(), chartfile.NewOptions()).Connect(context.Background())
		assert.ErrorIs(t, err, ErrNoFilesLoaded)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewConnector(aquChart, chartfile.NewOptions()).Connect(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConnector_Delimiter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sar20230801.chart")
	require.NoError(t, os.WriteFile(path, []byte("H|USA|SAR|20230801|1|D|\n"), 0o600))

	db := sql.OpenDB(NewConnector(path, chartfile.NewOptions().WithDelimiter('|')))
	defer db.Close()

	var track string
	require.NoError(t, db.QueryRow("SELECT track_code FROM header").Scan(&track))
	assert.Equal(t, "SAR", track)
}

func TestConnectionTransactions(t *testing.T) {
	t.Parallel()

	db := openDB(t, aquChart)

	tx, err := db.Begin()
	require.NoError(t, err)
	_, err = tx.Exec("DELETE FROM starter")
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
	assert.Equal(t, 5, countRows(t, db, "SELECT COUNT(*) FROM starter"))

	tx, err = db.Begin()
	require.NoError(t, err)
	_, err = tx.Exec("DELETE FROM footnote")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.Equal(t, 0, countRows(t, db, "SELECT COUNT(*) FROM footnote"))
}

func TestConnectionClose(t *testing.T) {
	t.Parallel()

	conn := &Connection{}
	if err := conn.Close(); err != nil {
		t.Errorf("Close() on empty connection error = %v", err)
	}
}

func TestBuildQueries(t *testing.T) {
	t.Parallel()

	schema, _ := model.SchemaFor(model.RecordTypeFootnote)

	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS [footnote] ([chart] TEXT NOT NULL, [race_number] INTEGER, [sequence_number] INTEGER, [text] TEXT)",
		buildCreateTableQuery(schema))
	assert.Equal(t, "INSERT INTO [footnote] VALUES (?, ?, ?, ?)", buildInsertQuery(schema))
	assert.Equal(t, "", buildPlaceholders(0))
	assert.Equal(t, "?", buildPlaceholders(1))
}

func TestToNamedValues(t *testing.T) {
	t.Parallel()

	args := toNamedValues("aqu", []any{7, "x", 1.5, math.NaN()})
	require.Len(t, args, 5)
	assert.Equal(t, driver.NamedValue{Ordinal: 1, Value: "aqu"}, args[0])
	assert.Equal(t, int64(7), args[1].Value)
	assert.Equal(t, "x", args[2].Value)
	assert.Equal(t, 1.5, args[3].Value)
	assert.Nil(t, args[4].Value)
	assert.Equal(t, 5, args[4].Ordinal)
}

func TestSplitDSN(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a.txt", "dir"}, splitDSN(" a.txt ; ;dir;"))
	assert.Empty(t, splitDSN(""))
	assert.True(t, strings.HasPrefix(DriverName, "textchart"))
}
