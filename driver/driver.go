// Package driver provides a database/sql driver over text chart files.
//
// Chart files are decoded and loaded into an in-memory SQLite database with
// one table per record kind (header, race, starter, exotic_wager,
// attendance, comment, footnote). Every table starts with a chart column
// holding the name of the file a row came from.
//
// Key features:
//   - Plain and compressed chart files (gzip, bzip2, xz, zstd)
//   - Several files or directories in one DSN, separated by semicolons
//   - Typed columns (TEXT, INTEGER, REAL); unparseable reals are NULL
//
// Usage:
//
//	import _ "github.com/racechart/textchart/driver"
//	db, err := sql.Open("textchart", "charts/aqu20240105.txt;charts/bel")
package driver

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/racechart/textchart/chartfile"
	"github.com/racechart/textchart/domain/model"
	"modernc.org/sqlite"
)

// DriverName is the name the driver is registered under.
const DriverName = "textchart"

// ChartColumn is the leading column of every table. It holds the chart name
// derived from the source file name.
const ChartColumn = "chart"

// Driver implements database/sql/driver.Driver interface for chart files.
type Driver struct{}

// Connector implements database/sql/driver.Connector interface.
// The dsn field contains chart file or directory paths separated by semicolons.
type Connector struct {
	driver *Driver
	dsn    string
	opts   chartfile.Options
}

// Connection implements database/sql/driver.Conn interface.
// It wraps an underlying SQLite connection that contains loaded chart data.
type Connection struct {
	conn driver.Conn
}

// Transaction implements database/sql/driver.Tx interface.
type Transaction struct {
	tx driver.Tx
}

// NewDriver creates a new chart SQL driver
func NewDriver() *Driver {
	return &Driver{}
}

// Open implements driver.Driver interface
func (d *Driver) Open(dsn string) (driver.Conn, error) {
	connector, err := d.OpenConnector(dsn)
	if err != nil {
		return nil, err
	}
	return connector.Connect(context.Background())
}

// OpenConnector implements driver.DriverContext interface.
// Files are read with chartfile.NewOptions().
func (d *Driver) OpenConnector(dsn string) (driver.Connector, error) {
	return NewConnector(dsn, chartfile.NewOptions()), nil
}

// NewConnector creates a connector that reads the DSN's charts with opts.
// Use it with sql.OpenDB to read charts with a non-default delimiter.
func NewConnector(dsn string, opts chartfile.Options) *Connector {
	return &Connector{
		driver: NewDriver(),
		dsn:    dsn,
		opts:   opts,
	}
}

// Connect implements driver.Connector interface
func (c *Connector) Connect(ctx context.Context) (driver.Conn, error) {
	sqliteDriver := &sqlite.Driver{}
	conn, err := sqliteDriver.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory database: %w", err)
	}

	if err := c.load(ctx, conn); err != nil {
		_ = conn.Close() // Ignore close error since we're already returning an error
		return nil, fmt.Errorf("failed to load charts: %w", err)
	}

	return &Connection{conn: conn}, nil
}

// Driver implements driver.Connector interface
func (c *Connector) Driver() driver.Driver {
	return c.driver
}

// load creates the record tables and loads every chart named by the DSN.
func (c *Connector) load(ctx context.Context, conn driver.Conn) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	files, fromDir, err := c.collectAllFiles(splitDSN(c.dsn))
	if err != nil {
		return err
	}

	for _, schema := range model.Schemas() {
		if err := execContext(ctx, conn, buildCreateTableQuery(schema), nil); err != nil {
			return fmt.Errorf("failed to create table %s: %w", schema.Kind().Name(), err)
		}
	}

	loaded := 0
	for _, path := range files {
		if err := c.loadFile(ctx, conn, path); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			// Files found by scanning a directory are best effort.
			if fromDir[path] {
				slog.Warn("skipping chart file", "file", SanitizeForLog(path), "error", err)
				continue
			}
			return fmt.Errorf("failed to load file %s: %w", path, err)
		}
		loaded++
	}

	if loaded == 0 {
		return ErrNoFilesLoaded
	}
	return nil
}

func splitDSN(dsn string) []string {
	var paths []string
	for _, p := range strings.Split(dsn, ";") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// collectAllFiles expands the DSN paths into chart files and rejects two
// files that would share a chart name. The returned set marks files that
// were found by scanning a directory.
func (c *Connector) collectAllFiles(paths []string) ([]string, map[string]bool, error) {
	if len(paths) == 0 {
		return nil, nil, ErrNoPathsProvided
	}

	chartNames := make(map[string]string) // chart name -> file path
	fromDir := make(map[string]bool)
	var files []string

	add := func(path string) error {
		name := chartfile.TableName(path)
		if existing, ok := chartNames[name]; ok {
			return fmt.Errorf("%w: chart '%s' from files '%s' and '%s'",
				ErrDuplicateChartName, name, existing, path)
		}
		chartNames[name] = path
		files = append(files, path)
		return nil
	}

	for _, path := range paths {
		if err := ValidatePath(path); err != nil {
			return nil, nil, fmt.Errorf("%w: %s", err, path)
		}
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("path does not exist: %s", path)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to stat path: %w", err)
		}

		if !info.IsDir() {
			if !chartfile.IsSupportedFile(info.Name()) {
				return nil, nil, fmt.Errorf("%w: %s", chartfile.ErrUnsupportedFile, path)
			}
			if err := ValidateFileSize(info.Size()); err != nil {
				return nil, nil, fmt.Errorf("%w: %s", err, path)
			}
			if err := add(path); err != nil {
				return nil, nil, err
			}
			continue
		}

		dirFiles, err := chartfile.Discover(path)
		if err != nil {
			return nil, nil, err
		}
		if err := ValidateFileCount(len(dirFiles)); err != nil {
			return nil, nil, fmt.Errorf("%w: %s", err, path)
		}
		for _, f := range dirFiles {
			if err := add(f); err != nil {
				return nil, nil, err
			}
			fromDir[f] = true
		}
	}

	return files, fromDir, nil
}

// loadFile decodes one chart and inserts its records.
func (c *Connector) loadFile(ctx context.Context, conn driver.Conn, path string) error {
	chart, err := chartfile.ReadFile(ctx, path, c.opts)
	if err != nil {
		return err
	}

	name := chartfile.TableName(path)
	for _, schema := range model.Schemas() {
		records := chart.Records(schema.Kind())
		if len(records) == 0 {
			continue
		}
		if err := insertRecords(ctx, conn, schema, name, records); err != nil {
			return fmt.Errorf("failed to insert %s records: %w", schema.Kind().Name(), err)
		}
	}

	slog.Debug("loaded chart", "chart", name, "records", chart.Len())
	return nil
}

// TableName returns the SQL table name of a record kind.
func TableName(kind model.RecordType) string {
	return kind.Name()
}

// buildCreateTableQuery constructs a CREATE TABLE query for a record layout
func buildCreateTableQuery(schema model.Schema) string {
	fields := schema.Fields()
	columns := make([]string, 0, len(fields)+1)
	columns = append(columns, fmt.Sprintf(`[%s] TEXT NOT NULL`, ChartColumn))
	for _, f := range fields {
		columns = append(columns, fmt.Sprintf(`[%s] %s`, f.Name, f.Type))
	}

	return fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS [%s] (%s)`,
		TableName(schema.Kind()),
		strings.Join(columns, ", "),
	)
}

// buildInsertQuery constructs an INSERT query for a record layout
func buildInsertQuery(schema model.Schema) string {
	return fmt.Sprintf(
		`INSERT INTO [%s] VALUES (%s)`,
		TableName(schema.Kind()),
		buildPlaceholders(schema.Len()+1),
	)
}

// buildPlaceholders creates placeholder string for prepared statements
func buildPlaceholders(count int) string {
	if count == 0 {
		return ""
	}
	return "?" + strings.Repeat(", ?", count-1)
}

// insertRecords inserts records of one kind inside a single transaction.
func insertRecords(ctx context.Context, conn driver.Conn, schema model.Schema, chartName string, records []model.Record) error {
	beginner, ok := conn.(driver.ConnBeginTx)
	if !ok {
		return ErrBeginTxNotSupported
	}
	tx, err := beginner.BeginTx(ctx, driver.TxOptions{})
	if err != nil {
		return err
	}

	stmt, err := prepareContext(ctx, conn, buildInsertQuery(schema))
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	execer, ok := stmt.(driver.StmtExecContext)
	if !ok {
		_ = tx.Rollback()
		return ErrStmtExecContextNotSupported
	}

	for _, rec := range records {
		if _, err := execer.ExecContext(ctx, toNamedValues(chartName, rec.Values())); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// toNamedValues converts decoded values to statement arguments.
// NaN reals become NULL.
func toNamedValues(chartName string, values []any) []driver.NamedValue {
	args := make([]driver.NamedValue, 0, len(values)+1)
	args = append(args, driver.NamedValue{Ordinal: 1, Value: chartName})
	for i, v := range values {
		args = append(args, driver.NamedValue{Ordinal: i + 2, Value: toDriverValue(v)})
	}
	return args
}

func toDriverValue(v any) driver.Value {
	switch val := v.(type) {
	case int:
		return int64(val)
	case float64:
		if math.IsNaN(val) {
			return nil
		}
		return val
	default:
		return val
	}
}

func prepareContext(ctx context.Context, conn driver.Conn, query string) (driver.Stmt, error) {
	if preparer, ok := conn.(driver.ConnPrepareContext); ok {
		return preparer.PrepareContext(ctx, query)
	}
	return conn.Prepare(query)
}

// execContext executes a statement that returns no rows
func execContext(ctx context.Context, conn driver.Conn, query string, args []driver.NamedValue) error {
	stmt, err := prepareContext(ctx, conn, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	execer, ok := stmt.(driver.StmtExecContext)
	if !ok {
		return ErrStmtExecContextNotSupported
	}
	_, err = execer.ExecContext(ctx, args)
	return err
}

// Close implements driver.Conn interface
func (conn *Connection) Close() error {
	if conn.conn != nil {
		return conn.conn.Close()
	}
	return nil
}

// Begin implements driver.Conn interface (deprecated, use BeginTx instead)
func (conn *Connection) Begin() (driver.Tx, error) {
	return conn.BeginTx(context.Background(), driver.TxOptions{})
}

// BeginTx implements driver.ConnBeginTx interface
func (conn *Connection) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	if connBeginTx, ok := conn.conn.(driver.ConnBeginTx); ok {
		tx, err := connBeginTx.BeginTx(ctx, opts)
		if err != nil {
			return nil, err
		}
		return &Transaction{tx: tx}, nil
	}
	return nil, ErrBeginTxNotSupported
}

// Commit implements driver.Tx interface
func (t *Transaction) Commit() error {
	return t.tx.Commit()
}

// Rollback implements driver.Tx interface
func (t *Transaction) Rollback() error {
	return t.tx.Rollback()
}

// Prepare implements driver.Conn interface (deprecated, use PrepareContext instead)
func (conn *Connection) Prepare(query string) (driver.Stmt, error) {
	return conn.PrepareContext(context.Background(), query)
}

// PrepareContext implements driver.ConnPrepareContext interface
func (conn *Connection) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	if connPrepareCtx, ok := conn.conn.(driver.ConnPrepareContext); ok {
		return connPrepareCtx.PrepareContext(ctx, query)
	}
	return nil, ErrPrepareContextNotSupported
}
