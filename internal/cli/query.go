package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/racechart/textchart"
)

var (
	querySQL  string
	queryDump string
)

var queryCmd = &cobra.Command{
	Use:   "query FILE...",
	Short: "Run a SQL statement against chart files",
	Long: `Loads chart files and directories into an in-memory SQLite database with
one table per record kind (header, race, starter, exotic_wager, attendance,
comment, footnote) and runs the statement given with --sql. Result rows are
printed tab separated. With --dump the tables are written to DIR afterwards,
including changes made by the statement.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&querySQL, "sql", "", "SQL statement to run")
	queryCmd.Flags().StringVar(&queryDump, "dump", "", "directory to dump all tables to after the statement ran")
	_ = queryCmd.MarkFlagRequired("sql")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) (err error) {
	ctx := cmd.Context()

	readOpts, err := cfg.Read.Options()
	if err != nil {
		return err
	}

	builder, err := textchart.NewBuilder().AddPaths(args...).WithReadOptions(readOpts).Build(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cleanupErr := builder.Cleanup(); cleanupErr != nil {
			err = errors.Join(err, cleanupErr)
		}
	}()

	db, err := builder.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	rows, err := db.QueryContext(ctx, querySQL)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	n, err := printRows(cmd.OutOrStdout(), rows)
	if err != nil {
		return err
	}
	slog.Debug("query finished", "rows", n)

	if queryDump == "" {
		return nil
	}
	exportOpts, err := cfg.Export.Options()
	if err != nil {
		return err
	}
	if err := textchart.DumpDatabase(ctx, db, queryDump, exportOpts); err != nil {
		return err
	}
	slog.Info("database dumped", "dir", queryDump, "format", exportOpts.Format.String())
	return nil
}

// printRows writes a header line and one tab separated line per row.
func printRows(w io.Writer, rows *sql.Rows) (int, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return 0, fmt.Errorf("failed to read columns: %w", err)
	}
	if _, err := fmt.Fprintln(w, strings.Join(columns, "\t")); err != nil {
		return 0, err
	}

	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	cells := make([]string, len(columns))

	n := 0
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return n, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range values {
			cells[i] = formatCell(v)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return n, err
		}
		n++
	}
	return n, rows.Err()
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
