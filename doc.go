// Package textchart decodes horse-race text charts and exposes them through
// SQL and file exports.
//
// A text chart is a delimited file where the first column of every line is a
// record tag: H (chart header), R (race), S (starter), E (exotic wager),
// A (attendance and handle), C (comment) and F (footnote). Each tag has a
// fixed column layout. Decoding is fail-soft: a missing or malformed column
// yields an empty string, zero or NaN instead of an error, so one bad cell
// never discards a chart.
//
// # Packages
//
//   - domain/model: record layouts, scalar extractors, time transforms and
//     the per-kind decoders. No I/O.
//   - chartfile: reading chart files, including compressed ones
//     (gzip, bzip2, xz, zstandard).
//   - driver: a database/sql driver that loads charts into in-memory SQLite.
//
// # Basic Usage
//
//	db, err := textchart.Open("charts/aqu20240105.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	rows, err := db.Query("SELECT race_number, final_time FROM race")
//
// # Tables
//
// Every record kind becomes one table: header, race, starter, exotic_wager,
// attendance, comment and footnote. Each table starts with a chart column
// holding the chart name derived from the file name:
//   - "aqu20240105.txt" becomes chart "aqu20240105"
//   - "bel20240106.txt.gz" becomes chart "bel20240106"
//
// Columns follow the record's field names and are typed TEXT, INTEGER or REAL.
// Values that could not be decoded as REAL are stored as NULL.
//
// # Exports
//
// Decoded charts can be written as CSV, TSV, Parquet or Excel files with
// Export, and database contents (including SQL modifications) with
// DumpDatabase. Output may be compressed with gzip, xz or zstandard.
//
// # SQL Syntax
//
// Since textchart uses SQLite3 as its underlying engine, all SQL syntax follows
// SQLite3's SQL dialect, including CTEs, window functions and JSON functions.
package textchart
