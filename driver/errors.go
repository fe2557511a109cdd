package driver

import "errors"

// Predefined errors
var (
	// ErrNoPathsProvided is returned when the DSN names no paths
	ErrNoPathsProvided = errors.New("textchart driver: no paths provided")

	// ErrNoFilesLoaded is returned when no chart file was loaded
	ErrNoFilesLoaded = errors.New("textchart driver: no files were loaded")

	// ErrStmtExecContextNotSupported is returned when statement does not support ExecContext
	ErrStmtExecContextNotSupported = errors.New("textchart driver: statement does not support ExecContext")

	// ErrBeginTxNotSupported is returned when underlying connection does not support BeginTx
	ErrBeginTxNotSupported = errors.New("textchart driver: underlying connection does not support BeginTx")

	// ErrPrepareContextNotSupported is returned when underlying connection does not support PrepareContext
	ErrPrepareContextNotSupported = errors.New("textchart driver: underlying connection does not support PrepareContext")

	// ErrDuplicateChartName is returned when two files would load under the same chart name
	ErrDuplicateChartName = errors.New("textchart driver: duplicate chart name")
)
