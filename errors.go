package textchart

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoInput indicates that neither a path nor a filesystem was configured
	ErrNoInput = errors.New("textchart: at least one path or filesystem must be provided")

	// ErrNilFS indicates that a nil fs.FS was passed to the builder
	ErrNilFS = errors.New("textchart: filesystem cannot be nil")

	// ErrNoChartFiles indicates that no supported chart file was found
	ErrNoChartFiles = errors.New("textchart: no chart files found")

	// ErrNotBuilt indicates that Open was called before a successful Build
	ErrNotBuilt = errors.New("textchart: no inputs collected, did you call Build()?")

	// ErrUnsupportedFormat indicates an unsupported input or output format
	ErrUnsupportedFormat = errors.New("textchart: unsupported format")

	// ErrEmptyData indicates that there is nothing to export
	ErrEmptyData = errors.New("textchart: no records to export")

	// ErrNoTables indicates that the database holds no chart tables
	ErrNoTables = errors.New("textchart: no chart tables found in database")
)

// ErrorContext provides context for where an error occurred
type ErrorContext struct {
	Operation string
	FilePath  string
	TableName string
	Details   string
}

// NewErrorContext creates a new error context
func NewErrorContext(operation, filePath string) *ErrorContext {
	return &ErrorContext{
		Operation: operation,
		FilePath:  filePath,
	}
}

// WithTable adds table context to the error
func (ec *ErrorContext) WithTable(tableName string) *ErrorContext {
	ec.TableName = tableName
	return ec
}

// WithDetails adds details to the error context
func (ec *ErrorContext) WithDetails(details string) *ErrorContext {
	ec.Details = details
	return ec
}

// Error creates a formatted error with context
func (ec *ErrorContext) Error(baseErr error) error {
	var parts []string
	parts = append(parts, fmt.Sprintf("textchart: %s failed", ec.Operation))

	if ec.FilePath != "" {
		parts = append(parts, "file: "+ec.FilePath)
	}
	if ec.TableName != "" {
		parts = append(parts, "table: "+ec.TableName)
	}
	if ec.Details != "" {
		parts = append(parts, "details: "+ec.Details)
	}

	context := strings.Join(parts, ", ")
	if baseErr != nil {
		return fmt.Errorf("%s: %w", context, baseErr)
	}
	return errors.New(context)
}
