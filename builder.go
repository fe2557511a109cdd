package textchart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/racechart/textchart/chartfile"
	chartdriver "github.com/racechart/textchart/driver"
)

// DBBuilder is a builder for creating database connections from chart files
// and embedded filesystems. Use NewBuilder to create a new instance, then
// chain method calls to configure it.
//
// The typical usage pattern is:
//
//	builder := textchart.NewBuilder().
//		AddPath("charts/aqu20240105.txt").
//		AddFS(embeddedCharts).
//		WithReadOptions(textchart.NewReadOptions().WithStrict(true))
//	validatedBuilder, err := builder.Build(ctx)
//	if err != nil {
//		return err
//	}
//	defer validatedBuilder.Cleanup()
//
//	db, err := validatedBuilder.Open(ctx)
//	if err != nil {
//		return err
//	}
//	defer db.Close()
type DBBuilder struct {
	// paths contains regular file and directory paths
	paths []string
	// filesystems contains fs.FS instances
	filesystems []fs.FS
	// options control how chart lines are read
	options chartfile.Options
	// collectedPaths contains all paths after Build validation
	collectedPaths []string
	// tempDirs tracks temporary directories created for cleanup
	tempDirs []string
}

// NewBuilder creates a new database builder with default read options.
func NewBuilder() *DBBuilder {
	return &DBBuilder{
		paths:          make([]string, 0),
		filesystems:    make([]fs.FS, 0),
		options:        chartfile.NewOptions(),
		collectedPaths: make([]string, 0),
		tempDirs:       make([]string, 0),
	}
}

// AddPath adds a chart file or a directory of chart files.
//
// Supported file extensions: .txt, .chart, .csv
// Supported compression: .gz, .bz2, .xz, .zst
//
// Returns the builder for method chaining.
func (b *DBBuilder) AddPath(path string) *DBBuilder {
	b.paths = append(b.paths, path)
	return b
}

// AddPaths adds multiple chart files or directories at once.
func (b *DBBuilder) AddPaths(paths ...string) *DBBuilder {
	b.paths = append(b.paths, paths...)
	return b
}

// AddFS adds every supported chart file found in filesystem, such as an embed.FS.
// Files are copied to temporary locations during Build; call Cleanup to remove them.
func (b *DBBuilder) AddFS(filesystem fs.FS) *DBBuilder {
	b.filesystems = append(b.filesystems, filesystem)
	return b
}

// WithReadOptions sets the delimiter, compression and strictness used to read charts.
func (b *DBBuilder) WithReadOptions(options chartfile.Options) *DBBuilder {
	b.options = options
	return b
}

// Build validates all configured inputs and prepares the builder for opening a database.
// It checks that every path exists and that every file has a supported extension,
// and copies chart files out of embedded filesystems.
//
// Returns the same builder instance for method chaining, or an error if validation fails.
func (b *DBBuilder) Build(ctx context.Context) (*DBBuilder, error) {
	if len(b.paths) == 0 && len(b.filesystems) == 0 {
		return nil, ErrNoInput
	}
	if err := b.options.Validate(); err != nil {
		return nil, err
	}

	b.collectedPaths = make([]string, 0)

	v := newValidator()
	for _, path := range b.paths {
		if err := v.validatePath(path); err != nil {
			return nil, err
		}
		b.collectedPaths = append(b.collectedPaths, path)
	}

	for _, filesystem := range b.filesystems {
		if filesystem == nil {
			return nil, ErrNilFS
		}

		paths, err := b.processFSInput(ctx, filesystem)
		if err != nil {
			return nil, fmt.Errorf("failed to process FS input: %w", err)
		}
		b.collectedPaths = append(b.collectedPaths, paths...)
	}

	if err := v.validateFinalState(b.collectedPaths); err != nil {
		return nil, err
	}
	return b, nil
}

// Open creates an in-memory SQLite database holding one table per record kind,
// filled from every collected chart. Build must have succeeded first.
//
// The caller is responsible for closing the database and calling Cleanup.
func (b *DBBuilder) Open(ctx context.Context) (*sql.DB, error) {
	if err := newValidator().validateInputsAvailable(b.collectedPaths); err != nil {
		return nil, err
	}

	dsn := strings.Join(b.collectedPaths, ";")
	db := sql.OpenDB(chartdriver.NewConnector(dsn, b.options))

	if err := db.PingContext(ctx); err != nil {
		allErrors := []error{err}
		if closeErr := db.Close(); closeErr != nil {
			allErrors = append(allErrors, fmt.Errorf("failed to close database: %w", closeErr))
		}
		if cleanupErr := b.cleanup(); cleanupErr != nil {
			allErrors = append(allErrors, fmt.Errorf("cleanup failed: %w", cleanupErr))
		}
		return nil, errors.Join(allErrors...)
	}
	return db, nil
}

// processFSInput copies every supported chart file of filesystem to a temporary location
func (b *DBBuilder) processFSInput(ctx context.Context, filesystem fs.FS) ([]string, error) {
	var matches []string
	err := fs.WalkDir(filesystem, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasPrefix(d.Name(), ".") && chartfile.IsSupportedFile(p) {
			matches = append(matches, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk filesystem: %w", err)
	}
	if len(matches) == 0 {
		return nil, ErrNoChartFiles
	}

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		tempPath, err := b.copyFSToTemp(filesystem, match)
		if err != nil {
			return nil, fmt.Errorf("failed to copy file %s: %w", match, err)
		}
		paths = append(paths, tempPath)
	}
	return paths, nil
}

// copyFSToTemp copies a file from fs.FS into its own temporary directory,
// keeping the base name so the chart name is preserved.
func (b *DBBuilder) copyFSToTemp(filesystem fs.FS, name string) (string, error) {
	src, err := filesystem.Open(name)
	if err != nil {
		return "", fmt.Errorf("failed to open FS file: %w", err)
	}
	defer src.Close()

	dir, err := os.MkdirTemp("", "textchart-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	b.tempDirs = append(b.tempDirs, dir)

	dstPath := filepath.Join(dir, path.Base(name))
	dst, err := os.Create(dstPath) //nolint:gosec // path is built from a fresh temp dir
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		return "", errors.Join(fmt.Errorf("failed to copy content: %w", err), dst.Close())
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	return dstPath, nil
}

// cleanup removes temporary directories and returns any errors
func (b *DBBuilder) cleanup() error {
	var errs []error
	for _, dir := range b.tempDirs {
		if err := os.RemoveAll(dir); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove temp dir %s: %w", dir, err))
		}
	}
	b.tempDirs = nil
	return errors.Join(errs...)
}

// Cleanup removes all temporary files created from embedded filesystems.
// It's safe to call this multiple times.
func (b *DBBuilder) Cleanup() error {
	return b.cleanup()
}
