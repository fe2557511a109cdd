// Package config loads the textchart command configuration.
//
// Settings come from an optional TOML file; command-line flags override
// individual values afterwards. The result is validated before use so that
// a misconfiguration fails before any chart is read.
//
// Example file:
//
//	[log]
//	level = "debug"
//	format = "json"
//
//	[read]
//	delimiter = "|"
//	strict = true
//
//	[export]
//	format = "parquet"
//	compression = "zstd"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"github.com/racechart/textchart"
	"github.com/racechart/textchart/chartfile"
	"github.com/racechart/textchart/internal/logging"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all command configuration.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Read   ReadConfig   `toml:"read"`
	Export ExportConfig `toml:"export"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `toml:"level"`
	// Format is the log format: text or json (default: text)
	Format string `toml:"format"`
}

// ReadConfig holds chart reading settings.
type ReadConfig struct {
	// Delimiter is the single-character field separator (default: ",")
	Delimiter string `toml:"delimiter"`
	// Strict rejects lines with unknown record tags (default: false)
	Strict bool `toml:"strict"`
}

// ExportConfig holds export settings.
type ExportConfig struct {
	// Format is csv, tsv, parquet or xlsx (default: csv)
	Format string `toml:"format"`
	// Compression is none, gz, xz or zstd (default: none)
	Compression string `toml:"compression"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Read:   ReadConfig{Delimiter: string(chartfile.DefaultDelimiter)},
		Export: ExportConfig{Format: "csv", Compression: "none"},
	}
}

// Load reads the TOML file at path on top of the defaults.
// An empty path yields the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // config path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config load %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Sprintf("log.level %q must be debug, info, warn or error", c.Log.Level))
	}
	if !logging.ValidFormat(c.Log.Format) {
		errs = append(errs, fmt.Sprintf("log.format %q must be text or json", c.Log.Format))
	}

	if _, err := c.Read.Options(); err != nil {
		errs = append(errs, "read.delimiter: "+err.Error())
	}
	if _, err := c.Export.Options(); err != nil {
		errs = append(errs, "export: "+err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

// Options converts the read settings into chart reading options.
func (r ReadConfig) Options() (chartfile.Options, error) {
	delimiter, err := parseDelimiter(r.Delimiter)
	if err != nil {
		return chartfile.Options{}, err
	}

	opts := chartfile.NewOptions().WithDelimiter(delimiter).WithStrict(r.Strict)
	if err := opts.Validate(); err != nil {
		return chartfile.Options{}, err
	}
	return opts, nil
}

// parseDelimiter accepts a single character or the escape `\t`.
func parseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q must be a single character", chartfile.ErrInvalidDelimiter, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Options converts the export settings into export options.
func (e ExportConfig) Options() (textchart.ExportOptions, error) {
	format, err := textchart.ParseOutputFormat(e.Format)
	if err != nil {
		return textchart.ExportOptions{}, err
	}
	compression, err := chartfile.ParseCompressionType(e.Compression)
	if err != nil {
		return textchart.ExportOptions{}, err
	}

	opts := textchart.NewExportOptions().WithFormat(format).WithCompression(compression)
	if err := opts.Validate(); err != nil {
		return textchart.ExportOptions{}, err
	}
	return opts, nil
}
