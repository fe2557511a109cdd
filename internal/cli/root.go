// Package cli implements the textchart command line.
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/racechart/textchart/internal/config"
	"github.com/racechart/textchart/internal/logging"
)

var (
	configPath string
	logLevel   string
	logFormat  string
	delimiter  string
	strict     bool

	// cfg is the configuration resolved before every command runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "textchart",
	Short: "Decode, query and export horse-race text charts",
	Long: `textchart reads text chart files (tagged H, R, S, E, A, C and F lines),
decodes every record with fail-soft coercion and lets you print them as JSON,
query them with SQL or export them as CSV, TSV, Parquet or Excel files.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a TOML configuration file")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", "text", "log format: text or json")
	flags.StringVar(&delimiter, "delimiter", ",", `field delimiter of chart lines (use \t for tab)`)
	flags.BoolVar(&strict, "strict", false, "fail on lines with an unknown record tag")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig reads the configuration file, applies explicitly set flags on
// top of it and installs the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		loaded.Log.Format = logFormat
	}
	if flags.Changed("delimiter") {
		loaded.Read.Delimiter = delimiter
	}
	if flags.Changed("strict") {
		loaded.Read.Strict = strict
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	logging.SetupWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	slog.Debug("configuration loaded", "config", configPath, "delimiter", cfg.Read.Delimiter, "strict", cfg.Read.Strict)
	return nil
}
