package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/racechart/textchart"
	"github.com/racechart/textchart/chartfile"
)

var (
	exportOut         string
	exportFormat      string
	exportCompression string
)

var exportCmd = &cobra.Command{
	Use:   "export FILE...",
	Short: "Convert chart files to CSV, TSV, Parquet or Excel",
	Long: `Decodes each chart file and writes one file per record kind to the output
directory, named <chart>_<kind><ext>. Record kinds that do not occur in a chart
are not written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	flags := exportCmd.Flags()
	flags.StringVarP(&exportOut, "out", "o", ".", "output directory")
	flags.StringVar(&exportFormat, "format", "csv", "output format: csv, tsv, parquet or xlsx")
	flags.StringVar(&exportCompression, "compression", "none", "output compression: none, gz, xz or zstd")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	exportCfg := cfg.Export
	if cmd.Flags().Changed("format") {
		exportCfg.Format = exportFormat
	}
	if cmd.Flags().Changed("compression") {
		exportCfg.Compression = exportCompression
	}
	exportOpts, err := exportCfg.Options()
	if err != nil {
		return err
	}
	readOpts, err := cfg.Read.Options()
	if err != nil {
		return err
	}

	for _, path := range args {
		chart, err := chartfile.ReadFile(ctx, path, readOpts)
		if err != nil {
			return err
		}
		name := chartfile.TableName(path)
		if err := textchart.Export(ctx, chart, exportOut, name, exportOpts); err != nil {
			return err
		}
		slog.Info("chart exported", "path", path, "records", chart.Len(), "dir", exportOut)
	}
	return nil
}
