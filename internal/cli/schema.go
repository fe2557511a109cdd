package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/racechart/textchart/domain/model"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [KIND]",
	Short: "Print record layouts",
	Long: `Prints the column offset, field name and SQL type of every field of a
record kind. KIND is a tag (H, R, S, E, A, C, F) or a table name such as
"race" or "exotic_wager". Without KIND all layouts are printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	schemas := model.Schemas()
	if len(args) == 1 {
		kind, ok := lookupKind(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", model.ErrUnknownRecordType, args[0])
		}
		schema, _ := model.SchemaFor(kind)
		schemas = []model.Schema{schema}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for i, schema := range schemas {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\twidth %d\treserved %s\n",
			schema.Kind().Name(), schema.Kind(), schema.Width(), formatOffsets(schema.Reserved()))
		fmt.Fprintln(w, "OFFSET\tNAME\tTYPE")
		for _, f := range schema.Fields() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", f.Offset, f.Name, f.Type)
		}
	}
	return w.Flush()
}

func formatOffsets(offsets []int) string {
	if len(offsets) == 0 {
		return "-"
	}
	parts := make([]string, len(offsets))
	for i, o := range offsets {
		parts[i] = strconv.Itoa(o)
	}
	return strings.Join(parts, ",")
}

// lookupKind accepts a record tag or a record kind name.
func lookupKind(s string) (model.RecordType, bool) {
	s = strings.TrimSpace(s)
	if kind, ok := model.ParseRecordType(strings.ToUpper(s)); ok {
		return kind, true
	}
	for _, kind := range model.RecordTypes() {
		if strings.EqualFold(kind.Name(), s) {
			return kind, true
		}
	}
	return "", false
}

// parseKinds parses a comma separated list of kinds. An empty list selects all.
func parseKinds(s string) (map[model.RecordType]bool, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	kinds := make(map[model.RecordType]bool)
	for _, part := range strings.Split(s, ",") {
		kind, ok := lookupKind(part)
		if !ok {
			return nil, fmt.Errorf("%w: %q", model.ErrUnknownRecordType, part)
		}
		kinds[kind] = true
	}
	return kinds, nil
}
