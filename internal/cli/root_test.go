package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/racechart/textchart/domain/model"
	"github.com/racechart/textchart/internal/config"
)

const (
	aquChart   = "../../testdata/charts/aqu20240105.txt"
	belChart   = "../../testdata/charts/bel20240106.txt.gz"
	unknownTag = "../../testdata/unknown_tag.txt"
)

// execute runs the root command with args and returns what it wrote to
// stdout and stderr. Flag values are reset first since cobra keeps them
// between executions.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)
	cfg = config.Default()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "textchart.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "textchart", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	tests := []struct {
		name     string
		defValue string
	}{
		{name: "config", defValue: ""},
		{name: "log-level", defValue: "info"},
		{name: "log-format", defValue: "text"},
		{name: "delimiter", defValue: ","},
		{name: "strict", defValue: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := rootCmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"decode", "query", "export", "schema", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "trace", "version")

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRootCmd_InvalidConfigFile(t *testing.T) {
	path := writeConfig(t, "[log]\nformat = \"xml\"\n")

	_, _, err := execute(t, "--config", path, "version")

	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRootCmd_StrictFromConfig(t *testing.T) {
	path := writeConfig(t, "[read]\nstrict = true\n")

	_, _, err := execute(t, "--config", path, "decode", unknownTag)

	assert.ErrorIs(t, err, model.ErrUnknownRecordType)
}

func TestRootCmd_FlagOverridesConfig(t *testing.T) {
	path := writeConfig(t, "[read]\nstrict = true\n")

	stdout, _, err := execute(t, "--config", path, "--strict=false", "decode", unknownTag)

	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count([]byte(stdout), []byte("\n")))
}

func TestRootCmd_DebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "--log-format", "json", "version")

	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"configuration loaded"`)
}
