package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	stdout, _, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, stdout, "textchart version test-version-1.0.0")
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	stdout, _, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, stdout, "textchart version dev")
}
