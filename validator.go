package textchart

import (
	"fmt"
	"os"
	"strings"

	"github.com/racechart/textchart/chartfile"
	chartdriver "github.com/racechart/textchart/driver"
)

// validator handles validation logic for DBBuilder and exports
type validator struct{}

// newValidator creates a new validator instance
func newValidator() *validator {
	return &validator{}
}

// validatePath validates a single chart file or directory path
func (v *validator) validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: path cannot be empty", chartdriver.ErrInvalidPath)
	}
	if err := chartdriver.ValidatePath(path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("failed to load chart: path does not exist: %s: %w", path, err)
		}
		return fmt.Errorf("failed to stat path %s: %w", path, err)
	}

	if !info.IsDir() && !chartfile.IsSupportedFile(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return nil
}

// validateOutputDirectory validates that the output directory can be created/accessed
func (v *validator) validateOutputDirectory(outputDir string) error {
	if strings.TrimSpace(outputDir) == "" {
		return fmt.Errorf("%w: output directory cannot be empty", chartdriver.ErrInvalidPath)
	}

	if info, err := os.Stat(outputDir); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("output path exists but is not a directory: %s", outputDir)
		}
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check output directory: %w", err)
	}

	// Missing directories are created by the export.
	return nil
}

// validateFinalState ensures Build collected at least one chart
func (v *validator) validateFinalState(collectedPaths []string) error {
	if len(collectedPaths) == 0 {
		return ErrNoChartFiles
	}
	return nil
}

// validateInputsAvailable checks if any valid inputs are available for database creation
func (v *validator) validateInputsAvailable(collectedPaths []string) error {
	if len(collectedPaths) == 0 {
		return ErrNotBuilt
	}
	return nil
}
