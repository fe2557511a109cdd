package driver

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/racechart/textchart/chartfile"
)

// MaxFileSize defines the maximum chart file size allowed for loading (1GB)
const MaxFileSize = 1024 * 1024 * 1024

// MaxFilesPerDirectory defines the maximum number of chart files loaded from one directory
const MaxFilesPerDirectory = 1000

var (
	// ErrFileTooLarge is returned when a file exceeds the maximum size limit
	ErrFileTooLarge = errors.New("file too large")

	// ErrTooManyFiles is returned when a directory contains too many chart files
	ErrTooManyFiles = errors.New("too many files in directory")

	// ErrInvalidPath is returned when a path is invalid or potentially dangerous
	ErrInvalidPath = errors.New("invalid or dangerous path")
)

// ValidatePath rejects empty paths, null bytes, deep parent traversal and
// Windows reserved device names.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrInvalidPath
	}

	if strings.Contains(path, "\x00") {
		return ErrInvalidPath
	}

	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") && !isLegitimateRelativePath(path) {
		return ErrInvalidPath
	}

	reservedNames := []string{"con", "prn", "aux", "nul", "com1", "com2", "com3", "com4", "com5", "com6", "com7", "com8", "com9", "lpt1", "lpt2", "lpt3", "lpt4", "lpt5", "lpt6", "lpt7", "lpt8", "lpt9"}
	baseName := strings.ToLower(chartfile.TableName(path))
	for _, reserved := range reservedNames {
		if baseName == reserved {
			return ErrInvalidPath
		}
	}

	return nil
}

// ValidateFileSize checks if a file size is within acceptable limits
func ValidateFileSize(size int64) error {
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// ValidateFileCount checks if the number of files is within acceptable limits
func ValidateFileCount(fileCount int) error {
	if fileCount > MaxFilesPerDirectory {
		return ErrTooManyFiles
	}
	return nil
}

// SanitizeForLog removes sensitive information from strings before logging
func SanitizeForLog(input string) string {
	sensitive := []string{
		"password", "passwd", "secret", "token",
		"credential", "private", "ssh", "rsa",
	}

	result := input
	for _, pattern := range sensitive {
		if strings.Contains(strings.ToLower(result), pattern) {
			return "[REDACTED]"
		}
	}

	// Limit length to prevent log flooding
	const maxLogLength = 200
	if len(result) > maxLogLength {
		result = result[:maxLogLength] + "..."
	}

	return result
}

// isLegitimateRelativePath checks if a path containing ".." is a legitimate relative path
func isLegitimateRelativePath(path string) bool {
	cleanPath := filepath.Clean(path)

	if strings.HasPrefix(cleanPath, "../") || strings.HasPrefix(cleanPath, "..\\") {
		parts := strings.FieldsFunc(cleanPath, func(c rune) bool {
			return c == '/' || c == '\\'
		})
		upLevels := 0
		for _, part := range parts {
			if part == ".." {
				upLevels++
			} else if part != "." && part != "" {
				break
			}
		}
		// Allow only a reasonable number of parent directory references
		return upLevels <= 3
	}

	return true
}
