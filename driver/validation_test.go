package driver

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected error
	}{
		{name: "Valid relative path", path: "testdata/aqu20240105.txt"},
		{name: "Valid parent path", path: "../testdata/charts"},
		{name: "Empty path", path: "", expected: ErrInvalidPath},
		{name: "Whitespace only path", path: "   ", expected: ErrInvalidPath},
		{name: "Path with null byte", path: "test\x00.txt", expected: ErrInvalidPath},
		{name: "Deep traversal", path: "../../../../etc/passwd.txt", expected: ErrInvalidPath},
		{name: "Windows reserved name", path: "CON.txt", expected: ErrInvalidPath},
		{name: "Compressed reserved name", path: "nul.txt.gz", expected: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidatePath(tt.path)
			if tt.expected == nil {
				if err != nil {
					t.Errorf("ValidatePath(%q) unexpected error = %v", tt.path, err)
				}
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("ValidatePath(%q) error = %v, want %v", tt.path, err, tt.expected)
			}
		})
	}
}

func TestValidateLimits(t *testing.T) {
	t.Parallel()

	if err := ValidateFileSize(MaxFileSize); err != nil {
		t.Errorf("ValidateFileSize(max) error = %v", err)
	}
	if err := ValidateFileSize(MaxFileSize + 1); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("ValidateFileSize(max+1) error = %v, want %v", err, ErrFileTooLarge)
	}
	if err := ValidateFileCount(MaxFilesPerDirectory); err != nil {
		t.Errorf("ValidateFileCount(max) error = %v", err)
	}
	if err := ValidateFileCount(MaxFilesPerDirectory + 1); !errors.Is(err, ErrTooManyFiles) {
		t.Errorf("ValidateFileCount(max+1) error = %v, want %v", err, ErrTooManyFiles)
	}
}

func TestSanitizeForLog(t *testing.T) {
	t.Parallel()

	if got := SanitizeForLog("charts/secret/aqu.txt"); got != "[REDACTED]" {
		t.Errorf("SanitizeForLog() = %q, want redacted", got)
	}
	if got := SanitizeForLog("charts/aqu.txt"); got != "charts/aqu.txt" {
		t.Errorf("SanitizeForLog() = %q", got)
	}
	long := strings.Repeat("a", 300)
	if got := SanitizeForLog(long); len(got) != 203 {
		t.Errorf("SanitizeForLog() length = %d, want 203", len(got))
	}
}
