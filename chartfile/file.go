package chartfile

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// File extensions
const (
	// ExtTXT is the plain text chart extension
	ExtTXT = ".txt"
	// ExtChart is the chart extension
	ExtChart = ".chart"
	// ExtCSV is the comma separated chart extension
	ExtCSV = ".csv"

	extGZ   = ".gz"
	extBZ2  = ".bz2"
	extXZ   = ".xz"
	extZSTD = ".zst"
)

// SupportedExtensions returns every base chart extension.
func SupportedExtensions() []string {
	return []string{ExtTXT, ExtChart, ExtCSV}
}

// supportedFileExtPatterns returns all supported file patterns for glob matching
func supportedFileExtPatterns() []string {
	compressionExts := []string{"", extGZ, extBZ2, extXZ, extZSTD}

	var patterns []string
	for _, baseExt := range SupportedExtensions() {
		for _, compressionExt := range compressionExts {
			patterns = append(patterns, "*"+baseExt+compressionExt)
		}
	}
	return patterns
}

// Discover returns the chart files directly inside dir, sorted by path.
// Subdirectories and hidden files are not returned.
func Discover(dir string) ([]string, error) {
	var files []string
	for _, pattern := range supportedFileExtPatterns() {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", dir, err)
		}
		for _, match := range matches {
			if strings.HasPrefix(filepath.Base(match), ".") {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			files = append(files, match)
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// IsSupportedFile checks if the file has a supported extension,
// optionally followed by a compression extension.
func IsSupportedFile(fileName string) bool {
	base := strings.ToLower(RemoveCompressionExtension(fileName))
	for _, ext := range SupportedExtensions() {
		if strings.HasSuffix(base, ext) && len(base) > len(ext) {
			return true
		}
	}
	return false
}

// TableName returns the chart name of a file: its base name without the
// compression and chart extensions.
func TableName(path string) string {
	name := RemoveCompressionExtension(filepath.Base(path))
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// File is a chart file on disk.
type File struct {
	path        string
	compression CompressionType
}

// NewFile creates a new File. Compression is detected from the extension.
func NewFile(path string) *File {
	return &File{
		path:        path,
		compression: DetectCompressionType(path),
	}
}

// Path returns file path
func (f *File) Path() string {
	return f.path
}

// Name returns the chart name derived from the path.
func (f *File) Name() string {
	return TableName(f.path)
}

// Compression returns the detected compression type.
func (f *File) Compression() CompressionType {
	return f.compression
}

// IsCompressed returns true if file is compressed
func (f *File) IsCompressed() bool {
	return f.compression != CompressionNone
}

// IsSupported reports whether the file carries a chart extension.
func (f *File) IsSupported() bool {
	return IsSupportedFile(filepath.Base(f.path))
}
