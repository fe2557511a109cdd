package model

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Row is one physical chart record split into its textual fields.
type Row []string

// Tag returns the raw record-type field, or "" for an empty row.
func (r Row) Tag() string {
	return strings.TrimSpace(ExtractText(r, 0))
}

// Offset is any named column index type.
type Offset interface {
	~int
}

// field returns the raw column and whether it exists.
func field[I Offset](row Row, offset I) (string, bool) {
	i := int(offset)
	if i < 0 || i >= len(row) {
		return "", false
	}
	return row[i], true
}

// ExtractText returns the column with trailing whitespace removed.
// Leading whitespace is kept. A missing column yields "".
func ExtractText[I Offset](row Row, offset I) string {
	s, ok := field(row, offset)
	if !ok {
		return ""
	}
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// ExtractInt parses the column as a base-10 integer.
// Missing, blank, malformed and overflowing values yield 0.
func ExtractInt[I Offset](row Row, offset I) int {
	s, ok := field(row, offset)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ExtractReal parses the column as a decimal float64.
// Missing, blank and malformed values yield NaN. Values beyond the float64
// range yield ±Inf. Hexadecimal floats are malformed.
func ExtractReal[I Offset](row Row, offset I) float64 {
	s, ok := field(row, offset)
	if !ok {
		return math.NaN()
	}
	s = strings.TrimSpace(s)
	if isHexFloat(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
