// Package dateutil resolves "auto" date values into formatted dates.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates a date format that cannot be parsed.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat applies when a bare "auto" is given.
const DefaultDateFormat = "YYYY-MM-DD"

const autoPrefix = "auto:"

// tokens maps friendly date tokens to Go reference-time components.
// Longest tokens come first so MMMM wins over MM.
var tokens = [...]struct {
	text   string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets names common formats usable as "auto:PRESET".
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a friendly date format to a Go time layout.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D.
// Bracketed text passes through literally, so "[Updated] YYYY" keeps the
// word "Updated". Characters that match no token are kept as-is.
// Returns ErrInvalidDateFormat when the format is empty, too long, or has
// an unclosed bracket.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var layout strings.Builder
	layout.Grow(len(format))

	rest := format
	for len(rest) > 0 {
		if rest[0] == '[' {
			closing := strings.IndexByte(rest, ']')
			if closing < 0 {
				return "", fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidDateFormat, format)
			}
			layout.WriteString(rest[1:closing])
			rest = rest[closing+1:]
			continue
		}
		if goFmt, n := matchToken(rest); n > 0 {
			layout.WriteString(goFmt)
			rest = rest[n:]
			continue
		}
		layout.WriteByte(rest[0])
		rest = rest[1:]
	}

	return layout.String(), nil
}

// matchToken reports the Go layout for the token at the start of s and how
// many bytes it spans, or ("", 0) when s starts with a literal character.
func matchToken(s string) (string, int) {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.text) {
			return t.layout, len(t.text)
		}
	}
	return "", 0
}

// ResolveDate expands "auto" date values using the given time:
//
//	"auto"          date in the default YYYY-MM-DD format
//	"auto:FORMAT"   date in a custom format, e.g. "auto:DD/MM/YYYY"
//	"auto:PRESET"   date using a named preset (iso, european, us, long)
//
// Any other value passes through unchanged, so fixed dates like
// "Winter 2024" stay as written.
func ResolveDate(value string, now time.Time) (string, error) {
	lower := strings.ToLower(value)
	switch {
	case lower == "auto":
		return formatTime(now, DefaultDateFormat)
	case strings.HasPrefix(lower, autoPrefix):
		// Keep the original case: tokens are case-sensitive.
		spec := value[len(autoPrefix):]
		if spec == "" {
			return "", fmt.Errorf("%w: format cannot be empty after %q", ErrInvalidDateFormat, autoPrefix)
		}
		if preset, ok := DatePresets[strings.ToLower(spec)]; ok {
			spec = preset
		}
		return formatTime(now, spec)
	case strings.HasPrefix(lower, "auto"):
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	default:
		return value, nil
	}
}

func formatTime(now time.Time, format string) (string, error) {
	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
