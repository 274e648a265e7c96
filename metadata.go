package cookbook

import (
	"regexp"
	"strings"
)

// Metadata holds recipe metadata extracted from converter comment lines.
// Keys are the canonical snake_case names (description, tags, servings,
// prep_time, cook_time, author, source).
type Metadata map[string]string

// metadataPatterns maps metadata keys to the comment patterns the
// converter emits. The slice order fixes the emission order of the
// metadata trace block in the assembled document.
var metadataPatterns = []struct {
	key     string
	pattern *regexp.Regexp
}{
	{"description", regexp.MustCompile(`% DESCRIPTION: (.+)`)},
	{"tags", regexp.MustCompile(`% TAGS: (.+)`)},
	{"servings", regexp.MustCompile(`% SERVINGS: (.+)`)},
	{"prep_time", regexp.MustCompile(`% PREP_TIME: (.+)`)},
	{"cook_time", regexp.MustCompile(`% COOK_TIME: (.+)`)},
	{"author", regexp.MustCompile(`% AUTHOR: (.+)`)},
	{"source", regexp.MustCompile(`% SOURCE: (.+)`)},
}

// ExtractMetadata collects metadata from the comment lines of converter
// output. For each key the first occurrence wins; absent keys are
// omitted. Output without metadata comments yields an empty map, which
// is a valid result, not an error.
func ExtractMetadata(latexContent string) Metadata {
	metadata := make(Metadata)
	for _, p := range metadataPatterns {
		if m := p.pattern.FindStringSubmatch(latexContent); m != nil {
			metadata[p.key] = m[1]
		}
	}
	return metadata
}

// Keys returns the keys present in m in canonical order.
func (m Metadata) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, p := range metadataPatterns {
		if _, ok := m[p.key]; ok {
			keys = append(keys, p.key)
		}
	}
	return keys
}

// Tags splits the tags value on the comma-space separator the converter
// writes. Returns nil when no tags are present.
func (m Metadata) Tags() []string {
	tags, ok := m["tags"]
	if !ok {
		return nil
	}
	return strings.Split(tags, ", ")
}
