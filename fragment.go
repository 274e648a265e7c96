package cookbook

import (
	"strings"
	"unicode"
)

// Marker comments delimiting the reusable recipe body in converter output.
const (
	beginContentMarker = "% BEGIN_RECIPE_CONTENT"
	endContentMarker   = "% END_RECIPE_CONTENT"
	beginTitleMarker   = "% BEGIN_TITLE"
	endTitleMarker     = "% END_TITLE"
)

// ExtractFragment returns the recipe body between the content markers,
// with the converter's own title block removed. The end marker is only
// recognized after the begin marker, so output with missing or
// out-of-order markers yields ok == false. A false result is a
// per-recipe condition, not an error: the caller substitutes a
// placeholder and keeps whatever metadata was extracted.
func ExtractFragment(latexContent string) (fragment string, ok bool) {
	content, ok := contentBetweenMarkers(latexContent)
	if !ok {
		return "", false
	}
	content = removeTitleBlock(content)
	if content == "" {
		return "", false
	}
	return content, true
}

// contentBetweenMarkers slices out the text between the line after the
// begin marker and the line before the end marker, trimmed of
// surrounding whitespace.
func contentBetweenMarkers(s string) (string, bool) {
	begin := strings.Index(s, beginContentMarker)
	if begin < 0 {
		return "", false
	}
	end := strings.Index(s[begin+len(beginContentMarker):], endContentMarker)
	if end < 0 {
		return "", false
	}
	end += begin + len(beginContentMarker)

	nl := strings.IndexByte(s[begin:], '\n')
	if nl < 0 {
		// The begin marker line never ends, so no content region exists.
		return "", false
	}
	start := begin + nl + 1
	stop := strings.LastIndex(s[:end], "\n")
	if stop < start {
		return "", false
	}
	return strings.TrimSpace(s[start:stop]), true
}

// removeTitleBlock strips the converter's own title section so the
// recipe heading is not typeset twice. Removal only happens for a
// well-formed block; content with inverted title markers is returned
// unchanged.
func removeTitleBlock(content string) string {
	begin := strings.Index(content, beginTitleMarker)
	if begin < 0 {
		return content
	}
	end := strings.Index(content[begin:], endTitleMarker)
	if end < 0 {
		return content
	}
	end += begin + len(endTitleMarker)

	// Drop the block through the end of its line, then left-trim what
	// follows so the body starts flush.
	tail := content[end:]
	if nl := strings.IndexByte(tail, '\n'); nl >= 0 {
		tail = tail[nl:]
	}
	return content[:begin] + strings.TrimLeftFunc(tail, unicode.IsSpace)
}
