// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file lookup failures.
func ForConfigNotFound() string {
	return formatHints([]string{
		"use --config /path/to/file.yaml",
		"create <name>.yaml under ~/.config/go-cookbook",
	})
}

// ForRecipeDir returns hints for recipe directory lookup failures.
func ForRecipeDir() string {
	return format("check the path or set input.defaultDir in your config")
}

// ForNoRecipes returns a hint when a directory scan finds nothing to convert.
func ForNoRecipes() string {
	return format("recipes must use the .cook extension")
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForDateFormat returns hints for unparseable date values.
func ForDateFormat() string {
	return format(`use "auto", "auto:PRESET" (iso, european, us, long), or a plain string`)
}

// ForTimeout returns hints for unparseable timeout values.
func ForTimeout() string {
	return format(`use a Go duration like "30s" or "2m"`)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
