package cookbook

import "strings"

// latexReplacements maps LaTeX special characters to their escaped
// forms. Order matters: the backslash entry must run before the entries
// that emit backslashes, and the brace entries before those that emit
// braces.
var latexReplacements = []struct {
	old string
	new string
}{
	{`\`, `\\`},
	{`{`, `\{`},
	{`}`, `\}`},
	{`$`, `\$`},
	{`&`, `\&`},
	{`#`, `\#`},
	{`^`, `\^{}`},
	{`_`, `\_`},
	{`~`, `\~{}`},
	{`%`, `\%`},
	{`<`, `\textless{}`},
	{`>`, `\textgreater{}`},
	{`|`, `\textbar{}`},
}

// Escape escapes LaTeX special characters in text for safe use in
// document body positions. Substitutions are applied in table order.
// Escaping is not idempotent: escaping already-escaped text doubles
// the backslashes, so callers must escape raw text exactly once.
func Escape(text string) string {
	for _, r := range latexReplacements {
		text = strings.ReplaceAll(text, r.old, r.new)
	}
	return text
}
