package cookbook

import (
	"log/slog"
	"time"
)

// Default document values, matching the layout CookCLI cookbooks ship with.
const (
	DefaultTitle         = "My Cookbook"
	DefaultChapter       = "Main Dishes"
	DefaultLanguage      = "russian"
	DefaultOtherLanguage = "english"
	DefaultMainFont      = "DejaVu Serif"
	DefaultIndexTitle    = "Указатель рецептов"
	DefaultTagline       = "Created with CookCLI"
)

// defaultConverterCommand is the CookCLI binary invoked per recipe.
const defaultConverterCommand = "cook"

// Input contains generation parameters.
type Input struct {
	RecipeDir string        // Directory scanned recursively for .cook files (required)
	Output    string        // Destination LaTeX file (required)
	Book      *BookSettings // Document settings (optional, nil = defaults)
}

// BookSettings configures the assembled LaTeX document.
type BookSettings struct {
	Title          string // Cookbook title shown on the title page and running head
	Author         string // Optional author line on the title page
	Index          bool   // Emit \index entries and \printindex
	TOC            bool   // Emit \tableofcontents
	DefaultChapter string // Chapter for recipes at the root of RecipeDir
	Language       string // Polyglossia main language
	OtherLanguage  string // Polyglossia secondary language
	MainFont       string // fontspec main font
	IndexTitle     string // Heading above the printed index
	Tagline        string // Italic line above the date on the title page
	Date           string // Title page date; empty = \today
}

// DefaultBookSettings returns document settings with default values.
func DefaultBookSettings() *BookSettings {
	return &BookSettings{
		Title:          DefaultTitle,
		Index:          true,
		TOC:            true,
		DefaultChapter: DefaultChapter,
		Language:       DefaultLanguage,
		OtherLanguage:  DefaultOtherLanguage,
		MainFont:       DefaultMainFont,
		IndexTitle:     DefaultIndexTitle,
		Tagline:        DefaultTagline,
	}
}

// withDefaults returns a copy with empty text fields replaced by the
// package defaults. Author and Date stay empty when unset: no author
// line, \today as the date.
func (s *BookSettings) withDefaults() *BookSettings {
	out := *s
	if out.Title == "" {
		out.Title = DefaultTitle
	}
	if out.DefaultChapter == "" {
		out.DefaultChapter = DefaultChapter
	}
	if out.Language == "" {
		out.Language = DefaultLanguage
	}
	if out.OtherLanguage == "" {
		out.OtherLanguage = DefaultOtherLanguage
	}
	if out.MainFont == "" {
		out.MainFont = DefaultMainFont
	}
	if out.IndexTitle == "" {
		out.IndexTitle = DefaultIndexTitle
	}
	if out.Tagline == "" {
		out.Tagline = DefaultTagline
	}
	return &out
}

// Result summarizes a completed generation run.
type Result struct {
	Recipes  int // Recipes discovered by the scan
	Chapters int // Chapters written to the document
	Failed   int // Recipes that fell back to the placeholder
}

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	command       string
	cargoFallback bool
	timeout       time.Duration
}

// WithTimeout sets a per-invocation converter timeout. The default is
// no timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("cookbook: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}

// WithConverterCommand overrides the converter binary name.
// Panics if name is empty.
func WithConverterCommand(name string) Option {
	if name == "" {
		panic("cookbook: WithConverterCommand requires a command name")
	}
	return func(g *Generator) {
		g.cfg.command = name
	}
}

// WithCargoFallback toggles the cargo run fallback used when the
// converter binary is not installed. Enabled by default.
func WithCargoFallback(enabled bool) Option {
	return func(g *Generator) {
		g.cfg.cargoFallback = enabled
	}
}

// WithLogger sets the logger used for progress and per-recipe warnings.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("cookbook: WithLogger requires a non-nil logger")
	}
	return func(g *Generator) {
		g.log = l
	}
}
