// Package config loads and validates cookbook configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-cookbook/internal/fileutil"
	"github.com/alnah/go-cookbook/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits to keep hostile config files from bloating the
// generated document.
const (
	MaxTitleLength    = 200 // Book title on the title page
	MaxAuthorLength   = 100 // Author line below the title
	MaxDateLength     = 60  // Literal date or "auto:FORMAT" expression
	MaxTaglineLength  = 200 // Italic line above the date
	MaxChapterLength  = 100 // Default chapter name
	MaxLanguageLength = 30  // Polyglossia language name
	MaxFontLength     = 100 // fontspec font name
	MaxIndexLength    = 100 // Index heading
	MaxCommandLength  = 255 // Converter binary name or path
)

// Config holds all configuration for cookbook generation.
type Config struct {
	Book      BookConfig      `yaml:"book"`
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Converter ConverterConfig `yaml:"converter"`
}

// BookConfig defines document options. Empty strings inherit the library
// defaults: title "My Cookbook", Russian main language with English
// secondary, DejaVu Serif, the Russian index heading, and the CookCLI
// tagline.
type BookConfig struct {
	Title          string `yaml:"title"`
	Author         string `yaml:"author"`         // Empty = no author line
	Date           string `yaml:"date"`           // "auto", "auto:FORMAT", or literal; empty = \today
	Tagline        string `yaml:"tagline"`        // Italic line on the title page
	DefaultChapter string `yaml:"defaultChapter"` // Chapter for recipes at the root of the tree
	Language       string `yaml:"language"`       // Polyglossia main language
	OtherLanguage  string `yaml:"otherLanguage"`  // Polyglossia secondary language
	MainFont       string `yaml:"mainFont"`       // fontspec main font
	IndexTitle     string `yaml:"indexTitle"`     // Heading above the printed index
	Index          bool   `yaml:"index"`          // Emit \index entries and \printindex
	TOC            bool   `yaml:"toc"`            // Emit \tableofcontents
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default recipe directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultFile string `yaml:"defaultFile"` // Default output file (empty = must specify)
}

// ConverterConfig defines CookCLI invocation options.
type ConverterConfig struct {
	Command       string `yaml:"command"`       // Converter binary (empty = "cook")
	CargoFallback bool   `yaml:"cargoFallback"` // Try "cargo run" when the binary is missing
	Timeout       string `yaml:"timeout"`       // Per-recipe timeout, e.g. "30s" (empty = none)
}

// DefaultConfig returns the stock configuration: index, table of
// contents and the cargo fallback enabled, all text fields empty so the
// library defaults apply.
func DefaultConfig() *Config {
	return &Config{
		Book:      BookConfig{Index: true, TOC: true},
		Converter: ConverterConfig{CargoFallback: true},
	}
}

// Validate checks field lengths and the timeout syntax.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	limits := []struct {
		field string
		value string
		max   int
	}{
		{"book.title", c.Book.Title, MaxTitleLength},
		{"book.author", c.Book.Author, MaxAuthorLength},
		{"book.date", c.Book.Date, MaxDateLength},
		{"book.tagline", c.Book.Tagline, MaxTaglineLength},
		{"book.defaultChapter", c.Book.DefaultChapter, MaxChapterLength},
		{"book.language", c.Book.Language, MaxLanguageLength},
		{"book.otherLanguage", c.Book.OtherLanguage, MaxLanguageLength},
		{"book.mainFont", c.Book.MainFont, MaxFontLength},
		{"book.indexTitle", c.Book.IndexTitle, MaxIndexLength},
		{"converter.command", c.Converter.Command, MaxCommandLength},
	}
	for _, l := range limits {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if c.Converter.Timeout != "" {
		d, err := time.ParseDuration(c.Converter.Timeout)
		if err != nil {
			return fmt.Errorf("converter.timeout: invalid duration %q", c.Converter.Timeout)
		}
		if d <= 0 {
			return fmt.Errorf("converter.timeout: must be positive, got %q", c.Converter.Timeout)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. The file is parsed over DefaultConfig, so omitted fields
// keep their defaults: a file that only sets a title does not turn off
// the index.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-cookbook/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-cookbook", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
