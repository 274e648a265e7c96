package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-cookbook/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigName string        // COOKBOOK_CONFIG: config file name or path
	Title      string        // COOKBOOK_TITLE: cookbook title
	Author     string        // COOKBOOK_AUTHOR: cookbook author
	Date       string        // COOKBOOK_DATE: title page date
	RecipeDir  string        // COOKBOOK_RECIPE_DIR: default recipe directory
	Output     string        // COOKBOOK_OUTPUT: default output file
	Converter  string        // COOKBOOK_CONVERTER: converter binary
	Timeout    time.Duration // COOKBOOK_TIMEOUT: per-recipe timeout
}

// knownEnvVars lists valid COOKBOOK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"COOKBOOK_CONFIG":     true,
	"COOKBOOK_TITLE":      true,
	"COOKBOOK_AUTHOR":     true,
	"COOKBOOK_DATE":       true,
	"COOKBOOK_RECIPE_DIR": true,
	"COOKBOOK_OUTPUT":     true,
	"COOKBOOK_CONVERTER":  true,
	"COOKBOOK_TIMEOUT":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized COOKBOOK_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigName: os.Getenv("COOKBOOK_CONFIG"),
		Title:      os.Getenv("COOKBOOK_TITLE"),
		Author:     os.Getenv("COOKBOOK_AUTHOR"),
		Date:       os.Getenv("COOKBOOK_DATE"),
		RecipeDir:  os.Getenv("COOKBOOK_RECIPE_DIR"),
		Output:     os.Getenv("COOKBOOK_OUTPUT"),
		Converter:  os.Getenv("COOKBOOK_CONVERTER"),
	}

	// Parse duration for timeout; invalid values are ignored here and the
	// resolved value is validated in resolveTimeoutWithEnv.
	if timeout := os.Getenv("COOKBOOK_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized COOKBOOK_* variables.
// Helps catch typos like COOKBOOK_AUTOR instead of COOKBOOK_AUTHOR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "COOKBOOK_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty,
// so config file values win over the environment. CLI flags are applied
// later via mergeFlags and win over both. Timeout is resolved separately
// in resolveTimeoutWithEnv.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Title != "" && cfg.Book.Title == "" {
		cfg.Book.Title = env.Title
	}
	if env.Author != "" && cfg.Book.Author == "" {
		cfg.Book.Author = env.Author
	}
	if env.Date != "" && cfg.Book.Date == "" {
		cfg.Book.Date = env.Date
	}
	if env.RecipeDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.RecipeDir
	}
	if env.Output != "" && cfg.Output.DefaultFile == "" {
		cfg.Output.DefaultFile = env.Output
	}
	if env.Converter != "" && cfg.Converter.Command == "" {
		cfg.Converter.Command = env.Converter
	}
}
