package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	cookbook "github.com/alnah/go-cookbook"
	"github.com/alnah/go-cookbook/internal/config"
	"github.com/alnah/go-cookbook/internal/dateutil"
	"github.com/alnah/go-cookbook/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoRecipeDir    = errors.New("no recipe directory specified")
	ErrNoOutput       = errors.New("no output file specified")
	ErrTooManyArgs    = errors.New("too many arguments")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// runGenerateCmd parses generate flags and executes a generation run.
func runGenerateCmd(args []string, env *Environment) int {
	flags, positional, err := parseGenerateFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	configureMaxProcs(env.Stderr, flags.common.verbose)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runGenerate(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runGenerate loads configuration, resolves inputs and generates the book.
func runGenerate(ctx context.Context, args []string, flags *generateFlags, env *Environment) error {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg := env.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigName
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if len(args) > 2 {
		return fmt.Errorf("%w: expected <recipe-dir> <output>", ErrTooManyArgs)
	}
	recipeDir, err := resolveRecipeDir(args, cfg)
	if err != nil {
		return err
	}
	output, err := resolveOutput(args, cfg)
	if err != nil {
		return err
	}

	// Resolve "auto" dates once for the whole book
	date, err := dateutil.ResolveDate(cfg.Book.Date, env.Now())
	if err != nil {
		return fmt.Errorf("resolving date: %w", err)
	}
	cfg.Book.Date = date

	timeout, err := resolveTimeoutWithEnv(flags.converter.timeout, envCfg.Timeout, cfg.Converter.Timeout)
	if err != nil {
		return err
	}

	opts := []cookbook.Option{
		cookbook.WithLogger(newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)),
		cookbook.WithCargoFallback(cfg.Converter.CargoFallback),
	}
	if cfg.Converter.Command != "" {
		opts = append(opts, cookbook.WithConverterCommand(cfg.Converter.Command))
	}
	if timeout > 0 {
		opts = append(opts, cookbook.WithTimeout(timeout))
	}

	gen := cookbook.New(opts...)
	result, err := gen.Generate(ctx, cookbook.Input{
		RecipeDir: recipeDir,
		Output:    output,
		Book:      buildBookSettings(cfg),
	})
	if err != nil {
		return err
	}

	printSummary(env.Stdout, result, output, cfg.Book.Index, flags.common.quiet)
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.book.title != "" {
		cfg.Book.Title = flags.book.title
	}
	if flags.book.author != "" {
		cfg.Book.Author = flags.book.author
	}
	if flags.book.date != "" {
		cfg.Book.Date = flags.book.date
	}
	if flags.converter.command != "" {
		cfg.Converter.Command = flags.converter.command
	}

	// Disable flags
	if flags.book.noIndex {
		cfg.Book.Index = false
	}
	if flags.book.noTOC {
		cfg.Book.TOC = false
	}
	if flags.converter.noCargoFallback {
		cfg.Converter.CargoFallback = false
	}
}

// resolveRecipeDir determines the recipe directory from args or config.
func resolveRecipeDir(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoRecipeDir
}

// resolveOutput determines the output file from args or config.
func resolveOutput(args []string, cfg *config.Config) (string, error) {
	if len(args) > 1 {
		return args[1], nil
	}
	if cfg.Output.DefaultFile != "" {
		return cfg.Output.DefaultFile, nil
	}
	return "", ErrNoOutput
}

// resolveTimeoutWithEnv resolves the per-recipe converter timeout.
// Priority: flag > environment > config file. Zero means no timeout.
func resolveTimeoutWithEnv(flagValue string, envValue time.Duration, configValue string) (time.Duration, error) {
	if flagValue == "" && envValue > 0 {
		return envValue, nil
	}

	value := flagValue
	if value == "" {
		value = configValue
	}
	if value == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidTimeout, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w %q: must be positive", ErrInvalidTimeout, value)
	}
	return d, nil
}

// buildBookSettings creates cookbook.BookSettings from config.
// Empty strings defer to the library defaults.
func buildBookSettings(cfg *config.Config) *cookbook.BookSettings {
	return &cookbook.BookSettings{
		Title:          cfg.Book.Title,
		Author:         cfg.Book.Author,
		Date:           cfg.Book.Date,
		Tagline:        cfg.Book.Tagline,
		Index:          cfg.Book.Index,
		TOC:            cfg.Book.TOC,
		DefaultChapter: cfg.Book.DefaultChapter,
		Language:       cfg.Book.Language,
		OtherLanguage:  cfg.Book.OtherLanguage,
		MainFont:       cfg.Book.MainFont,
		IndexTitle:     cfg.Book.IndexTitle,
	}
}

// printSummary reports generation counts and the xelatex compile steps.
func printSummary(w io.Writer, result *cookbook.Result, output string, index, quiet bool) {
	if quiet {
		return
	}

	fmt.Fprintf(w, "Found %d recipes in %d chapters\n", result.Recipes, result.Chapters)
	if result.Failed > 0 {
		fmt.Fprintf(w, "%d recipes could not be converted and use placeholders\n", result.Failed)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Cookbook created: %s\n", output)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To compile to PDF:")
	fmt.Fprintf(w, "  xelatex %s\n", output)
	if index {
		fmt.Fprintf(w, "  makeindex %s.idx\n", strings.TrimSuffix(output, ".tex"))
		fmt.Fprintf(w, "  xelatex %s\n", output)
	}
	fmt.Fprintf(w, "  xelatex %s\n", output)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tip: run xelatex multiple times to ensure proper cross-references")
}

// hintFor returns an actionable hint for known failure modes, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, cookbook.ErrRecipeDirNotFound):
		return hints.ForRecipeDir()
	case errors.Is(err, cookbook.ErrNoRecipes):
		return hints.ForNoRecipes()
	case errors.Is(err, cookbook.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, dateutil.ErrInvalidDateFormat):
		return hints.ForDateFormat()
	case errors.Is(err, ErrInvalidTimeout):
		return hints.ForTimeout()
	default:
		return ""
	}
}
