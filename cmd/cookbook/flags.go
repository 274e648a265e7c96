package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// bookFlags holds document metadata flags.
type bookFlags struct {
	title   string
	author  string
	date    string
	noIndex bool
	noTOC   bool
}

// converterFlags holds recipe converter flags.
type converterFlags struct {
	command         string
	timeout         string
	noCargoFallback bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common    commonFlags
	book      bookFlags
	converter converterFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addBookFlags adds document metadata flags to a FlagSet.
func addBookFlags(fs *flag.FlagSet, f *bookFlags) {
	fs.StringVar(&f.title, "title", "", "cookbook title")
	fs.StringVar(&f.author, "author", "", "cookbook author")
	fs.StringVar(&f.date, "date", "", "title page date (\"auto\" = today)")
	fs.BoolVar(&f.noIndex, "no-index", false, "disable the recipe index")
	fs.BoolVar(&f.noTOC, "no-toc", false, "disable the table of contents")
}

// addConverterFlags adds recipe converter flags to a FlagSet.
func addConverterFlags(fs *flag.FlagSet, f *converterFlags) {
	fs.StringVar(&f.command, "converter", "", "converter binary (default: cook)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-recipe conversion timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.noCargoFallback, "no-cargo-fallback", false, "do not fall back to cargo run")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	addCommonFlags(fs, &f.common)
	addBookFlags(fs, &f.book)
	addConverterFlags(fs, &f.converter)

	fs.Usage = func() { printGenerateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
