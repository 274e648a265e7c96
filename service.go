package cookbook

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Generator orchestrates the recipe-to-cookbook pipeline: scan the
// recipe tree, convert each recipe to LaTeX, extract the usable
// fragment and assemble a single book document.
type Generator struct {
	cfg       generatorConfig
	converter recipeConverter
	log       *slog.Logger
}

// New creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Generator {
	g := &Generator{
		cfg: generatorConfig{
			command:       defaultConverterCommand,
			cargoFallback: true,
		},
		log: slog.Default(),
	}

	for _, opt := range opts {
		opt(g)
	}

	// Create converter if not injected (e.g., by tests)
	if g.converter == nil {
		g.converter = newCookConverter(g.cfg)
	}

	return g
}

// Generate scans in.RecipeDir, converts every recipe and writes the
// assembled LaTeX document to in.Output. A recipe that fails to
// convert degrades to a placeholder section instead of aborting the
// run; the returned Result counts such failures. The context cancels
// converter invocations and stops the run between recipes.
func (g *Generator) Generate(ctx context.Context, in Input) (*Result, error) {
	if err := g.validateInput(in); err != nil {
		return nil, err
	}

	book := DefaultBookSettings()
	if in.Book != nil {
		book = in.Book.withDefaults()
	}

	g.log.Info("scanning recipes", "dir", in.RecipeDir)
	chapters, err := ScanRecipes(in.RecipeDir, book.DefaultChapter)
	if err != nil {
		return nil, err
	}
	if len(chapters) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoRecipes, in.RecipeDir)
	}

	total := 0
	for _, recipes := range chapters {
		total += len(recipes)
	}
	g.log.Info("found recipes", "recipes", total, "chapters", len(chapters))

	f, err := os.Create(in.Output)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	w := bufio.NewWriter(f)
	result, err := g.writeBook(ctx, w, chapters, book)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return result, nil
}

// writeBook renders the document: header, chapters in lexicographic
// order with their recipes in path order, footer.
func (g *Generator) writeBook(ctx context.Context, w io.Writer, chapters map[string][]string, book *BookSettings) (*Result, error) {
	if _, err := io.WriteString(w, renderHeader(book)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	names := make([]string, 0, len(chapters))
	for name := range chapters {
		names = append(names, name)
	}
	sort.Strings(names)

	result := &Result{Chapters: len(names)}
	for _, name := range names {
		g.log.Info("processing chapter", "chapter", name)
		if _, err := io.WriteString(w, renderChapterHeading(name)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}

		recipes := chapters[name]
		sort.Strings(recipes)
		for _, path := range recipes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			sec := g.buildRecipeSection(ctx, path)
			result.Recipes++
			if sec.content == "" {
				result.Failed++
			}
			if _, err := io.WriteString(w, renderRecipe(sec, book)); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
			}
		}
	}

	if _, err := io.WriteString(w, renderFooter(book)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return result, nil
}

// buildRecipeSection converts one recipe and collects its parts. Every
// failure, including a panic in extraction, degrades to empty content
// so a single broken recipe never aborts the book.
func (g *Generator) buildRecipeSection(ctx context.Context, path string) (sec recipeSection) {
	sec.name = RecipeDisplayName(path)
	sec.meta = Metadata{}
	g.log.Info("adding recipe", "recipe", sec.name)

	defer func() {
		if r := recover(); r != nil {
			g.log.Warn("could not process recipe", "recipe", path, "panic", r)
			sec.meta = Metadata{}
			sec.content = ""
		}
	}()

	// The image accompanies the recipe even when conversion fails.
	if image, ok := FindRecipeImage(path); ok {
		g.log.Info("including image", "image", filepath.Base(image))
		sec.image = image
	}

	latex, err := g.converter.ConvertRecipe(ctx, path)
	if err != nil {
		g.log.Warn("could not process recipe", "recipe", path, "error", err)
		return sec
	}

	sec.meta = ExtractMetadata(latex)

	fragment, ok := ExtractFragment(latex)
	if !ok {
		g.log.Warn("could not process recipe", "recipe", path, "reason", "no usable recipe content")
		return sec
	}
	sec.content = fragment
	return sec
}

// validateInput checks that required fields are present.
func (g *Generator) validateInput(in Input) error {
	if in.RecipeDir == "" {
		return ErrEmptyRecipeDir
	}
	if in.Output == "" {
		return ErrEmptyOutput
	}
	return nil
}
