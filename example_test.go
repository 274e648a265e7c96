package cookbook_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-cookbook"
)

// Example demonstrates the generation entry point. An empty recipe
// directory is reported before any converter call, so this example runs
// without CookCLI installed.
func Example() {
	dir, err := os.MkdirTemp("", "recipes")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	gen := cookbook.New()
	_, err = gen.Generate(context.Background(), cookbook.Input{
		RecipeDir: dir,
		Output:    filepath.Join(dir, "cookbook.tex"),
	})
	if errors.Is(err, cookbook.ErrNoRecipes) {
		fmt.Println("no recipes found")
	}
	// Output: no recipes found
}

// ExampleEscape demonstrates escaping LaTeX special characters in
// recipe-derived text.
func ExampleEscape() {
	fmt.Println(cookbook.Escape("Salt & Pepper 50%"))
	fmt.Println(cookbook.Escape("beef_stroganoff #1"))
	// Output:
	// Salt \& Pepper 50\%
	// beef\_stroganoff \#1
}

// ExampleExtractMetadata demonstrates reading the metadata comments
// CookCLI emits ahead of the recipe body.
func ExampleExtractMetadata() {
	latex := `% DESCRIPTION: Hearty beet soup
% TAGS: soup, winter
% AUTHOR: Olga
\section{Borscht}
`
	meta := cookbook.ExtractMetadata(latex)
	fmt.Println(meta["description"])
	fmt.Println(meta.Tags())
	fmt.Println(meta.Keys())
	// Output:
	// Hearty beet soup
	// [soup winter]
	// [description tags author]
}

// ExampleExtractFragment demonstrates extracting the reusable recipe
// body from marker-delimited converter output. The converter's own
// title block is removed so the heading is not typeset twice.
func ExampleExtractFragment() {
	latex := `% BEGIN_RECIPE_CONTENT
% BEGIN_TITLE
\section{Borscht}
% END_TITLE
\subsection{Ingredients}
Beets, cabbage, beef.
% END_RECIPE_CONTENT
`
	fragment, ok := cookbook.ExtractFragment(latex)
	fmt.Println(ok)
	fmt.Println(fragment)
	// Output:
	// true
	// \subsection{Ingredients}
	// Beets, cabbage, beef.
}

// ExampleFormatChapterName demonstrates how directory names become
// chapter titles.
func ExampleFormatChapterName() {
	fmt.Println(cookbook.FormatChapterName("main_dishes"))
	fmt.Println(cookbook.FormatChapterName("soups-and-stews"))
	fmt.Println(cookbook.FormatChapterName("BBQ"))
	// Output:
	// Main Dishes
	// Soups And Stews
	// Bbq
}

// ExampleRecipeDisplayName demonstrates deriving a recipe name from its
// file path.
func ExampleRecipeDisplayName() {
	fmt.Println(cookbook.RecipeDisplayName("soups/beef_stroganoff.cook"))
	// Output: beef stroganoff
}

// ExampleDefaultBookSettings demonstrates the document defaults applied
// when Input.Book is nil.
func ExampleDefaultBookSettings() {
	s := cookbook.DefaultBookSettings()
	fmt.Println(s.Title)
	fmt.Println(s.DefaultChapter)
	fmt.Println(s.MainFont)
	// Output:
	// My Cookbook
	// Main Dishes
	// DejaVu Serif
}
