// Package cookbook assembles a print-ready LaTeX cookbook from a
// directory tree of Cooklang recipes.
//
// # Quick Start
//
// Create a generator and point it at a recipe tree:
//
//	gen := cookbook.New()
//	result, err := gen.Generate(ctx, cookbook.Input{
//	    RecipeDir: "recipes",
//	    Output:    "cookbook.tex",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d recipes in %d chapters\n", result.Recipes, result.Chapters)
//
// # Pipeline
//
// Generation follows these stages:
//
//  1. Recursive scan for .cook files, grouped into chapters by top-level
//     directory (recipes at the root fall into a default chapter)
//  2. Per-recipe conversion to LaTeX via the CookCLI converter
//     (cook recipe -f latex), with a cargo run fallback when the
//     binary is not installed
//  3. Extraction of the marker-delimited recipe body and the metadata
//     comments from the converter output
//  4. Assembly of a single LaTeX document: preamble, sorted chapters,
//     per-recipe index entries, sidecar images, and table of contents
//     hooks
//
// A recipe that cannot be converted degrades to a placeholder and a
// warning; the run fails only when no recipes are found at all.
//
// # Configuration
//
// Document settings travel with the Input:
//
//	result, err := gen.Generate(ctx, cookbook.Input{
//	    RecipeDir: "recipes",
//	    Output:    "cookbook.tex",
//	    Book: &cookbook.BookSettings{
//	        Title:  "Family Recipes",
//	        Author: "Jane Doe",
//	        Index:  true,
//	        TOC:    true,
//	    },
//	})
//
// Converter behavior is configured on the Generator:
//
//	gen := cookbook.New(
//	    cookbook.WithTimeout(30 * time.Second),
//	    cookbook.WithConverterCommand("cook"),
//	)
//
// # Compiling the Output
//
// The assembled document targets xelatex. When the index is enabled,
// run makeindex on the generated .idx file between xelatex passes so
// cross-references and the recipe index resolve.
package cookbook
