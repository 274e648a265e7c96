package cookbook

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ScanRecipes walks recipeDir and groups every .cook file by chapter.
// A file under a top-level subdirectory belongs to the chapter named
// after that subdirectory; a file at the root of recipeDir falls into
// defaultChapter. Paths keep their discovery order; callers that need
// a stable order sort the map keys and slices themselves.
func ScanRecipes(recipeDir, defaultChapter string) (map[string][]string, error) {
	info, err := os.Stat(recipeDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRecipeDirNotFound, recipeDir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRecipeDirNotFound, recipeDir)
	}

	chapters := make(map[string][]string)
	err = filepath.WalkDir(recipeDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || filepath.Ext(path) != ".cook" {
			return nil
		}
		rel, err := filepath.Rel(recipeDir, path)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		chapter := defaultChapter
		if parts := strings.Split(rel, string(filepath.Separator)); len(parts) > 1 {
			chapter = FormatChapterName(parts[0])
		}
		chapters[chapter] = append(chapters[chapter], path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chapters, nil
}

// FormatChapterName turns a directory name into a chapter title:
// underscores and hyphens become spaces and each word is capitalized.
// Capitalizing lower-cases the rest of the word, so "BBQ" becomes "Bbq".
func FormatChapterName(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	words := strings.Fields(name)
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToTitle(r)) + strings.ToLower(word[size:])
}

// RecipeDisplayName derives the human-readable recipe name from a file
// path: the stem with underscores and hyphens turned into spaces. The
// original casing is kept.
func RecipeDisplayName(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.ReplaceAll(stem, "_", " ")
	return strings.ReplaceAll(stem, "-", " ")
}
