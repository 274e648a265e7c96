package cookbook

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func writeRecipe(t *testing.T, dir, rel string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("Boil @water{1%l}.\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanRecipes(t *testing.T) {
	t.Parallel()

	t.Run("root files use default chapter", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		borscht := writeRecipe(t, dir, "borscht.cook")
		olivier := writeRecipe(t, dir, "olivier.cook")

		got, err := ScanRecipes(dir, DefaultChapter)
		if err != nil {
			t.Fatalf("ScanRecipes() unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("chapters = %d, want 1", len(got))
		}
		recipes := got[DefaultChapter]
		sort.Strings(recipes)
		want := []string{borscht, olivier}
		if !reflect.DeepEqual(recipes, want) {
			t.Errorf("recipes = %v, want %v", recipes, want)
		}
	})

	t.Run("subdirectories become chapters", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeRecipe(t, dir, "soups/borscht.cook")
		writeRecipe(t, dir, "main_dishes/stew.cook")
		writeRecipe(t, dir, "snack.cook")

		got, err := ScanRecipes(dir, DefaultChapter)
		if err != nil {
			t.Fatalf("ScanRecipes() unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("chapters = %v, want Soups and Main Dishes", got)
		}
		// snack.cook shares Main Dishes with the main_dishes subdirectory.
		if len(got["Main Dishes"]) != 2 {
			t.Errorf("Main Dishes recipes = %d, want 2", len(got["Main Dishes"]))
		}
		if len(got["Soups"]) != 1 {
			t.Errorf("Soups recipes = %d, want 1", len(got["Soups"]))
		}
	})

	t.Run("chapter comes from the top-level directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeRecipe(t, dir, "desserts/cakes/napoleon.cook")

		got, err := ScanRecipes(dir, DefaultChapter)
		if err != nil {
			t.Fatalf("ScanRecipes() unexpected error: %v", err)
		}
		if len(got["Desserts"]) != 1 {
			t.Errorf("chapters = %v, want napoleon under Desserts", got)
		}
	})

	t.Run("non cook files ignored", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeRecipe(t, dir, "soups/borscht.cook")
		if err := os.WriteFile(filepath.Join(dir, "soups", "borscht.png"), []byte("png"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# recipes"), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := ScanRecipes(dir, DefaultChapter)
		if err != nil {
			t.Fatalf("ScanRecipes() unexpected error: %v", err)
		}
		if len(got) != 1 || len(got["Soups"]) != 1 {
			t.Errorf("chapters = %v, want only borscht under Soups", got)
		}
	})

	t.Run("empty directory yields no chapters", func(t *testing.T) {
		t.Parallel()
		got, err := ScanRecipes(t.TempDir(), DefaultChapter)
		if err != nil {
			t.Fatalf("ScanRecipes() unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("chapters = %v, want none", got)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := ScanRecipes(filepath.Join(t.TempDir(), "nope"), DefaultChapter)
		if !errors.Is(err, ErrRecipeDirNotFound) {
			t.Errorf("ScanRecipes() error = %v, want ErrRecipeDirNotFound", err)
		}
	})

	t.Run("path is a file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := writeRecipe(t, dir, "borscht.cook")
		_, err := ScanRecipes(path, DefaultChapter)
		if !errors.Is(err, ErrRecipeDirNotFound) {
			t.Errorf("ScanRecipes() error = %v, want ErrRecipeDirNotFound", err)
		}
	})
}

func TestFormatChapterName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single word", in: "soups", want: "Soups"},
		{name: "underscores", in: "main_dishes", want: "Main Dishes"},
		{name: "hyphens", in: "side-dishes", want: "Side Dishes"},
		{name: "mixed separators", in: "soups_and-stews", want: "Soups And Stews"},
		{name: "upper case flattened", in: "BBQ", want: "Bbq"},
		{name: "repeated separators collapse", in: "cold__salads", want: "Cold Salads"},
		{name: "leading separator dropped", in: "_drafts", want: "Drafts"},
		{name: "cyrillic", in: "русские_блюда", want: "Русские Блюда"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatChapterName(tt.in); got != tt.want {
				t.Errorf("FormatChapterName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRecipeDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "underscores", in: "recipes/beef_stroganoff.cook", want: "beef stroganoff"},
		{name: "hyphens", in: "pan-cakes.cook", want: "pan cakes"},
		{name: "casing preserved", in: "soups/BBQ_Ribs.cook", want: "BBQ Ribs"},
		{name: "plain", in: "/abs/path/borscht.cook", want: "borscht"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RecipeDisplayName(tt.in); got != tt.want {
				t.Errorf("RecipeDisplayName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
