package cookbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("not really an image"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindRecipeImage(t *testing.T) {
	t.Parallel()

	t.Run("matching png", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		recipe := writeRecipe(t, dir, "borscht.cook")
		want := writeImage(t, dir, "borscht.png")

		got, ok := FindRecipeImage(recipe)
		if !ok {
			t.Fatal("FindRecipeImage() found nothing")
		}
		if got != want {
			t.Errorf("FindRecipeImage() = %q, want %q", got, want)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("FindRecipeImage() = %q, want absolute path", got)
		}
	})

	t.Run("png beats jpg", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		recipe := writeRecipe(t, dir, "borscht.cook")
		writeImage(t, dir, "borscht.jpg")
		want := writeImage(t, dir, "borscht.png")

		got, ok := FindRecipeImage(recipe)
		if !ok || got != want {
			t.Errorf("FindRecipeImage() = %q, %v, want %q", got, ok, want)
		}
	})

	t.Run("lowercase beats uppercase", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		recipe := writeRecipe(t, dir, "borscht.cook")
		writeImage(t, dir, "borscht.PNG")
		if _, err := os.Stat(filepath.Join(dir, "borscht.png")); err == nil {
			t.Skip("filesystem folds case; probe order unobservable")
		}
		want := writeImage(t, dir, "borscht.jpeg")

		got, ok := FindRecipeImage(recipe)
		if !ok || got != want {
			t.Errorf("FindRecipeImage() = %q, %v, want %q", got, ok, want)
		}
	})

	t.Run("uppercase extension found", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		recipe := writeRecipe(t, dir, "borscht.cook")
		want := writeImage(t, dir, "borscht.JPG")

		got, ok := FindRecipeImage(recipe)
		if !ok {
			t.Fatal("FindRecipeImage() found nothing")
		}
		// Case-insensitive comparison to stay stable on filesystems
		// that fold case.
		if !strings.EqualFold(got, want) {
			t.Errorf("FindRecipeImage() = %q, want %q", got, want)
		}
	})

	t.Run("stem must match exactly", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		recipe := writeRecipe(t, dir, "borscht.cook")
		writeImage(t, dir, "borscht2.png")
		writeImage(t, dir, "other.png")

		if got, ok := FindRecipeImage(recipe); ok {
			t.Errorf("FindRecipeImage() = %q, want no match", got)
		}
	})

	t.Run("no image", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		recipe := writeRecipe(t, dir, "borscht.cook")

		if got, ok := FindRecipeImage(recipe); ok {
			t.Errorf("FindRecipeImage() = %q, want no match", got)
		}
	})
}
