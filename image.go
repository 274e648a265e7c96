package cookbook

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-cookbook/internal/fileutil"
)

// recipeImageExtensions lists the sidecar image extensions probed next
// to a recipe file, in priority order.
var recipeImageExtensions = []string{".png", ".jpg", ".jpeg", ".PNG", ".JPG", ".JPEG"}

// FindRecipeImage looks for an image sharing the recipe's base name in
// the recipe's directory. It returns the absolute path of the first
// match in extension priority order, or false when none exists. The
// path is absolute because the document may be compiled from a
// different working directory.
func FindRecipeImage(recipePath string) (string, bool) {
	dir := filepath.Dir(recipePath)
	base := filepath.Base(recipePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	for _, ext := range recipeImageExtensions {
		candidate := filepath.Join(dir, stem+ext)
		if !fileutil.FileExists(candidate) {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return candidate, true
		}
		return abs, true
	}
	return "", false
}
