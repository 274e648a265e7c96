package cookbook

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyRecipeDir    = errors.New("recipe directory cannot be empty")
	ErrEmptyOutput       = errors.New("output path cannot be empty")
	ErrRecipeDirNotFound = errors.New("recipe directory not found")
	ErrNoRecipes         = errors.New("no recipes found")
	ErrWriteOutput       = errors.New("failed to write cookbook")

	// Converter invocation errors. Both are recoverable per recipe:
	// the affected recipe falls back to a placeholder in the output.
	ErrConverterNotFound = errors.New("recipe converter not found")
	ErrConverterFailed   = errors.New("recipe conversion failed")
)
