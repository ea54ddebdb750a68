package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrRecipeNotFound indicates the requested recipe is not in the catalog
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrInvalidDraft indicates a submitted recipe failed validation
	ErrInvalidDraft = errors.New("invalid recipe")
)
