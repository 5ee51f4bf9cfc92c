package catalog

import "errors"

var (
	// ErrLocationNotFound is returned for an unknown location id
	ErrLocationNotFound = errors.New("location not found")

	// ErrRecipeNotFound is returned for an unknown recipe id
	ErrRecipeNotFound = errors.New("recipe not found")
)
