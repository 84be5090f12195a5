package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Filtering errors
	ErrMsgNoRecipesMatch = "no recipes found matching your preferences"

	// Lookup errors
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgPlanNotFound   = "meal plan not found"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Filtering errors
	ErrNoRecipesMatch = errors.New(ErrMsgNoRecipesMatch)

	// Lookup errors
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)
	ErrPlanNotFound   = errors.New(ErrMsgPlanNotFound)
)
