package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Meal plan operation error messages
	ErrMsgGeneratePlanFailed  = "Failed to generate meal plan"
	ErrMsgGetActivePlanFailed = "Failed to get active meal plan"
	ErrMsgGetRecipesFailed    = "Failed to get recipes"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgNoRecipesMatchError = "No recipes match your preferences. Try relaxing dietary restrictions or the cooking time limit."
	ErrMsgPlanNotFoundError   = "No active meal plan found"
	ErrMsgRecipeNotFoundError = "Recipe not found"
)
