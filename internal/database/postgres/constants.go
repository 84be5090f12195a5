package postgres

// Error context strings for wrapped repository errors
const (
	ErrCtxGetUserProfile      = "failed to get user profile"
	ErrCtxGetMealPreferences  = "failed to get meal preferences"
	ErrCtxGetPlanningSettings = "failed to get meal planning settings"

	ErrCtxFindRecipes   = "failed to find recipes"
	ErrCtxGetRecipe     = "failed to get recipe"
	ErrCtxInsertRecipe  = "failed to insert recipe"
	ErrCtxScanRecipeRow = "failed to scan recipe row"

	ErrCtxBeginPlanTx         = "failed to begin meal plan transaction"
	ErrCtxDeactivatePriorPlan = "failed to deactivate prior active plan"
	ErrCtxInsertPlan          = "failed to insert meal plan"
	ErrCtxCommitPlanTx        = "failed to commit meal plan transaction"
	ErrCtxInsertMeals         = "failed to insert meals"
	ErrCtxGetActivePlan       = "failed to get active meal plan"
	ErrCtxGetPlanMeals        = "failed to load meals for plan"
	ErrCtxDeletePlan          = "failed to delete meal plan"
)

// Log Messages
const (
	LogMsgFailedToRollbackTx = "Failed to rollback transaction"
)
