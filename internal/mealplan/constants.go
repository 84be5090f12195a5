package mealplan

// Scoring weights. Calorie fit dominates, difficulty and time split the rest.
const (
	CalorieWeight    = 0.4
	DifficultyWeight = 0.3
	TimeWeight       = 0.3

	// CuisineBonus multiplies the weighted score when a recipe matches a
	// preferred cuisine
	CuisineBonus = 1.2

	// TimeScoreCeilingMinutes is the total prep+cook time at which the time
	// score reaches zero
	TimeScoreCeilingMinutes = 120
)

// Difficulty scores
const (
	EasyScore   = 1.0
	MediumScore = 0.7
	HardScore   = 0.4
)

// DefaultTopPicks is how many top-scored candidates are eligible for the
// randomized pick when no config value is supplied
const DefaultTopPicks = 3

// DateFormat is the wire format for start dates
const DateFormat = "2006-01-02"

// Tag that marks a recipe as suitable for every slot
const TagAnyMeal = "any-meal"

// Log messages
const (
	LogMsgGenerateCalled   = "GenerateWeeklyMealPlan called"
	LogMsgPlanBuilt        = "Weekly plan built"
	LogMsgSlotUnfilled     = "No candidates remain, slot left unfilled"
	LogMsgSlotFallbackPick = "No suitable candidate, picking any unused recipe"
	LogMsgDayPersistFailed = "Failed to persist day's meals, continuing"
	LogMsgPlanPersisted    = "Weekly plan persisted"
)

// Error context strings
const (
	ErrContextFailedToCreatePlan = "failed to create meal plan record"
	ErrContextInvalidStartDate   = "invalid start date"
	ErrContextInvalidUserID      = "invalid user id"
)
