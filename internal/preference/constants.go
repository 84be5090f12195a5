package preference

// Qualitative cooking-time preferences and their minute budgets
const (
	TimePreferenceQuick    = "quick"
	TimePreferenceModerate = "moderate"
	TimePreferenceLong     = "long"

	QuickMinutes    = 30
	ModerateMinutes = 60
	LongMinutes     = 120

	// DefaultTimeLimitMinutes applies when no source specifies a preference
	DefaultTimeLimitMinutes = 60
)

// Daily calorie bases by activity level
const (
	ActivitySedentary        = "sedentary"
	ActivityLightlyActive    = "lightly-active"
	ActivityModeratelyActive = "moderately-active"
	ActivityVeryActive       = "very-active"
	ActivityExtremelyActive  = "extremely-active"

	DefaultCalorieBase = 2000
)

// calorieBaseByActivity maps activity level to a daily kcal base
var calorieBaseByActivity = map[string]int{
	ActivitySedentary:        1800,
	ActivityLightlyActive:    2000,
	ActivityModeratelyActive: 2200,
	ActivityVeryActive:       2400,
	ActivityExtremelyActive:  2600,
}

// Health goals that shift the calorie base
const (
	GoalWeightLoss     = "Weight Loss"
	GoalWeightGain     = "Weight Gain"
	GoalMuscleBuilding = "Muscle Building"

	GoalCalorieAdjustment = 300
)

// Log messages
const (
	LogMsgPreferencesMerged  = "Preferences merged"
	LogMsgLoadingSources     = "Loading preference sources"
	LogMsgSourceLookupFailed = "Preference source lookup failed"
)

// Error context strings
const (
	ErrContextFailedToLoadProfile  = "failed to load user profile"
	ErrContextFailedToLoadPrefs    = "failed to load meal preferences"
	ErrContextFailedToLoadSettings = "failed to load planning settings"
)
