package domain

// BudgetRange is a qualitative grocery budget bracket
type BudgetRange string

const (
	BudgetLow    BudgetRange = "low"
	BudgetMedium BudgetRange = "medium"
	BudgetHigh   BudgetRange = "high"
)

// UserProfile is the health-profile fragment of a user's preferences
type UserProfile struct {
	UserID              string                 `json:"user_id"`
	DietaryRestrictions []string               `json:"dietary_restrictions"`
	Allergies           []string               `json:"allergies"`
	HealthGoals         []string               `json:"health_goals"`
	ActivityLevel       string                 `json:"activity_level"`
	LifestyleFactors    map[string]interface{} `json:"lifestyle_factors,omitempty"`
}

// MealPreferences is the standalone meal-preference fragment
type MealPreferences struct {
	UserID                string      `json:"user_id"`
	CuisineTypes          []string    `json:"cuisine_types"`
	CookingTimePreference string      `json:"cooking_time_preference"` // "quick", "moderate", "long"
	MealComplexity        string      `json:"meal_complexity"`
	BudgetRange           BudgetRange `json:"budget_range"`
}

// PlanningSettings is the meal-planning settings fragment
type PlanningSettings struct {
	UserID                string      `json:"user_id"`
	CookingTimePreference string      `json:"cooking_time_preference"`
	BudgetRange           BudgetRange `json:"budget_range"`
	PreferredCuisines     []string    `json:"preferred_cuisines"`
	HouseholdSize         int         `json:"household_size"`
	IncludeSnacks         bool        `json:"include_snacks"`
}

// PreferenceOverrides are request-level overrides that take precedence over
// every stored fragment
type PreferenceOverrides struct {
	DietaryRestrictions []string    `json:"dietary_restrictions,omitempty"`
	Allergies           []string    `json:"allergies,omitempty"`
	CuisinePreferences  []string    `json:"cuisine_preferences,omitempty"`
	CookingTimeLimit    int         `json:"cooking_time_limit,omitempty"`
	BudgetRange         BudgetRange `json:"budget_range,omitempty"`
	CalorieTarget       int         `json:"calorie_target,omitempty"`
}

// Preferences is the canonical merged preference object, built fresh per
// generation request. CalorieTarget is always within [MinCalorieTarget,
// MaxCalorieTarget].
type Preferences struct {
	DietaryRestrictions []string    `json:"dietary_restrictions"`
	Allergies           []string    `json:"allergies"`
	CuisinePreferences  []string    `json:"cuisine_preferences"`
	CookingTimeLimit    int         `json:"cooking_time_limit"` // minutes
	BudgetRange         BudgetRange `json:"budget_range"`
	CalorieTarget       int         `json:"calorie_target"` // kcal/day
	ProteinTarget       int         `json:"protein_target,omitempty"`
	CarbTarget          int         `json:"carb_target,omitempty"`
	FatTarget           int         `json:"fat_target,omitempty"`
	IncludeSnacks       bool        `json:"include_snacks"`
}

// Calorie target clamp bounds (kcal/day)
const (
	MinCalorieTarget = 1500
	MaxCalorieTarget = 3000
)
