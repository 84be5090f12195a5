package domain

import (
	"time"

	"github.com/google/uuid"
)

// MealType identifies a slot within a day
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// DaysPerPlan is the fixed length of a weekly plan
const DaysPerPlan = 7

// Meal is one scheduled recipe within a weekly plan
type Meal struct {
	ID            uuid.UUID `json:"id"`
	PlanID        uuid.UUID `json:"plan_id"`
	RecipeID      uuid.UUID `json:"recipe_id"`
	RecipeName    string    `json:"recipe_name,omitempty"`
	MealType      MealType  `json:"meal_type"`
	ScheduledDate time.Time `json:"scheduled_date"`
	ScheduledTime string    `json:"scheduled_time"` // "HH:MM"
	Servings      int       `json:"servings"`
	Completed     bool      `json:"completed"`
}

// DailyMealPlan is a single day's meals plus its nutrition rollup
type DailyMealPlan struct {
	Date          time.Time `json:"date"`
	Meals         []Meal    `json:"meals"`
	Nutrition     Nutrition `json:"nutrition"`
	TotalCalories float64   `json:"total_calories"`
}

// WeeklyMealPlan is the top-level generation output: exactly DaysPerPlan
// daily plans with contiguous dates starting at StartDate.
type WeeklyMealPlan struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Name        string          `json:"name"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	IsActive    bool            `json:"is_active"`
	DailyPlans  []DailyMealPlan `json:"daily_plans"`
	GroceryList []string        `json:"grocery_list"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DayPersistenceFailure records a day whose meal batch failed to persist.
// The in-memory plan still carries the day's meals.
type DayPersistenceFailure struct {
	Date  time.Time `json:"date"`
	Error string    `json:"error"`
}

// GenerationResult is a weekly plan plus any day-level persistence failures.
// Generation degrades softly: a failed day write never aborts the remaining
// days.
type GenerationResult struct {
	Plan       *WeeklyMealPlan         `json:"plan"`
	FailedDays []DayPersistenceFailure `json:"failed_days,omitempty"`
}
