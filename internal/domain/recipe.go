package domain

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty is the self-reported cooking difficulty of a recipe
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Nutrition holds per-serving nutrition values. All values are non-negative.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// Add returns the element-wise sum of two nutrition records
func (n Nutrition) Add(other Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fat:      n.Fat + other.Fat,
		Fiber:    n.Fiber + other.Fiber,
		Sugar:    n.Sugar + other.Sugar,
		Sodium:   n.Sodium + other.Sodium,
	}
}

// Recipe is a read-only corpus entry. The planner never mutates a Recipe.
// Tags are free-form lowercase strings covering cuisine, meal type and
// dietary labels.
type Recipe struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	PrepTimeMinutes int        `json:"prep_time_minutes"`
	CookTimeMinutes int        `json:"cook_time_minutes"`
	Servings        int        `json:"servings"`
	Difficulty      Difficulty `json:"difficulty"`
	Tags            []string   `json:"tags"`
	Nutrition       Nutrition  `json:"nutrition"`
	CreatedAt       time.Time  `json:"created_at,omitempty"`
}

// TotalTimeMinutes is prep plus cook time
func (r *Recipe) TotalTimeMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// RecipeQuery describes a bounded corpus query.
// Zero-valued filters are not applied.
type RecipeQuery struct {
	MaxPrepMinutes int
	MaxCookMinutes int
	// Tags filters to recipes whose tag set overlaps the list (OR semantics)
	Tags  []string
	Limit int
}
