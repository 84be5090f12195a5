package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshplate/mealplan-api/internal/domain"
)

// MealPlan defines the persistence interface for weekly plans and their meals
type MealPlan interface {
	// CreatePlan inserts the plan record and, in the same transaction,
	// deactivates any other active plan for the same user. Exactly one
	// active plan per user may exist at a time.
	CreatePlan(ctx context.Context, plan *domain.WeeklyMealPlan) error

	// InsertMeals persists one day's meal batch. Called once per day,
	// sequentially, so a failed day never corrupts the next one.
	InsertMeals(ctx context.Context, meals []domain.Meal) error

	GetActivePlan(ctx context.Context, userID uuid.UUID) (*domain.WeeklyMealPlan, error)
	DeletePlan(ctx context.Context, planID uuid.UUID) error
}
