package repository

import (
	"context"

	"github.com/freshplate/mealplan-api/internal/domain"
)

// Profile defines the read-only access to the three preference-source records.
// Each lookup returns nil (not an error) when the user has no record; the
// preference merger applies defaults for absent fragments.
type Profile interface {
	GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	GetMealPreferences(ctx context.Context, userID string) (*domain.MealPreferences, error)
	GetPlanningSettings(ctx context.Context, userID string) (*domain.PlanningSettings, error)
}
