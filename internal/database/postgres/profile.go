package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freshplate/mealplan-api/internal/domain"
	"github.com/freshplate/mealplan-api/internal/repository"
)

type profileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db *pgxpool.Pool) repository.Profile {
	return &profileRepository{db: db}
}

// GetUserProfile returns the user's health profile, or nil when none exists
func (r *profileRepository) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
		SELECT user_id, dietary_restrictions, allergies, health_goals, activity_level, lifestyle_factors
		FROM user_profiles
		WHERE user_id = $1
	`

	var profile domain.UserProfile
	var lifestyleJSON []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.DietaryRestrictions,
		&profile.Allergies,
		&profile.HealthGoals,
		&profile.ActivityLevel,
		&lifestyleJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrCtxGetUserProfile, err)
	}

	if len(lifestyleJSON) > 0 {
		if err := json.Unmarshal(lifestyleJSON, &profile.LifestyleFactors); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCtxGetUserProfile, err)
		}
	}
	return &profile, nil
}

// GetMealPreferences returns the user's meal preferences, or nil when none exist
func (r *profileRepository) GetMealPreferences(ctx context.Context, userID string) (*domain.MealPreferences, error) {
	query := `
		SELECT user_id, cuisine_types, cooking_time_preference, meal_complexity, budget_range
		FROM meal_preferences
		WHERE user_id = $1
	`

	var prefs domain.MealPreferences
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&prefs.UserID,
		&prefs.CuisineTypes,
		&prefs.CookingTimePreference,
		&prefs.MealComplexity,
		&prefs.BudgetRange,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrCtxGetMealPreferences, err)
	}
	return &prefs, nil
}

// GetPlanningSettings returns the user's planning settings, or nil when none exist
func (r *profileRepository) GetPlanningSettings(ctx context.Context, userID string) (*domain.PlanningSettings, error) {
	query := `
		SELECT user_id, cooking_time_preference, budget_range, preferred_cuisines, household_size, include_snacks
		FROM meal_planning_settings
		WHERE user_id = $1
	`

	var settings domain.PlanningSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.CookingTimePreference,
		&settings.BudgetRange,
		&settings.PreferredCuisines,
		&settings.HouseholdSize,
		&settings.IncludeSnacks,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrCtxGetPlanningSettings, err)
	}
	return &settings, nil
}
