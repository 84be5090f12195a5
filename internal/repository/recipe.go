package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/freshplate/mealplan-api/internal/domain"
)

// Recipe defines the interface for corpus queries required by the recipe filter
type Recipe interface {
	// FindRecipes returns recipes matching the query, bounded by query.Limit.
	// Tag matching is overlap (any tag in query.Tags), case-insensitive.
	FindRecipes(ctx context.Context, query domain.RecipeQuery) ([]domain.Recipe, error)
	GetRecipeByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	InsertRecipe(ctx context.Context, recipe *domain.Recipe) error
}
