package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freshplate/mealplan-api/internal/domain"
	"github.com/freshplate/mealplan-api/internal/repository"
)

type recipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new PostgreSQL recipe repository
func NewRecipeRepository(db *pgxpool.Pool) repository.Recipe {
	return &recipeRepository{db: db}
}

const recipeColumns = `recipe_id, name, prep_time_minutes, cook_time_minutes, servings, difficulty, tags,
		calories, protein_g, carbs_g, fat_g, fiber_g, sugar_g, sodium_mg, created_at`

// FindRecipes returns recipes matching the query. Zero-valued filters are
// skipped; tag matching uses array overlap.
func (r *recipeRepository) FindRecipes(ctx context.Context, query domain.RecipeQuery) ([]domain.Recipe, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT ` + recipeColumns + `
		FROM recipes
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if query.MaxPrepMinutes > 0 {
		fmt.Fprintf(&queryBuilder, " AND prep_time_minutes <= $%d", argNum)
		args = append(args, query.MaxPrepMinutes)
		argNum++
	}

	if query.MaxCookMinutes > 0 {
		fmt.Fprintf(&queryBuilder, " AND cook_time_minutes <= $%d", argNum)
		args = append(args, query.MaxCookMinutes)
		argNum++
	}

	if len(query.Tags) > 0 {
		fmt.Fprintf(&queryBuilder, " AND tags && $%d", argNum)
		args = append(args, query.Tags)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC, recipe_id")

	if query.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, query.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFindRecipes, err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// GetRecipeByID returns one recipe, or nil when it does not exist
func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes
		WHERE recipe_id = $1
	`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxGetRecipe, err)
	}
	defer rows.Close()

	recipes, err := scanRecipes(rows)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, nil
	}
	return &recipes[0], nil
}

// InsertRecipe stores a corpus entry. A zero ID gets a generated one.
func (r *recipeRepository) InsertRecipe(ctx context.Context, recipe *domain.Recipe) error {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}

	query := `
		INSERT INTO recipes (recipe_id, name, prep_time_minutes, cook_time_minutes, servings, difficulty, tags,
			calories, protein_g, carbs_g, fat_g, fiber_g, sugar_g, sodium_mg)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		recipe.ID,
		recipe.Name,
		recipe.PrepTimeMinutes,
		recipe.CookTimeMinutes,
		recipe.Servings,
		recipe.Difficulty,
		recipe.Tags,
		recipe.Nutrition.Calories,
		recipe.Nutrition.Protein,
		recipe.Nutrition.Carbs,
		recipe.Nutrition.Fat,
		recipe.Nutrition.Fiber,
		recipe.Nutrition.Sugar,
		recipe.Nutrition.Sodium,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrCtxInsertRecipe, err)
	}
	return nil
}

func scanRecipes(rows pgx.Rows) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	for rows.Next() {
		var recipe domain.Recipe
		err := rows.Scan(
			&recipe.ID,
			&recipe.Name,
			&recipe.PrepTimeMinutes,
			&recipe.CookTimeMinutes,
			&recipe.Servings,
			&recipe.Difficulty,
			&recipe.Tags,
			&recipe.Nutrition.Calories,
			&recipe.Nutrition.Protein,
			&recipe.Nutrition.Carbs,
			&recipe.Nutrition.Fat,
			&recipe.Nutrition.Fiber,
			&recipe.Nutrition.Sugar,
			&recipe.Nutrition.Sodium,
			&recipe.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCtxScanRecipeRow, err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFindRecipes, err)
	}
	return recipes, nil
}
