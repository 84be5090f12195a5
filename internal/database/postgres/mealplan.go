package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freshplate/mealplan-api/internal/domain"
	"github.com/freshplate/mealplan-api/internal/logger"
	"github.com/freshplate/mealplan-api/internal/repository"
)

type mealPlanRepository struct {
	db *pgxpool.Pool
}

// NewMealPlanRepository creates a new PostgreSQL meal plan repository
func NewMealPlanRepository(db *pgxpool.Pool) repository.MealPlan {
	return &mealPlanRepository{db: db}
}

// CreatePlan inserts the plan record and deactivates any prior active plan
// for the same user in one transaction, so the one-active-plan invariant
// holds at every commit point.
func (r *mealPlanRepository) CreatePlan(ctx context.Context, plan *domain.WeeklyMealPlan) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrCtxBeginPlanTx, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.FromContext(ctx).Error(LogMsgFailedToRollbackTx, "error", err)
		}
	}()

	deactivate := `
		UPDATE meal_plans
		SET is_active = FALSE, updated_at = NOW()
		WHERE user_id = $1 AND is_active
	`
	if _, err := tx.Exec(ctx, deactivate, plan.UserID); err != nil {
		return fmt.Errorf("%s: %w", ErrCtxDeactivatePriorPlan, err)
	}

	insert := `
		INSERT INTO meal_plans (plan_id, user_id, name, start_date, end_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.Exec(ctx, insert,
		plan.ID,
		plan.UserID,
		plan.Name,
		plan.StartDate,
		plan.EndDate,
		plan.IsActive,
		plan.CreatedAt,
		plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrCtxInsertPlan, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrCtxCommitPlanTx, err)
	}
	return nil
}

// InsertMeals persists one day's meal batch atomically
func (r *mealPlanRepository) InsertMeals(ctx context.Context, meals []domain.Meal) error {
	if len(meals) == 0 {
		return nil
	}

	query := `
		INSERT INTO meals (meal_id, plan_id, recipe_id, meal_type, scheduled_date, scheduled_time, servings, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	batch := &pgx.Batch{}
	for _, meal := range meals {
		batch.Queue(query,
			meal.ID,
			meal.PlanID,
			meal.RecipeID,
			meal.MealType,
			meal.ScheduledDate,
			meal.ScheduledTime,
			meal.Servings,
			meal.Completed,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range meals {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("%s: %w", ErrCtxInsertMeals, err)
		}
	}
	return nil
}

// GetActivePlan returns the user's active plan with its daily plans rebuilt
// from the meals table, or nil when the user has no active plan.
func (r *mealPlanRepository) GetActivePlan(ctx context.Context, userID uuid.UUID) (*domain.WeeklyMealPlan, error) {
	planQuery := `
		SELECT plan_id, user_id, name, start_date, end_date, is_active, created_at, updated_at
		FROM meal_plans
		WHERE user_id = $1 AND is_active
	`

	var plan domain.WeeklyMealPlan
	err := r.db.QueryRow(ctx, planQuery, userID).Scan(
		&plan.ID,
		&plan.UserID,
		&plan.Name,
		&plan.StartDate,
		&plan.EndDate,
		&plan.IsActive,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrCtxGetActivePlan, err)
	}
	plan.GroceryList = []string{}

	dailyPlans, err := r.loadDailyPlans(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	plan.DailyPlans = dailyPlans

	return &plan, nil
}

// loadDailyPlans groups a plan's meals by date in scheduled order, summing
// each day's nutrition from the joined recipes.
func (r *mealPlanRepository) loadDailyPlans(ctx context.Context, planID uuid.UUID) ([]domain.DailyMealPlan, error) {
	query := `
		SELECT m.meal_id, m.plan_id, m.recipe_id, r.name, m.meal_type, m.scheduled_date, m.scheduled_time,
			m.servings, m.completed,
			r.calories, r.protein_g, r.carbs_g, r.fat_g, r.fiber_g, r.sugar_g, r.sodium_mg
		FROM meals m
		JOIN recipes r ON r.recipe_id = m.recipe_id
		WHERE m.plan_id = $1
		ORDER BY m.scheduled_date, m.scheduled_time
	`

	rows, err := r.db.Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxGetPlanMeals, err)
	}
	defer rows.Close()

	var dailyPlans []domain.DailyMealPlan
	byDate := map[time.Time]int{}

	for rows.Next() {
		var meal domain.Meal
		var nutrition domain.Nutrition
		err := rows.Scan(
			&meal.ID,
			&meal.PlanID,
			&meal.RecipeID,
			&meal.RecipeName,
			&meal.MealType,
			&meal.ScheduledDate,
			&meal.ScheduledTime,
			&meal.Servings,
			&meal.Completed,
			&nutrition.Calories,
			&nutrition.Protein,
			&nutrition.Carbs,
			&nutrition.Fat,
			&nutrition.Fiber,
			&nutrition.Sugar,
			&nutrition.Sodium,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCtxGetPlanMeals, err)
		}

		idx, ok := byDate[meal.ScheduledDate]
		if !ok {
			idx = len(dailyPlans)
			byDate[meal.ScheduledDate] = idx
			dailyPlans = append(dailyPlans, domain.DailyMealPlan{Date: meal.ScheduledDate, Meals: []domain.Meal{}})
		}

		dailyPlans[idx].Meals = append(dailyPlans[idx].Meals, meal)
		dailyPlans[idx].Nutrition = dailyPlans[idx].Nutrition.Add(nutrition)
		dailyPlans[idx].TotalCalories = dailyPlans[idx].Nutrition.Calories
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxGetPlanMeals, err)
	}

	return dailyPlans, nil
}

// DeletePlan removes a plan; its meals cascade
func (r *mealPlanRepository) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM meal_plans WHERE plan_id = $1`, planID); err != nil {
		return fmt.Errorf("%s: %w", ErrCtxDeletePlan, err)
	}
	return nil
}
