package mealplan

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/freshplate/mealplan-api/internal/domain"
	"github.com/freshplate/mealplan-api/internal/logger"
	"github.com/freshplate/mealplan-api/internal/metrics"
)

// Builder assembles a weekly plan from a candidate set. The seed is injected
// so tests can fix it while production keeps variety.
type Builder struct {
	mu       sync.Mutex
	seeds    *rand.Rand
	topPicks int
}

// NewBuilder creates a Builder.
//
//nolint:gosec // G404: math/rand is fine for meal variety, nothing secret here
func NewBuilder(seed int64, topPicks int) *Builder {
	if topPicks <= 0 {
		topPicks = DefaultTopPicks
	}
	return &Builder{
		seeds:    rand.New(rand.NewSource(seed)),
		topPicks: topPicks,
	}
}

// buildRand derives an independent random stream for one build. rand.Rand is
// not safe for concurrent use, so each Build gets its own generator and only
// the seed draw holds the lock.
func (b *Builder) buildRand() *rand.Rand {
	b.mu.Lock()
	seed := b.seeds.Int63()
	b.mu.Unlock()
	return rand.New(rand.NewSource(seed)) //nolint:gosec // G404: see NewBuilder
}

// usedRecipes is the week-scoped accumulator that enforces the no-repeat
// invariant. It is threaded explicitly through the day/slot loop and never
// cleared until the whole plan is built.
type usedRecipes map[uuid.UUID]struct{}

func (u usedRecipes) has(id uuid.UUID) bool {
	_, ok := u[id]
	return ok
}

func (u usedRecipes) mark(id uuid.UUID) {
	u[id] = struct{}{}
}

// Build produces the in-memory weekly plan: 7 daily plans with contiguous
// dates starting at startDate. Slots with no unused candidate left are
// skipped rather than failing the build.
func (b *Builder) Build(ctx context.Context, candidates []domain.Recipe, prefs domain.Preferences, userID uuid.UUID, startDate time.Time) *domain.WeeklyMealPlan {
	now := time.Now().UTC()
	plan := &domain.WeeklyMealPlan{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        fmt.Sprintf("Week of %s", startDate.Format("Jan 2, 2006")),
		StartDate:   startDate,
		EndDate:     startDate.AddDate(0, 0, domain.DaysPerPlan-1),
		IsActive:    true,
		DailyPlans:  make([]domain.DailyMealPlan, 0, domain.DaysPerPlan),
		GroceryList: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	slots := SlotsFor(prefs.IncludeSnacks)
	used := make(usedRecipes, len(slots)*domain.DaysPerPlan)
	rng := b.buildRand()

	for day := 0; day < domain.DaysPerPlan; day++ {
		date := startDate.AddDate(0, 0, day)
		daily := domain.DailyMealPlan{Date: date, Meals: []domain.Meal{}}

		for _, slot := range slots {
			recipe, ok := b.pickForSlot(ctx, rng, candidates, prefs, slot, used)
			if !ok {
				logger.FromContext(ctx).Warn(LogMsgSlotUnfilled, "date", date.Format(DateFormat), "meal_type", slot.Type)
				metrics.UnfilledSlots.Inc()
				continue
			}
			used.mark(recipe.ID)

			daily.Meals = append(daily.Meals, domain.Meal{
				ID:            uuid.New(),
				PlanID:        plan.ID,
				RecipeID:      recipe.ID,
				RecipeName:    recipe.Name,
				MealType:      slot.Type,
				ScheduledDate: date,
				ScheduledTime: slot.Time,
				Servings:      1,
				Completed:     false,
			})
			daily.Nutrition = daily.Nutrition.Add(recipe.Nutrition)
		}

		daily.TotalCalories = daily.Nutrition.Calories
		plan.DailyPlans = append(plan.DailyPlans, daily)
	}

	return plan
}

// pickForSlot selects a recipe for one slot. Suitable unused candidates are
// scored and one of the top few is picked at random; when nothing suitable
// remains, any unused candidate is taken; when nothing unused remains at all,
// the slot stays empty.
func (b *Builder) pickForSlot(ctx context.Context, rng *rand.Rand, candidates []domain.Recipe, prefs domain.Preferences, slot Slot, used usedRecipes) (domain.Recipe, bool) {
	slotTarget := float64(prefs.CalorieTarget) * slot.CalorieRatio

	suitable := make([]domain.Recipe, 0, len(candidates))
	unused := make([]domain.Recipe, 0, len(candidates))
	for _, candidate := range candidates {
		if used.has(candidate.ID) {
			continue
		}
		unused = append(unused, candidate)
		if suitableForSlot(candidate, slot.Type) {
			suitable = append(suitable, candidate)
		}
	}

	if len(suitable) == 0 {
		if len(unused) == 0 {
			return domain.Recipe{}, false
		}
		logger.FromContext(ctx).Debug(LogMsgSlotFallbackPick, "meal_type", slot.Type, "unused", len(unused))
		return unused[rng.Intn(len(unused))], true
	}

	scored := make([]scoredRecipe, len(suitable))
	for i, candidate := range suitable {
		scored[i] = scoredRecipe{
			recipe: candidate,
			score:  scoreRecipe(candidate, slotTarget, prefs.CuisinePreferences),
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	top := b.topPicks
	if len(scored) < top {
		top = len(scored)
	}
	return scored[rng.Intn(top)].recipe, true
}

type scoredRecipe struct {
	recipe domain.Recipe
	score  float64
}
