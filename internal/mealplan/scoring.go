package mealplan

import (
	"math"
	"strings"

	"github.com/freshplate/mealplan-api/internal/domain"
	"github.com/freshplate/mealplan-api/internal/recipes"
)

// scoreRecipe rates a candidate against a slot's calorie target.
//
// The calorie component is deliberately unclamped: a recipe wildly off target
// goes negative and sinks in the ranking, which is all the ordering needs.
func scoreRecipe(recipe domain.Recipe, slotTargetCalories float64, cuisinePreferences []string) float64 {
	calorieScore := 1.0
	if slotTargetCalories > 0 {
		calorieScore = 1 - math.Abs(recipe.Nutrition.Calories-slotTargetCalories)/slotTargetCalories
	}

	weighted := calorieScore*CalorieWeight +
		difficultyScore(recipe.Difficulty)*DifficultyWeight +
		timeScore(recipe)*TimeWeight

	return weighted * cuisineBonus(recipe, cuisinePreferences)
}

func difficultyScore(difficulty domain.Difficulty) float64 {
	switch difficulty {
	case domain.DifficultyEasy:
		return EasyScore
	case domain.DifficultyHard:
		return HardScore
	default:
		return MediumScore
	}
}

func timeScore(recipe domain.Recipe) float64 {
	return 1 - float64(recipe.TotalTimeMinutes())/TimeScoreCeilingMinutes
}

// cuisineBonus returns CuisineBonus when any tag contains a preferred cuisine
// as a substring, 1.0 otherwise. Substring rather than exact match so
// "italian-american" still counts for "italian".
func cuisineBonus(recipe domain.Recipe, cuisinePreferences []string) float64 {
	if len(cuisinePreferences) == 0 {
		return 1.0
	}
	for _, tag := range recipe.Tags {
		lowered := strings.ToLower(tag)
		for _, cuisine := range cuisinePreferences {
			term := recipes.NormalizeTag(cuisine)
			if term != "" && strings.Contains(lowered, term) {
				return CuisineBonus
			}
		}
	}
	return 1.0
}

// suitableForSlot decides whether a recipe fits a meal type. A recipe
// qualifies via an exact meal-type tag, the any-meal tag, or a per-meal-type
// heuristic over related tags and the recipe name.
func suitableForSlot(recipe domain.Recipe, mealType domain.MealType) bool {
	if hasTag(recipe, string(mealType)) || hasTag(recipe, TagAnyMeal) {
		return true
	}

	switch mealType {
	case domain.MealTypeBreakfast:
		return strings.Contains(strings.ToLower(recipe.Name), "breakfast")
	case domain.MealTypeLunch, domain.MealTypeDinner:
		return hasTag(recipe, "main-course")
	case domain.MealTypeSnack:
		return hasTag(recipe, "light")
	default:
		return false
	}
}

func hasTag(recipe domain.Recipe, tag string) bool {
	for _, t := range recipe.Tags {
		if recipes.NormalizeTag(t) == tag {
			return true
		}
	}
	return false
}
