package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freshplate/mealplan-api/internal/domain"
)

func TestScoreRecipe(t *testing.T) {
	tests := []struct {
		name     string
		recipe   domain.Recipe
		target   float64
		cuisines []string
		expected float64
	}{
		{
			name: "perfect calorie fit, easy, instant",
			recipe: domain.Recipe{
				Difficulty: domain.DifficultyEasy,
				Nutrition:  domain.Nutrition{Calories: 500},
			},
			target:   500,
			expected: 1.0*CalorieWeight + EasyScore*DifficultyWeight + 1.0*TimeWeight,
		},
		{
			name: "halved calorie fit",
			recipe: domain.Recipe{
				Difficulty: domain.DifficultyEasy,
				Nutrition:  domain.Nutrition{Calories: 250},
			},
			target:   500,
			expected: 0.5*CalorieWeight + EasyScore*DifficultyWeight + 1.0*TimeWeight,
		},
		{
			name: "hard recipe at the time ceiling",
			recipe: domain.Recipe{
				PrepTimeMinutes: 40,
				CookTimeMinutes: 80,
				Difficulty:      domain.DifficultyHard,
				Nutrition:       domain.Nutrition{Calories: 500},
			},
			target:   500,
			expected: 1.0*CalorieWeight + HardScore*DifficultyWeight + 0.0*TimeWeight,
		},
		{
			name: "unknown difficulty falls back to medium",
			recipe: domain.Recipe{
				Difficulty: domain.Difficulty("expert"),
				Nutrition:  domain.Nutrition{Calories: 500},
			},
			target:   500,
			expected: 1.0*CalorieWeight + MediumScore*DifficultyWeight + 1.0*TimeWeight,
		},
		{
			name: "cuisine match multiplies the weighted score",
			recipe: domain.Recipe{
				Difficulty: domain.DifficultyEasy,
				Tags:       []string{"italian"},
				Nutrition:  domain.Nutrition{Calories: 500},
			},
			target:   500,
			cuisines: []string{"Italian"},
			expected: (1.0*CalorieWeight + EasyScore*DifficultyWeight + 1.0*TimeWeight) * CuisineBonus,
		},
		{
			name: "cuisine matches as a tag substring",
			recipe: domain.Recipe{
				Difficulty: domain.DifficultyEasy,
				Tags:       []string{"italian-american"},
				Nutrition:  domain.Nutrition{Calories: 500},
			},
			target:   500,
			cuisines: []string{"italian"},
			expected: (1.0*CalorieWeight + EasyScore*DifficultyWeight + 1.0*TimeWeight) * CuisineBonus,
		},
		{
			name: "wildly off-target calories push the score negative",
			recipe: domain.Recipe{
				Difficulty:      domain.DifficultyHard,
				PrepTimeMinutes: 60,
				CookTimeMinutes: 60,
				Nutrition:       domain.Nutrition{Calories: 2000},
			},
			target:   200,
			expected: -8.0*CalorieWeight + HardScore*DifficultyWeight + 0.0*TimeWeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreRecipe(tt.recipe, tt.target, tt.cuisines)
			assert.InDelta(t, tt.expected, got, 0.0001)
		})
	}
}

func TestSuitableForSlot(t *testing.T) {
	tests := []struct {
		name     string
		recipe   domain.Recipe
		mealType domain.MealType
		want     bool
	}{
		{
			name:     "exact meal-type tag",
			recipe:   domain.Recipe{Tags: []string{"breakfast"}},
			mealType: domain.MealTypeBreakfast,
			want:     true,
		},
		{
			name:     "meal-type tag is normalized before comparing",
			recipe:   domain.Recipe{Tags: []string{"  Breakfast "}},
			mealType: domain.MealTypeBreakfast,
			want:     true,
		},
		{
			name:     "any-meal tag fits every slot",
			recipe:   domain.Recipe{Tags: []string{"any-meal"}},
			mealType: domain.MealTypeSnack,
			want:     true,
		},
		{
			name:     "breakfast by name",
			recipe:   domain.Recipe{Name: "Big Breakfast Burrito"},
			mealType: domain.MealTypeBreakfast,
			want:     true,
		},
		{
			name:     "main course fits lunch",
			recipe:   domain.Recipe{Tags: []string{"main-course"}},
			mealType: domain.MealTypeLunch,
			want:     true,
		},
		{
			name:     "main course fits dinner",
			recipe:   domain.Recipe{Tags: []string{"main-course"}},
			mealType: domain.MealTypeDinner,
			want:     true,
		},
		{
			name:     "light tag fits snack",
			recipe:   domain.Recipe{Tags: []string{"light"}},
			mealType: domain.MealTypeSnack,
			want:     true,
		},
		{
			name:     "main course does not fit breakfast",
			recipe:   domain.Recipe{Name: "Lasagna", Tags: []string{"main-course"}},
			mealType: domain.MealTypeBreakfast,
			want:     false,
		},
		{
			name:     "untagged recipe fits nothing",
			recipe:   domain.Recipe{Name: "Mystery Dish"},
			mealType: domain.MealTypeDinner,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, suitableForSlot(tt.recipe, tt.mealType))
		})
	}
}

func TestCuisineBonus(t *testing.T) {
	recipe := domain.Recipe{Tags: []string{"Mexican", "spicy"}}

	assert.Equal(t, 1.0, cuisineBonus(recipe, nil))
	assert.Equal(t, 1.0, cuisineBonus(recipe, []string{"japanese"}))
	assert.Equal(t, CuisineBonus, cuisineBonus(recipe, []string{"mexican"}))
	assert.Equal(t, CuisineBonus, cuisineBonus(recipe, []string{"japanese", "Mexican"}))
	assert.Equal(t, 1.0, cuisineBonus(domain.Recipe{}, []string{"mexican"}))
}
