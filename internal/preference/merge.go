package preference

import (
	"slices"

	"github.com/freshplate/mealplan-api/internal/domain"
)

// Merge combines the three stored preference fragments and any request-level
// overrides into one canonical Preferences value. It is a pure function: nil
// fragments are valid and fall back to defaults.
//
// Precedence rules:
//   - list fields (restrictions, allergies, cuisines) are unions; duplicates
//     are allowed since downstream matching is overlap-based
//   - an explicit override cooking-time limit wins; otherwise the qualitative
//     preference maps to minutes, with mealPreferences beating planningSettings
//   - an explicit override calorie target wins; otherwise the target derives
//     from activity level and health goals
//   - the calorie target is always clamped to [domain.MinCalorieTarget,
//     domain.MaxCalorieTarget], overrides included
func Merge(profile *domain.UserProfile, mealPrefs *domain.MealPreferences, settings *domain.PlanningSettings, overrides *domain.PreferenceOverrides) domain.Preferences {
	prefs := domain.Preferences{
		BudgetRange:   domain.BudgetMedium,
		IncludeSnacks: includeSnacks(settings),
	}

	if profile != nil {
		prefs.DietaryRestrictions = append(prefs.DietaryRestrictions, profile.DietaryRestrictions...)
		prefs.Allergies = append(prefs.Allergies, profile.Allergies...)
	}
	if mealPrefs != nil {
		prefs.CuisinePreferences = append(prefs.CuisinePreferences, mealPrefs.CuisineTypes...)
		if mealPrefs.BudgetRange != "" {
			prefs.BudgetRange = mealPrefs.BudgetRange
		}
	}
	if settings != nil {
		prefs.CuisinePreferences = append(prefs.CuisinePreferences, settings.PreferredCuisines...)
		if mealPrefs == nil || mealPrefs.BudgetRange == "" {
			if settings.BudgetRange != "" {
				prefs.BudgetRange = settings.BudgetRange
			}
		}
	}
	if overrides != nil {
		prefs.DietaryRestrictions = append(prefs.DietaryRestrictions, overrides.DietaryRestrictions...)
		prefs.Allergies = append(prefs.Allergies, overrides.Allergies...)
		prefs.CuisinePreferences = append(prefs.CuisinePreferences, overrides.CuisinePreferences...)
		if overrides.BudgetRange != "" {
			prefs.BudgetRange = overrides.BudgetRange
		}
	}

	prefs.CookingTimeLimit = cookingTimeLimit(mealPrefs, settings, overrides)
	prefs.CalorieTarget = calorieTarget(profile, overrides)

	return prefs
}

// cookingTimeLimit resolves the conflicting cooking-time representations into
// one minute budget. An explicit numeric override wins outright; between the
// two qualitative sources, mealPreferences wins.
func cookingTimeLimit(mealPrefs *domain.MealPreferences, settings *domain.PlanningSettings, overrides *domain.PreferenceOverrides) int {
	if overrides != nil && overrides.CookingTimeLimit > 0 {
		return overrides.CookingTimeLimit
	}

	qualitative := ""
	if mealPrefs != nil && mealPrefs.CookingTimePreference != "" {
		qualitative = mealPrefs.CookingTimePreference
	} else if settings != nil && settings.CookingTimePreference != "" {
		qualitative = settings.CookingTimePreference
	}

	switch qualitative {
	case TimePreferenceQuick:
		return QuickMinutes
	case TimePreferenceModerate:
		return ModerateMinutes
	case TimePreferenceLong:
		return LongMinutes
	default:
		return DefaultTimeLimitMinutes
	}
}

// calorieTarget derives the daily kcal target. Goals are checked
// independently; in practice loss and gain goals are mutually exclusive
// inputs, so only one adjustment applies.
func calorieTarget(profile *domain.UserProfile, overrides *domain.PreferenceOverrides) int {
	if overrides != nil && overrides.CalorieTarget > 0 {
		return clampCalories(overrides.CalorieTarget)
	}

	target := DefaultCalorieBase
	var goals []string
	if profile != nil {
		goals = profile.HealthGoals
		if base, ok := calorieBaseByActivity[profile.ActivityLevel]; ok {
			target = base
		}
	}

	if slices.Contains(goals, GoalWeightLoss) {
		target -= GoalCalorieAdjustment
	}
	if slices.Contains(goals, GoalWeightGain) || slices.Contains(goals, GoalMuscleBuilding) {
		target += GoalCalorieAdjustment
	}

	return clampCalories(target)
}

func clampCalories(target int) int {
	if target < domain.MinCalorieTarget {
		return domain.MinCalorieTarget
	}
	if target > domain.MaxCalorieTarget {
		return domain.MaxCalorieTarget
	}
	return target
}

func includeSnacks(settings *domain.PlanningSettings) bool {
	return settings != nil && settings.IncludeSnacks
}
