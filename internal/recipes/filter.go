package recipes

import (
	"context"
	"fmt"
	"strings"

	"github.com/freshplate/mealplan-api/internal/domain"
	"github.com/freshplate/mealplan-api/internal/logger"
	"github.com/freshplate/mealplan-api/internal/metrics"
	"github.com/freshplate/mealplan-api/internal/repository"
)

// Filter narrows the recipe corpus down to planner candidates for one
// generation request.
type Filter struct {
	repo           repository.Recipe
	candidateLimit int
}

// NewFilter creates a new Filter. candidateLimit bounds both the primary and
// fallback queries.
func NewFilter(repo repository.Recipe, candidateLimit int) *Filter {
	return &Filter{repo: repo, candidateLimit: candidateLimit}
}

// Candidates returns the filtered candidate set for the given preferences.
//
// The strict pass keeps recipes within fractional prep/cook budgets and, when
// present, overlapping the dietary-restriction and cuisine tag lists. The
// allergy pass then drops anything whose tags contain an allergy term as a
// substring; it runs even after tag filtering since allergy tags are
// free-form. If the strict pass yields nothing, a broader pass using only the
// full prep-time budget is tried before giving up with ErrNoRecipesMatch.
func (f *Filter) Candidates(ctx context.Context, prefs domain.Preferences) ([]domain.Recipe, error) {
	log := logger.FromContext(ctx)

	primary := domain.RecipeQuery{
		MaxPrepMinutes: int(float64(prefs.CookingTimeLimit) * PrimaryPrepRatio),
		MaxCookMinutes: int(float64(prefs.CookingTimeLimit) * PrimaryCookRatio),
		Tags:           NormalizeTags(prefs.DietaryRestrictions),
		Limit:          f.candidateLimit,
	}
	log.Debug(LogMsgPrimaryFilter,
		"max_prep", primary.MaxPrepMinutes,
		"max_cook", primary.MaxCookMinutes,
		"dietary_tags", primary.Tags)

	found, err := f.repo.FindRecipes(ctx, primary)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextPrimaryQueryFailed, err)
	}

	if cuisines := NormalizeTags(prefs.CuisinePreferences); len(cuisines) > 0 {
		found = keepTagOverlap(found, cuisines)
	}
	candidates := f.allergyPass(ctx, found, prefs.Allergies)

	if len(candidates) == 0 {
		log.Info(LogMsgFallbackFilter, "time_limit", prefs.CookingTimeLimit)
		metrics.FilterFallbacks.Inc()

		fallback := domain.RecipeQuery{
			MaxPrepMinutes: prefs.CookingTimeLimit,
			Limit:          f.candidateLimit,
		}
		found, err = f.repo.FindRecipes(ctx, fallback)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFallbackQueryFailed, err)
		}
		candidates = f.allergyPass(ctx, found, prefs.Allergies)
	}

	if len(candidates) == 0 {
		return nil, domain.ErrNoRecipesMatch
	}

	log.Debug(LogMsgCandidatesFound, "count", len(candidates))
	return candidates, nil
}

// allergyPass drops any recipe whose tags contain an allergy term as a
// case-insensitive substring. Deliberately permissive: a tag like
// "peanut-sauce" is dropped for allergy "peanut" even without an exact tag.
func (f *Filter) allergyPass(ctx context.Context, found []domain.Recipe, allergies []string) []domain.Recipe {
	if len(allergies) == 0 {
		return found
	}

	log := logger.FromContext(ctx)
	kept := make([]domain.Recipe, 0, len(found))
	for _, recipe := range found {
		if tag, hit := matchAllergy(recipe.Tags, allergies); hit {
			log.Debug(LogMsgAllergyExclusion, "recipe", recipe.Name, "tag", tag)
			continue
		}
		kept = append(kept, recipe)
	}
	return kept
}

// matchAllergy reports the first tag containing any allergy term
func matchAllergy(tags, allergies []string) (string, bool) {
	for _, tag := range tags {
		lowered := strings.ToLower(tag)
		for _, allergy := range allergies {
			term := strings.ToLower(strings.TrimSpace(allergy))
			if term == "" {
				continue
			}
			if strings.Contains(lowered, term) {
				return tag, true
			}
		}
	}
	return "", false
}

// keepTagOverlap keeps recipes whose tag set overlaps terms (exact match
// after normalization)
func keepTagOverlap(found []domain.Recipe, terms []string) []domain.Recipe {
	kept := make([]domain.Recipe, 0, len(found))
	for _, recipe := range found {
		if TagsOverlap(recipe.Tags, terms) {
			kept = append(kept, recipe)
		}
	}
	return kept
}

// TagsOverlap reports whether any normalized tag equals any of the terms.
// Terms are assumed already normalized.
func TagsOverlap(tags, terms []string) bool {
	for _, tag := range tags {
		normalized := NormalizeTag(tag)
		for _, term := range terms {
			if normalized == term {
				return true
			}
		}
	}
	return false
}

// NormalizeTag lowercases a tag and replaces spaces with hyphens, matching
// how corpus tags are stored ("Gluten Free" -> "gluten-free")
func NormalizeTag(tag string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), " ", "-")
}

// NormalizeTags normalizes a list, dropping empties
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if n := NormalizeTag(tag); n != "" {
			normalized = append(normalized, n)
		}
	}
	return normalized
}
