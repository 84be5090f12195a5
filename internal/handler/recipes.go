package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/freshplate/mealplan-api/internal/domain"
	"github.com/freshplate/mealplan-api/internal/mealplan"
)

// RecipeSource fetches single corpus entries
type RecipeSource interface {
	GetRecipeByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
}

// RecipesResponse is the candidate-preview payload
type RecipesResponse struct {
	Recipes []domain.Recipe `json:"recipes"`
	Count   int             `json:"count"`
}

// HandleGetRecipes returns the filtered candidate set for a user, which is
// the same corpus slice the planner would draw from.
func HandleGetRecipes(prefSource mealplan.PreferenceSource, candidates mealplan.CandidateSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		limit := 0
		if raw := GetOptionalQueryParam(r, "limit", ""); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				http.Error(w, ErrMsgInvalidLimit, http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		prefs, err := prefSource.LoadAndMerge(r.Context(), userID, nil)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetRecipesFailed, err)
			return
		}

		found, err := candidates.Candidates(r.Context(), prefs)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetRecipesFailed, err)
			return
		}

		if limit > 0 && len(found) > limit {
			found = found[:limit]
		}

		respondJSON(w, http.StatusOK, RecipesResponse{Recipes: found, Count: len(found)})
	}
}

// HandleGetRecipeByID returns a single corpus entry
func HandleGetRecipeByID(source RecipeSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}

		recipe, err := source.GetRecipeByID(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetRecipesFailed, err)
			return
		}
		if recipe == nil {
			respondServiceError(w, r, ErrMsgGetRecipesFailed, domain.ErrRecipeNotFound)
			return
		}

		respondJSON(w, http.StatusOK, recipe)
	}
}
