package handler

import (
	"net/http"

	"github.com/freshplate/mealplan-api/internal/domain"
	"github.com/freshplate/mealplan-api/internal/logger"
	"github.com/freshplate/mealplan-api/internal/mealplan"
)

// GeneratePlanRequest is the body for POST /api/v1/mealplan/generate
type GeneratePlanRequest struct {
	UserID              string                      `json:"user_id" validate:"required,uuid"`
	StartDate           string                      `json:"start_date" validate:"required,dateonly"`
	PreferenceOverrides *domain.PreferenceOverrides `json:"preference_overrides,omitempty"`
}

// HandleGenerateMealPlan generates and persists a weekly meal plan
func HandleGenerateMealPlan(svc mealplan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GeneratePlanRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Generate meal plan"); err != nil {
			return
		}

		log := logger.FromContext(r.Context())
		log.Info("Generating meal plan", "user_id", req.UserID, "start_date", req.StartDate)

		result, err := svc.GenerateWeeklyPlan(r.Context(), req.UserID, req.StartDate, req.PreferenceOverrides)
		if err != nil {
			respondServiceError(w, r, ErrMsgGeneratePlanFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, result)
	}
}

// HandleGetActivePlan returns the user's current active meal plan
func HandleGetActivePlan(svc mealplan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		plan, err := svc.GetActivePlan(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetActivePlanFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, plan)
	}
}
