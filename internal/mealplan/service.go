package mealplan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/freshplate/mealplan-api/internal/domain"
	"github.com/freshplate/mealplan-api/internal/logger"
	"github.com/freshplate/mealplan-api/internal/metrics"
	"github.com/freshplate/mealplan-api/internal/repository"
)

// Service defines the interface for meal plan operations
type Service interface {
	GenerateWeeklyPlan(ctx context.Context, userID, startDate string, overrides *domain.PreferenceOverrides) (*domain.GenerationResult, error)
	GetActivePlan(ctx context.Context, userID string) (*domain.WeeklyMealPlan, error)
}

// PreferenceSource resolves a user's merged preferences for one request
type PreferenceSource interface {
	LoadAndMerge(ctx context.Context, userID string, overrides *domain.PreferenceOverrides) (domain.Preferences, error)
}

// CandidateSource narrows the corpus to planner candidates
type CandidateSource interface {
	Candidates(ctx context.Context, prefs domain.Preferences) ([]domain.Recipe, error)
}

type service struct {
	prefSource PreferenceSource
	candidates CandidateSource
	planRepo   repository.MealPlan
	builder    *Builder
}

// NewService creates a new meal plan service. seed feeds the builder's random
// source; pass a fixed value in tests for deterministic plans.
func NewService(prefSource PreferenceSource, candidates CandidateSource, planRepo repository.MealPlan, seed int64, topPicks int) Service {
	return &service{
		prefSource: prefSource,
		candidates: candidates,
		planRepo:   planRepo,
		builder:    NewBuilder(seed, topPicks),
	}
}

// GenerateWeeklyPlan runs the three stages in sequence: merge preferences,
// filter the corpus, build and persist the plan. Day-level persistence
// failures are collected on the result instead of aborting generation.
func (s *service) GenerateWeeklyPlan(ctx context.Context, userID, startDate string, overrides *domain.PreferenceOverrides) (*domain.GenerationResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGenerateCalled, "userID", userID, "startDate", startDate)
	started := time.Now()

	if userID == "" || startDate == "" {
		metrics.GenerationFailures.WithLabelValues(metrics.ReasonInput).Inc()
		return nil, fmt.Errorf("%w: userID and startDate are required", domain.ErrInvalidInput)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		metrics.GenerationFailures.WithLabelValues(metrics.ReasonInput).Inc()
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrContextInvalidUserID, userID)
	}

	start, err := time.Parse(DateFormat, startDate)
	if err != nil {
		metrics.GenerationFailures.WithLabelValues(metrics.ReasonInput).Inc()
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrContextInvalidStartDate, startDate)
	}

	prefs, err := s.prefSource.LoadAndMerge(ctx, userID, overrides)
	if err != nil {
		metrics.GenerationFailures.WithLabelValues(metrics.ReasonInternal).Inc()
		return nil, err
	}

	candidates, err := s.candidates.Candidates(ctx, prefs)
	if err != nil {
		reason := metrics.ReasonInternal
		if errors.Is(err, domain.ErrNoRecipesMatch) {
			reason = metrics.ReasonNoMatch
		}
		metrics.GenerationFailures.WithLabelValues(reason).Inc()
		return nil, err
	}

	plan := s.builder.Build(ctx, candidates, prefs, userUUID, start)
	log.Info(LogMsgPlanBuilt, "planID", plan.ID, "days", len(plan.DailyPlans), "candidates", len(candidates))

	if err := s.planRepo.CreatePlan(ctx, plan); err != nil {
		metrics.GenerationFailures.WithLabelValues(metrics.ReasonPersistence).Inc()
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreatePlan, err)
	}

	result := &domain.GenerationResult{Plan: plan}
	// One day at a time, in order. A failed day is recorded and skipped so
	// later days still persist.
	for _, daily := range plan.DailyPlans {
		if len(daily.Meals) == 0 {
			continue
		}
		if err := s.planRepo.InsertMeals(ctx, daily.Meals); err != nil {
			log.Error(LogMsgDayPersistFailed, "date", daily.Date.Format(DateFormat), "error", err)
			metrics.DayPersistFailures.Inc()
			result.FailedDays = append(result.FailedDays, domain.DayPersistenceFailure{
				Date:  daily.Date,
				Error: err.Error(),
			})
		}
	}

	metrics.PlansGenerated.Inc()
	metrics.GenerationDuration.Observe(time.Since(started).Seconds())
	log.Info(LogMsgPlanPersisted, "planID", plan.ID, "failed_days", len(result.FailedDays))

	return result, nil
}

// GetActivePlan returns the user's current active plan
func (s *service) GetActivePlan(ctx context.Context, userID string) (*domain.WeeklyMealPlan, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", domain.ErrInvalidInput)
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrContextInvalidUserID, userID)
	}

	plan, err := s.planRepo.GetActivePlan(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrPlanNotFound
	}
	return plan, nil
}
