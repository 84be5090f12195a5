package mealplan

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/freshplate/mealplan-api/internal/domain"
)

// MockPreferenceSource
type MockPreferenceSource struct {
	mock.Mock
}

func (m *MockPreferenceSource) LoadAndMerge(ctx context.Context, userID string, overrides *domain.PreferenceOverrides) (domain.Preferences, error) {
	args := m.Called(ctx, userID, overrides)
	return args.Get(0).(domain.Preferences), args.Error(1)
}

// MockCandidateSource
type MockCandidateSource struct {
	mock.Mock
}

func (m *MockCandidateSource) Candidates(ctx context.Context, prefs domain.Preferences) ([]domain.Recipe, error) {
	args := m.Called(ctx, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

// MockPlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) CreatePlan(ctx context.Context, plan *domain.WeeklyMealPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) InsertMeals(ctx context.Context, meals []domain.Meal) error {
	args := m.Called(ctx, meals)
	return args.Error(0)
}

func (m *MockPlanRepository) GetActivePlan(ctx context.Context, userID uuid.UUID) (*domain.WeeklyMealPlan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyMealPlan), args.Error(1)
}

func (m *MockPlanRepository) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	args := m.Called(ctx, planID)
	return args.Error(0)
}
