package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/freshplate/mealplan-api/internal/domain"
)

// MockMealPlanService mocks mealplan.Service
type MockMealPlanService struct {
	mock.Mock
}

func (m *MockMealPlanService) GenerateWeeklyPlan(ctx context.Context, userID, startDate string, overrides *domain.PreferenceOverrides) (*domain.GenerationResult, error) {
	args := m.Called(ctx, userID, startDate, overrides)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GenerationResult), args.Error(1)
}

func (m *MockMealPlanService) GetActivePlan(ctx context.Context, userID string) (*domain.WeeklyMealPlan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyMealPlan), args.Error(1)
}

// MockPreferenceSource mocks mealplan.PreferenceSource
type MockPreferenceSource struct {
	mock.Mock
}

func (m *MockPreferenceSource) LoadAndMerge(ctx context.Context, userID string, overrides *domain.PreferenceOverrides) (domain.Preferences, error) {
	args := m.Called(ctx, userID, overrides)
	return args.Get(0).(domain.Preferences), args.Error(1)
}

// MockCandidateSource mocks mealplan.CandidateSource
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

// MockRecipeSource mocks RecipeSource
type MockRecipeSource struct {
	mock.Mock
}

func (m *MockRecipeSource) GetRecipeByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
