package recipes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/freshplate/mealplan-api/internal/domain"
)

func TestCachingRepository(t *testing.T) {
	query := domain.RecipeQuery{MaxPrepMinutes: 30, Limit: 50}

	t.Run("second identical query hits the cache", func(t *testing.T) {
		inner := new(MockRepository)
		inner.On("FindRecipes", mock.Anything, query).Return([]domain.Recipe{makeRecipe("toast", "breakfast")}, nil).Once()

		cached, err := NewCachingRepository(inner, 8)
		require.NoError(t, err)

		first, err := cached.FindRecipes(context.Background(), query)
		require.NoError(t, err)
		second, err := cached.FindRecipes(context.Background(), query)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		inner.AssertNumberOfCalls(t, "FindRecipes", 1)
	})

	t.Run("different queries miss independently", func(t *testing.T) {
		inner := new(MockRepository)
		inner.On("FindRecipes", mock.Anything, mock.Anything).Return([]domain.Recipe{}, nil)

		cached, err := NewCachingRepository(inner, 8)
		require.NoError(t, err)

		_, _ = cached.FindRecipes(context.Background(), query)
		other := query
		other.Tags = []string{"vegan"}
		_, _ = cached.FindRecipes(context.Background(), other)

		inner.AssertNumberOfCalls(t, "FindRecipes", 2)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		inner := new(MockRepository)
		inner.On("FindRecipes", mock.Anything, query).Return(nil, assert.AnError).Once()
		inner.On("FindRecipes", mock.Anything, query).Return([]domain.Recipe{}, nil).Once()

		cached, err := NewCachingRepository(inner, 8)
		require.NoError(t, err)

		_, err = cached.FindRecipes(context.Background(), query)
		assert.Error(t, err)
		_, err = cached.FindRecipes(context.Background(), query)
		assert.NoError(t, err)
	})

	t.Run("insert purges cached queries", func(t *testing.T) {
		inner := new(MockRepository)
		inner.On("FindRecipes", mock.Anything, query).Return([]domain.Recipe{}, nil).Twice()
		inner.On("InsertRecipe", mock.Anything, mock.Anything).Return(nil)

		cached, err := NewCachingRepository(inner, 8)
		require.NoError(t, err)

		_, _ = cached.FindRecipes(context.Background(), query)
		recipe := makeRecipe("new dish", "dinner")
		require.NoError(t, cached.InsertRecipe(context.Background(), &recipe))
		_, _ = cached.FindRecipes(context.Background(), query)

		inner.AssertNumberOfCalls(t, "FindRecipes", 2)
	})
}
