package recipes

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/freshplate/mealplan-api/internal/domain"
	"github.com/freshplate/mealplan-api/internal/metrics"
	"github.com/freshplate/mealplan-api/internal/repository"
)

// CachingRepository wraps a recipe repository with a bounded LRU over query
// results. The corpus is effectively static between deploys, so entries are
// only evicted by size or purged on insert.
type CachingRepository struct {
	inner repository.Recipe
	cache *lru.Cache[string, []domain.Recipe]
}

// NewCachingRepository creates a caching decorator over inner. size is the
// LRU entry count.
func NewCachingRepository(inner repository.Recipe, size int) (*CachingRepository, error) {
	cache, err := lru.New[string, []domain.Recipe](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe cache: %w", err)
	}
	return &CachingRepository{inner: inner, cache: cache}, nil
}

// FindRecipes serves repeated corpus queries from the cache
func (c *CachingRepository) FindRecipes(ctx context.Context, query domain.RecipeQuery) ([]domain.Recipe, error) {
	key := queryKey(query)
	if cached, ok := c.cache.Get(key); ok {
		metrics.RecipeCacheHits.Inc()
		return cached, nil
	}
	metrics.RecipeCacheMisses.Inc()

	found, err := c.inner.FindRecipes(ctx, query)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, found)
	return found, nil
}

// GetRecipeByID delegates to the inner repository
func (c *CachingRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	return c.inner.GetRecipeByID(ctx, id)
}

// InsertRecipe writes through and purges cached query results, since any
// cached query may now be stale
func (c *CachingRepository) InsertRecipe(ctx context.Context, recipe *domain.Recipe) error {
	if err := c.inner.InsertRecipe(ctx, recipe); err != nil {
		return err
	}
	c.cache.Purge()
	return nil
}

// queryKey builds a stable fingerprint for a corpus query
func queryKey(query domain.RecipeQuery) string {
	return fmt.Sprintf("p%d|c%d|l%d|t%s",
		query.MaxPrepMinutes,
		query.MaxCookMinutes,
		query.Limit,
		strings.Join(query.Tags, ","))
}
