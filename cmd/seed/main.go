// Command seed loads a JSON recipe corpus into the database.
//
// Usage:
//
//	go run ./cmd/seed -file corpus.json
//
// The file holds an array of recipe objects matching the API's recipe JSON
// shape. Existing rows are left alone; every entry in the file is inserted.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/freshplate/mealplan-api/internal/config"
	"github.com/freshplate/mealplan-api/internal/database"
	"github.com/freshplate/mealplan-api/internal/database/postgres"
	"github.com/freshplate/mealplan-api/internal/domain"
	"github.com/freshplate/mealplan-api/internal/recipes"
)

func main() {
	filePath := flag.String("file", "corpus.json", "path to the recipe corpus JSON file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	corpus, err := loadCorpus(*filePath)
	if err != nil {
		slog.Error("Failed to load corpus", "file", *filePath, "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, 30*time.Minute, time.Hour)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewRecipeRepository(pool)
	ctx := context.Background()

	inserted := 0
	for i := range corpus {
		recipe := &corpus[i]
		recipe.Tags = recipes.NormalizeTags(recipe.Tags)
		if err := repo.InsertRecipe(ctx, recipe); err != nil {
			slog.Error("Failed to insert recipe", "name", recipe.Name, "error", err)
			continue
		}
		inserted++
	}

	slog.Info("Corpus seeded", "file", *filePath, "total", len(corpus), "inserted", inserted)
}

func loadCorpus(path string) ([]domain.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var corpus []domain.Recipe
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, err
	}
	return corpus, nil
}
