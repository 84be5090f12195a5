package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freshplate/mealplan-api/internal/config"
	"github.com/freshplate/mealplan-api/internal/database"
	"github.com/freshplate/mealplan-api/internal/database/postgres"
	"github.com/freshplate/mealplan-api/internal/mealplan"
	"github.com/freshplate/mealplan-api/internal/preference"
	"github.com/freshplate/mealplan-api/internal/recipes"
	"github.com/freshplate/mealplan-api/internal/server"
)

const (
	poolMaxIdle     = 30 * time.Minute
	poolMaxLife     = time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, poolMaxIdle, poolMaxLife)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Repositories
	profileRepo := postgres.NewProfileRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	planRepo := postgres.NewMealPlanRepository(pool)

	cachingRepo, err := recipes.NewCachingRepository(recipeRepo, cfg.RecipeCacheSize)
	if err != nil {
		slog.Error("Recipe cache setup failed", "error", err)
		os.Exit(1)
	}

	// Generation pipeline
	loader := preference.NewLoader(profileRepo)
	filter := recipes.NewFilter(cachingRepo, cfg.CandidateLimit)
	planService := mealplan.NewService(loader, filter, planRepo, time.Now().UnixNano(), cfg.TopPicks)

	srv := server.NewServer(cfg, pool, planService, loader, filter, cachingRepo)

	// Run the server until interrupted
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(ctx); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}

	slog.Info("Server stopped")
}
