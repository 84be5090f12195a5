package preference

import (
	"context"
	"fmt"
	"sync"

	"github.com/freshplate/mealplan-api/internal/domain"
	"github.com/freshplate/mealplan-api/internal/logger"
	"github.com/freshplate/mealplan-api/internal/repository"
)

// Loader fetches the three preference-source records for a user. The reads
// are independent, so they run concurrently and are joined before merging.
type Loader struct {
	repo repository.Profile
}

// NewLoader creates a new Loader
func NewLoader(repo repository.Profile) *Loader {
	return &Loader{repo: repo}
}

// Sources holds the three fragments a merge works from. Any field may be nil
// when the user has never saved that record.
type Sources struct {
	Profile  *domain.UserProfile
	Prefs    *domain.MealPreferences
	Settings *domain.PlanningSettings
}

// Load fetches all three fragments concurrently. A missing record is not an
// error; a failed lookup is.
func (l *Loader) Load(ctx context.Context, userID string) (*Sources, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgLoadingSources, "userID", userID)

	var (
		wg          sync.WaitGroup
		sources     Sources
		profileErr  error
		prefsErr    error
		settingsErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		sources.Profile, profileErr = l.repo.GetUserProfile(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		sources.Prefs, prefsErr = l.repo.GetMealPreferences(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		sources.Settings, settingsErr = l.repo.GetPlanningSettings(ctx, userID)
	}()
	wg.Wait()

	if profileErr != nil {
		log.Error(LogMsgSourceLookupFailed, "source", "profile", "error", profileErr)
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadProfile, profileErr)
	}
	if prefsErr != nil {
		log.Error(LogMsgSourceLookupFailed, "source", "meal_preferences", "error", prefsErr)
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadPrefs, prefsErr)
	}
	if settingsErr != nil {
		log.Error(LogMsgSourceLookupFailed, "source", "planning_settings", "error", settingsErr)
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadSettings, settingsErr)
	}

	return &sources, nil
}

// LoadAndMerge is the convenience path the planner uses: fetch, then merge
// with the request overrides.
func (l *Loader) LoadAndMerge(ctx context.Context, userID string, overrides *domain.PreferenceOverrides) (domain.Preferences, error) {
	sources, err := l.Load(ctx, userID)
	if err != nil {
		return domain.Preferences{}, err
	}

	prefs := Merge(sources.Profile, sources.Prefs, sources.Settings, overrides)
	logger.FromContext(ctx).Debug(LogMsgPreferencesMerged,
		"calorie_target", prefs.CalorieTarget,
		"time_limit", prefs.CookingTimeLimit,
		"include_snacks", prefs.IncludeSnacks)
	return prefs, nil
}
