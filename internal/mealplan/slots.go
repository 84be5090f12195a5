package mealplan

import "github.com/freshplate/mealplan-api/internal/domain"

// Slot is a (meal type, scheduled time, calorie ratio) tuple within a day
type Slot struct {
	Type         domain.MealType
	Time         string // "HH:MM"
	CalorieRatio float64
}

// The fixed daily slot table. With snacks the ratios sum to 1.10, matching
// the product's intent of treating the snack as headroom on top of the three
// main meals rather than carving it out of them.
var (
	breakfastSlot = Slot{Type: domain.MealTypeBreakfast, Time: "08:00", CalorieRatio: 0.25}
	lunchSlot     = Slot{Type: domain.MealTypeLunch, Time: "13:00", CalorieRatio: 0.35}
	dinnerSlot    = Slot{Type: domain.MealTypeDinner, Time: "19:00", CalorieRatio: 0.40}
	snackSlot     = Slot{Type: domain.MealTypeSnack, Time: "15:30", CalorieRatio: 0.10}
)

// SlotsFor returns the day's slot list in scheduling order
func SlotsFor(includeSnacks bool) []Slot {
	slots := []Slot{breakfastSlot, lunchSlot, dinnerSlot}
	if includeSnacks {
		slots = append(slots, snackSlot)
	}
	return slots
}
