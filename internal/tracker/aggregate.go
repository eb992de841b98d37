package tracker

import "github.com/julianstephens/cyra/internal/models"

// Totals folds one day's entry lists into macro and burn totals. It is a
// pure sum: missing lists produce zero totals.
func Totals(nutrition []models.NutritionEntry, workouts []models.WorkoutEntry) models.DailyTotals {
	var totals models.DailyTotals
	for _, e := range nutrition {
		totals.Calories += e.Calories
		totals.ProteinG += e.ProteinG
		totals.CarbsG += e.CarbsG
		totals.FatG += e.FatG
		totals.FiberG += e.FiberG
	}
	for _, w := range workouts {
		totals.CaloriesBurned += w.CaloriesBurned
	}
	return totals
}
