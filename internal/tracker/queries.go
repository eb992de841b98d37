package tracker

import (
	"github.com/julianstephens/cyra/internal/cycle"
	"github.com/julianstephens/cyra/internal/metabolic"
	"github.com/julianstephens/cyra/internal/models"
)

// PhaseForDate resolves the cycle phase for any date, past or future.
func (t *Tracker) PhaseForDate(date string) models.Phase {
	return cycle.PhaseForDate(date, t.state.Cycle.Events, t.state.Cycle.AvgLength)
}

// CycleDay returns the 1-indexed projected cycle day for a date, 0 when no
// history precedes it.
func (t *Tracker) CycleDay(date string) int {
	return cycle.CycleDayFor(date, t.state.Cycle.Events, t.state.Cycle.AvgLength)
}

// NextPeriod predicts the first period start after today.
func (t *Tracker) NextPeriod() string {
	return cycle.NextPeriodAfter(t.Today(), t.state.Cycle.Events, t.state.Cycle.AvgLength)
}

// DailyTotals folds the date's nutrition and workout entries into totals.
// A date with no entries yields zero totals, never an error.
func (t *Tracker) DailyTotals(date string) models.DailyTotals {
	return Totals(t.state.Logs.Nutrition[date], t.state.Logs.Workouts[date])
}

// MetabolicEstimate computes the energy expenditure for a date using the
// weight in effect on that date and the resolved phase.
func (t *Tracker) MetabolicEstimate(date string) metabolic.Estimate {
	return metabolic.ForDate(t.state.Profile, t.WeightOn(date), t.PhaseForDate(date))
}

// DeficitTarget returns the weight-loss calorie target for a date.
func (t *Tracker) DeficitTarget(date string) int {
	return metabolic.DeficitTarget(t.MetabolicEstimate(date))
}

// WeightOn returns the most recent logged weight on-or-before the date,
// falling back to the profile's current weight with no applicable reading.
func (t *Tracker) WeightOn(date string) float64 {
	best := ""
	for day := range t.state.Logs.Weight {
		if day <= date && day > best {
			best = day
		}
	}
	if best == "" {
		return t.state.Profile.WeightKG
	}
	return t.state.Logs.Weight[best]
}

// WaterOn returns the cumulative water volume logged for the date.
func (t *Tracker) WaterOn(date string) int {
	return t.state.Logs.Water[date]
}

// StepsOn returns the step count recorded for the date.
func (t *Tracker) StepsOn(date string) int {
	return t.state.Logs.Steps[date]
}

// SymptomsOn returns the symptom tags recorded for the date.
func (t *Tracker) SymptomsOn(date string) []string {
	return t.state.Logs.Symptoms[date]
}

// NutritionOn returns the date's nutrition entries in log order.
func (t *Tracker) NutritionOn(date string) []models.NutritionEntry {
	return t.state.Logs.Nutrition[date]
}

// WorkoutsOn returns the date's workout entries in log order.
func (t *Tracker) WorkoutsOn(date string) []models.WorkoutEntry {
	return t.state.Logs.Workouts[date]
}

// Warning returns the warning raised by the last mutation, empty when the
// mutation was clean.
func (t *Tracker) Warning() string {
	return t.warning
}

// Profile returns the current profile.
func (t *Tracker) Profile() models.Profile {
	return t.state.Profile
}

// Settings returns the current application settings.
func (t *Tracker) Settings() models.Settings {
	return t.state.Settings
}

// Library returns the quick-add food presets, name-sorted.
func (t *Tracker) Library() []models.FoodPreset {
	library := make([]models.FoodPreset, len(t.state.Library))
	copy(library, t.state.Library)
	return library
}

// CycleEvents returns a copy of the event log.
func (t *Tracker) CycleEvents() []models.CycleEvent {
	events := make([]models.CycleEvent, len(t.state.Cycle.Events))
	copy(events, t.state.Cycle.Events)
	return events
}

// CycleStats returns the learned cycle averages.
func (t *Tracker) CycleStats() (avgLength, avgDuration int) {
	return t.state.Cycle.AvgLength, t.state.Cycle.AvgDuration
}
