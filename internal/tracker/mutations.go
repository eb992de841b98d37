package tracker

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/cyra/internal/cycle"
	"github.com/julianstephens/cyra/internal/logger"
	"github.com/julianstephens/cyra/internal/metabolic"
	"github.com/julianstephens/cyra/internal/models"
	"github.com/julianstephens/cyra/internal/utils"
	"github.com/julianstephens/cyra/internal/validation"
)

// Mutations follow the silent-reject policy: invalid input leaves state
// untouched and emits nothing. Callers observe state to detect rejection;
// the debug log records why.

// LogPeriodStart records a period start on the given date. Re-logging the
// same date is a no-op. A still-open earlier period gets a synthesized end.
func (t *Tracker) LogPeriodStart(date string) {
	if !utils.IsValidDate(date) {
		logger.Debug("Rejected period start", "date", date)
		return
	}

	t.warning = ""
	events, changed := cycle.AddStart(t.state.Cycle.Events, date)
	if !changed {
		return
	}
	t.state.Cycle.Events = events
	t.recomputeCycleStats()
	t.afterMutation(ReasonPeriodStart)
}

// LogPeriodEnd records a period end on the given date. With no eligible
// open start the event is dropped; the snapshot carries a warning so the
// silent no-op is at least observable.
func (t *Tracker) LogPeriodEnd(date string) {
	if !utils.IsValidDate(date) {
		logger.Debug("Rejected period end", "date", date)
		return
	}

	t.warning = ""
	events, changed := cycle.AddEnd(t.state.Cycle.Events, date)
	if !changed {
		if !cycle.HasEvent(t.state.Cycle.Events, date, models.EventEnd) {
			logger.Warn("Ignored period end with no open period", "date", date)
			t.warning = "no open period to end on " + date
		}
		return
	}
	t.state.Cycle.Events = events
	t.recomputeCycleStats()
	t.afterMutation(ReasonPeriodEnd)
}

// SetWeight records a weight reading for the date. Logging today's weight
// also updates the profile's current weight.
func (t *Tracker) SetWeight(date string, kg float64) {
	if !utils.IsValidDate(date) || !validation.IsValidWeight(kg) {
		logger.Debug("Rejected weight", "date", date, "kg", kg)
		return
	}

	t.warning = ""
	t.state.Logs.Weight[date] = kg
	if date == t.Today() {
		t.state.Profile.WeightKG = kg
	}
	t.afterMutation(ReasonWeight)
}

// LogFood appends a nutrition entry to the date's log and adds the food to
// the quick-add library when its name is new.
func (t *Tracker) LogFood(date string, entry models.NutritionEntry) {
	if !utils.IsValidDate(date) || !validation.ValidFood(entry) {
		logger.Debug("Rejected food entry", "date", date, "name", entry.Name)
		return
	}

	t.warning = ""
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	t.state.Logs.Nutrition[date] = append(t.state.Logs.Nutrition[date], entry)
	t.addToLibrary(entry)
	t.afterMutation(ReasonFood)
}

// LogWorkout appends a workout entry to the date's log.
func (t *Tracker) LogWorkout(date string, entry models.WorkoutEntry) {
	if !utils.IsValidDate(date) || !validation.ValidWorkout(entry) {
		logger.Debug("Rejected workout entry", "date", date, "type", entry.Type)
		return
	}

	t.warning = ""
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	t.state.Logs.Workouts[date] = append(t.state.Logs.Workouts[date], entry)
	t.afterMutation(ReasonWorkout)
}

// AddWater adds to today's cumulative water volume.
func (t *Tracker) AddWater(ml int) {
	if !validation.IsValidWaterAmount(ml) {
		logger.Debug("Rejected water amount", "ml", ml)
		return
	}

	t.warning = ""
	today := t.Today()
	t.state.Logs.Water[today] += ml
	t.afterMutation(ReasonWater)
}

// SetSteps records an externally supplied step count for the date. Steps
// feed the daily view only, never the estimation engine.
func (t *Tracker) SetSteps(date string, steps int) {
	if !utils.IsValidDate(date) || !validation.IsValidSteps(steps) {
		logger.Debug("Rejected steps", "date", date, "steps", steps)
		return
	}

	t.warning = ""
	t.state.Logs.Steps[date] = steps
	t.afterMutation(ReasonSteps)
}

// LogSymptom appends a symptom tag to the date's log, once per date.
func (t *Tracker) LogSymptom(date string, symptom string) {
	symptom = strings.TrimSpace(symptom)
	if !utils.IsValidDate(date) || symptom == "" {
		logger.Debug("Rejected symptom", "date", date)
		return
	}

	for _, existing := range t.state.Logs.Symptoms[date] {
		if strings.EqualFold(existing, symptom) {
			return
		}
	}

	t.warning = ""
	t.state.Logs.Symptoms[date] = append(t.state.Logs.Symptoms[date], symptom)
	t.afterMutation(ReasonSymptom)
}

// SetProfile replaces the profile. Out-of-range fields reject the whole
// update so the profile never holds a mix of old and implausible values.
func (t *Tracker) SetProfile(profile models.Profile) {
	if profile.HeightCM != 0 && !validation.IsValidHeight(profile.HeightCM) {
		logger.Debug("Rejected profile", "height_cm", profile.HeightCM)
		return
	}
	if profile.WeightKG != 0 && !validation.IsValidWeight(profile.WeightKG) {
		logger.Debug("Rejected profile", "weight_kg", profile.WeightKG)
		return
	}
	if !validation.IsValidBodyFat(profile.BodyFatPercent) {
		logger.Debug("Rejected profile", "body_fat_percent", profile.BodyFatPercent)
		return
	}
	if profile.Activity != "" && !metabolic.IsValidActivityLevel(profile.Activity) {
		logger.Debug("Rejected profile", "activity", profile.Activity)
		return
	}
	if profile.DateOfBirth != "" && !utils.IsValidDate(profile.DateOfBirth) {
		logger.Debug("Rejected profile", "date_of_birth", profile.DateOfBirth)
		return
	}

	t.warning = ""
	if profile.Activity == "" {
		profile.Activity = models.ActivityModerate
	}
	t.state.Profile = profile
	t.afterMutation(ReasonProfile)
}

// UpdateSettings replaces the application settings.
func (t *Tracker) UpdateSettings(settings models.Settings) {
	if settings.Theme != "dark" && settings.Theme != "light" {
		logger.Debug("Rejected settings", "theme", settings.Theme)
		return
	}
	if _, err := utils.LoadLocation(settings.Timezone); err != nil {
		logger.Debug("Rejected settings", "timezone", settings.Timezone)
		return
	}
	if settings.WaterReminderMin < 0 || settings.WaterGoalML <= 0 {
		logger.Debug("Rejected settings", "water_reminder_min", settings.WaterReminderMin)
		return
	}

	t.warning = ""
	t.state.Settings = settings
	t.afterMutation(ReasonSettings)
}

// addToLibrary inserts a quick-add preset unless the name is already
// present (case-insensitive); the first logged values win.
func (t *Tracker) addToLibrary(entry models.NutritionEntry) {
	for _, preset := range t.state.Library {
		if strings.EqualFold(preset.Name, entry.Name) {
			return
		}
	}

	t.state.Library = append(t.state.Library, models.FoodPreset{
		Name:     entry.Name,
		Calories: entry.Calories,
		ProteinG: entry.ProteinG,
		CarbsG:   entry.CarbsG,
		FatG:     entry.FatG,
		FiberG:   entry.FiberG,
	})
	sort.Slice(t.state.Library, func(i, j int) bool {
		return strings.ToLower(t.state.Library[i].Name) < strings.ToLower(t.state.Library[j].Name)
	})
}
