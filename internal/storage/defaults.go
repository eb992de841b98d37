package storage

import (
	"github.com/julianstephens/cyra/internal/constants"
	"github.com/julianstephens/cyra/internal/models"
)

// SchemaVersion is the version stamped into newly created state records.
const SchemaVersion = 1

// FactoryState returns the state a fresh install starts from.
func FactoryState() models.State {
	state := models.State{
		Version: SchemaVersion,
		Profile: models.Profile{
			Activity: models.ActivityModerate,
		},
		Cycle: models.CycleState{
			AvgLength:   constants.DefaultCycleLength,
			AvgDuration: constants.DefaultPeriodLength,
		},
		Settings: models.Settings{
			Theme:                constants.DefaultTheme,
			Timezone:             constants.DefaultTimezone,
			NotificationsEnabled: constants.DefaultNotificationsEnabled,
			WaterReminderMin:     constants.DefaultWaterReminderMin,
			WaterGoalML:          constants.DefaultWaterGoalML,
		},
	}
	FillDefaults(&state)
	return state
}

// FillDefaults initializes nil maps and fills optional fields added after a
// record was written, so loading an older record never fails. This is the
// only migration the blob format needs.
func FillDefaults(state *models.State) {
	if state.Version == 0 {
		state.Version = SchemaVersion
	}

	if state.Logs.Nutrition == nil {
		state.Logs.Nutrition = make(map[string][]models.NutritionEntry)
	}
	if state.Logs.Workouts == nil {
		state.Logs.Workouts = make(map[string][]models.WorkoutEntry)
	}
	if state.Logs.Weight == nil {
		state.Logs.Weight = make(map[string]float64)
	}
	if state.Logs.Water == nil {
		state.Logs.Water = make(map[string]int)
	}
	if state.Logs.Steps == nil {
		state.Logs.Steps = make(map[string]int)
	}
	if state.Logs.Symptoms == nil {
		state.Logs.Symptoms = make(map[string][]string)
	}

	if state.Cycle.AvgLength <= 0 {
		state.Cycle.AvgLength = constants.DefaultCycleLength
	}
	if state.Cycle.AvgDuration <= 0 {
		state.Cycle.AvgDuration = constants.DefaultPeriodLength
	}

	if state.Profile.Activity == "" {
		state.Profile.Activity = models.ActivityModerate
	}
	if state.Profile.Goals.Calories <= 0 {
		state.Profile.Goals.Calories = constants.DefaultGoalCalories
	}
	if state.Profile.Goals.ProteinG <= 0 {
		state.Profile.Goals.ProteinG = constants.DefaultGoalProteinG
	}
	if state.Profile.Goals.CarbsG <= 0 {
		state.Profile.Goals.CarbsG = constants.DefaultGoalCarbsG
	}
	if state.Profile.Goals.FatG <= 0 {
		state.Profile.Goals.FatG = constants.DefaultGoalFatG
	}
	if state.Profile.Goals.FiberG <= 0 {
		state.Profile.Goals.FiberG = constants.DefaultGoalFiberG
	}
	if state.Profile.Goals.WaterML <= 0 {
		state.Profile.Goals.WaterML = constants.DefaultWaterGoalML
	}

	if state.Settings.Theme == "" {
		state.Settings.Theme = constants.DefaultTheme
	}
	if state.Settings.Timezone == "" {
		state.Settings.Timezone = constants.DefaultTimezone
	}
	if state.Settings.WaterReminderMin < 0 {
		state.Settings.WaterReminderMin = constants.DefaultWaterReminderMin
	}
	if state.Settings.WaterGoalML <= 0 {
		state.Settings.WaterGoalML = constants.DefaultWaterGoalML
	}
}
