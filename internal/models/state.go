package models

// DailyLogs are the per-date records, each keyed by a YYYY-MM-DD string so
// lexicographic order is chronological order.
type DailyLogs struct {
	Nutrition map[string][]NutritionEntry `json:"nutrition"`
	Workouts  map[string][]WorkoutEntry   `json:"workouts"`
	Weight    map[string]float64          `json:"weight"`   // single reading per day, replaced on re-log
	Water     map[string]int              `json:"water"`    // cumulative milliliters per day
	Steps     map[string]int              `json:"steps"`    // externally fed step counts
	Symptoms  map[string][]string         `json:"symptoms"` // free-form symptom tags per day
}

// CycleState is the event log plus the learned averages derived from it.
// AvgLength and AvgDuration are persisted so the estimate survives restarts
// even before enough events exist to recompute it.
type CycleState struct {
	Events      []CycleEvent `json:"events"`
	AvgLength   int          `json:"avg_length"`
	AvgDuration int          `json:"avg_duration"`
}

// State is the single persisted record. The loader tolerates missing
// optional fields by filling defaults rather than failing.
type State struct {
	Version  int          `json:"version"`
	Profile  Profile      `json:"profile"`
	Logs     DailyLogs    `json:"logs"`
	Cycle    CycleState   `json:"cycle"`
	Library  []FoodPreset `json:"library"`
	Settings Settings     `json:"settings"`
}
