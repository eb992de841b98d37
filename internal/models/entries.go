package models

// NutritionEntry is a single logged food item for a day.
type NutritionEntry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}

// WorkoutEntry is a single logged workout for a day.
type WorkoutEntry struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	DurationMin    int    `json:"duration_min"`
	Intensity      string `json:"intensity"`
	CaloriesBurned int    `json:"calories_burned"`
}

// FoodPreset is a previously logged food kept in the quick-add library.
// Names are unique case-insensitively; the first logged values win.
type FoodPreset struct {
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}

// DailyTotals is the aggregated view of one day's logged entries.
type DailyTotals struct {
	Calories       int     `json:"calories"`
	ProteinG       float64 `json:"protein_g"`
	CarbsG         float64 `json:"carbs_g"`
	FatG           float64 `json:"fat_g"`
	FiberG         float64 `json:"fiber_g"`
	CaloriesBurned int     `json:"calories_burned"`
}
