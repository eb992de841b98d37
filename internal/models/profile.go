package models

// ActivityLevel describes habitual daily movement, used to scale the basal
// metabolic rate into a total daily energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityAthlete   ActivityLevel = "athlete"
)

// GoalTargets are the user's daily intake targets.
type GoalTargets struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
	WaterML  int     `json:"water_ml"`
}

// Profile holds the slowly-changing attributes of the single tracked user.
// BodyFatPercent of 0 means "unknown" and selects the Mifflin-St Jeor
// estimator instead of Katch-McArdle.
type Profile struct {
	Name           string        `json:"name"`
	DateOfBirth    string        `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	HeightCM       float64       `json:"height_cm"`
	WeightKG       float64       `json:"weight_kg"`
	BodyFatPercent float64       `json:"body_fat_percent,omitempty"`
	Activity       ActivityLevel `json:"activity"`
	Goals          GoalTargets   `json:"goals"`
}
