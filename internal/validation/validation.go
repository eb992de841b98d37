package validation

import (
	"strings"

	"github.com/julianstephens/cyra/internal/models"
)

// Input bounds for silently-rejected mutations. The tracker never errors on
// bad input; it drops the mutation and leaves state untouched, so these
// bounds are the only gate between a typo and a persisted reading.
const (
	MinWeightKG = 20.0
	MaxWeightKG = 400.0

	MinHeightCM = 90.0
	MaxHeightCM = 250.0

	MaxWaterML = 5000 // single pour, not the daily total

	MaxWorkoutMin = 24 * 60
)

// IsValidWeight reports whether a weight reading is plausible.
func IsValidWeight(kg float64) bool {
	return kg >= MinWeightKG && kg <= MaxWeightKG
}

// IsValidHeight reports whether a height is plausible.
func IsValidHeight(cm float64) bool {
	return cm >= MinHeightCM && cm <= MaxHeightCM
}

// IsValidBodyFat reports whether a body-fat percentage is usable. Zero is
// allowed and means "unknown".
func IsValidBodyFat(percent float64) bool {
	return percent >= 0 && percent < 100
}

// IsValidWaterAmount reports whether a single water log amount is plausible.
func IsValidWaterAmount(ml int) bool {
	return ml > 0 && ml <= MaxWaterML
}

// IsValidSteps reports whether a daily step count is plausible.
func IsValidSteps(steps int) bool {
	return steps >= 0 && steps <= 200000
}

// ValidFood reports whether a nutrition entry can be logged: a name and
// non-negative macros.
func ValidFood(entry models.NutritionEntry) bool {
	if strings.TrimSpace(entry.Name) == "" {
		return false
	}
	if entry.Calories < 0 {
		return false
	}
	return entry.ProteinG >= 0 && entry.CarbsG >= 0 && entry.FatG >= 0 && entry.FiberG >= 0
}

// ValidWorkout reports whether a workout entry can be logged.
func ValidWorkout(entry models.WorkoutEntry) bool {
	if strings.TrimSpace(entry.Type) == "" {
		return false
	}
	if entry.DurationMin <= 0 || entry.DurationMin > MaxWorkoutMin {
		return false
	}
	return entry.CaloriesBurned >= 0
}
