package validation

import (
	"testing"

	"github.com/julianstephens/cyra/internal/models"
)

func TestIsValidWeight(t *testing.T) {
	tests := []struct {
		kg   float64
		want bool
	}{
		{65, true},
		{20, true},
		{400, true},
		{19.9, false},
		{0, false},
		{-5, false},
		{650, false},
	}
	for _, tt := range tests {
		if got := IsValidWeight(tt.kg); got != tt.want {
			t.Errorf("IsValidWeight(%v): expected %v, got %v", tt.kg, tt.want, got)
		}
	}
}

func TestIsValidWaterAmount(t *testing.T) {
	tests := []struct {
		ml   int
		want bool
	}{
		{250, true},
		{5000, true},
		{0, false},
		{-100, false},
		{5001, false},
	}
	for _, tt := range tests {
		if got := IsValidWaterAmount(tt.ml); got != tt.want {
			t.Errorf("IsValidWaterAmount(%d): expected %v, got %v", tt.ml, tt.want, got)
		}
	}
}

func TestValidFood(t *testing.T) {
	good := models.NutritionEntry{Name: "oatmeal", Calories: 150, ProteinG: 5}
	if !ValidFood(good) {
		t.Errorf("expected valid entry to pass")
	}
	if ValidFood(models.NutritionEntry{Name: "  ", Calories: 100}) {
		t.Errorf("expected blank name to fail")
	}
	if ValidFood(models.NutritionEntry{Name: "x", Calories: -1}) {
		t.Errorf("expected negative calories to fail")
	}
	if ValidFood(models.NutritionEntry{Name: "x", FatG: -2}) {
		t.Errorf("expected negative macros to fail")
	}
}

func TestValidWorkout(t *testing.T) {
	good := models.WorkoutEntry{Type: "run", DurationMin: 30, CaloriesBurned: 280}
	if !ValidWorkout(good) {
		t.Errorf("expected valid workout to pass")
	}
	if ValidWorkout(models.WorkoutEntry{Type: "", DurationMin: 30}) {
		t.Errorf("expected empty type to fail")
	}
	if ValidWorkout(models.WorkoutEntry{Type: "run", DurationMin: 0}) {
		t.Errorf("expected zero duration to fail")
	}
	if ValidWorkout(models.WorkoutEntry{Type: "run", DurationMin: 30, CaloriesBurned: -10}) {
		t.Errorf("expected negative burn to fail")
	}
}
