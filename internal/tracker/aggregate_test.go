package tracker

import (
	"testing"

	"github.com/julianstephens/cyra/internal/models"
)

func TestTotalsZeroCase(t *testing.T) {
	totals := Totals(nil, nil)
	if totals != (models.DailyTotals{}) {
		t.Fatalf("expected zero totals for empty day, got %+v", totals)
	}
}

func TestTotalsSums(t *testing.T) {
	nutrition := []models.NutritionEntry{
		{Name: "Oatmeal", Calories: 310, ProteinG: 11, CarbsG: 54, FatG: 6, FiberG: 8},
		{Name: "Chicken salad", Calories: 420, ProteinG: 38, CarbsG: 12, FatG: 24, FiberG: 4},
	}
	workouts := []models.WorkoutEntry{
		{Type: "run", DurationMin: 30, CaloriesBurned: 280},
		{Type: "lift", DurationMin: 45, CaloriesBurned: 190},
	}

	totals := Totals(nutrition, workouts)
	if totals.Calories != 730 {
		t.Errorf("expected 730 calories, got %d", totals.Calories)
	}
	if totals.ProteinG != 49 {
		t.Errorf("expected 49g protein, got %v", totals.ProteinG)
	}
	if totals.FiberG != 12 {
		t.Errorf("expected 12g fiber, got %v", totals.FiberG)
	}
	if totals.CaloriesBurned != 470 {
		t.Errorf("expected 470 calories burned, got %d", totals.CaloriesBurned)
	}
}
