package metabolic

import (
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/cyra/internal/models"
)

func TestForDate_KatchMcArdleLutealScenario(t *testing.T) {
	// 65kg at 22% body fat: lbm=50.7, bmr=370+21.6*50.7=1465.12,
	// tdee=floor(1465.12*1.55)+150=2270+150=2420.
	profile := models.Profile{
		BodyFatPercent: 22,
		Activity:       models.ActivityModerate,
	}

	est := ForDate(profile, 65, models.PhaseLuteal)
	if est.Method != MethodKatchMcArdle {
		t.Fatalf("expected katch-mcardle method, got %s", est.Method)
	}
	if est.BMR != 1465 {
		t.Errorf("expected BMR 1465, got %d", est.BMR)
	}
	if est.TDEE != 2420 {
		t.Errorf("expected TDEE 2420, got %d", est.TDEE)
	}
}

func TestForDate_NoSurchargeOutsideLuteal(t *testing.T) {
	profile := models.Profile{
		BodyFatPercent: 22,
		Activity:       models.ActivityModerate,
	}

	luteal := ForDate(profile, 65, models.PhaseLuteal)
	follicular := ForDate(profile, 65, models.PhaseFollicular)
	if luteal.TDEE-follicular.TDEE != 150 {
		t.Errorf("expected 150 kcal luteal surcharge, got %d", luteal.TDEE-follicular.TDEE)
	}
}

func TestForDate_MifflinFallbackWithoutBodyFat(t *testing.T) {
	dob := time.Now().AddDate(-30, 0, -1).Format("2006-01-02")
	profile := models.Profile{
		DateOfBirth: dob,
		HeightCM:    165,
		Activity:    models.ActivitySedentary,
	}

	est := ForDate(profile, 65, models.PhaseFollicular)
	if est.Method != MethodMifflin {
		t.Fatalf("expected mifflin fallback, got %s", est.Method)
	}

	// bmr = (10*65 + 6.25*165 - 5*30 - 161) * 0.85 = 1164.7125
	if est.BMR != 1165 {
		t.Errorf("expected BMR 1165, got %d", est.BMR)
	}
	if want := 1397; est.TDEE != want { // floor(1164.7125 * 1.2)
		t.Errorf("expected TDEE %d, got %d", want, est.TDEE)
	}
}

func TestActivityMultiplier_DefaultsToModerate(t *testing.T) {
	if got := ActivityMultiplier("couch"); got != 1.55 {
		t.Errorf("expected moderate default 1.55, got %v", got)
	}
	if got := ActivityMultiplier(""); got != 1.55 {
		t.Errorf("expected moderate default for empty level, got %v", got)
	}
	if got := ActivityMultiplier(models.ActivityAthlete); got != 1.90 {
		t.Errorf("expected 1.90 for athlete, got %v", got)
	}
}

func TestDeficitTarget(t *testing.T) {
	if got := DeficitTarget(Estimate{TDEE: 2420}); got != 2057 {
		t.Errorf("expected deficit target 2057, got %d", got)
	}
}

func TestAgeFromDOB(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		dob  string
		want int
	}{
		{"1994-06-01", 30},
		{"1994-06-02", 29}, // birthday not yet reached
		{"", 30},           // unknown falls back
		{"2200-01-01", 30}, // implausible falls back
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("dob=%s", tt.dob), func(t *testing.T) {
			if got := ageFromDOB(tt.dob, now); got != tt.want {
				t.Errorf("expected age %d, got %d", tt.want, got)
			}
		})
	}
}
