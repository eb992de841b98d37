package tracker

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/cyra/internal/models"
	"github.com/julianstephens/cyra/internal/storage"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "cyra.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	tr, err := New(store)
	if err != nil {
		t.Fatalf("failed to create tracker: %v", err)
	}
	return tr
}

func TestRoundTrip(t *testing.T) {
	tr := newTestTracker(t)

	tr.LogPeriodStart("2024-01-01")
	tr.LogPeriodEnd("2024-01-05")
	tr.SetWeight("2024-01-02", 64.5)
	tr.LogFood("2024-01-02", models.NutritionEntry{Name: "Oatmeal", Calories: 310, ProteinG: 11})
	tr.LogWorkout("2024-01-02", models.WorkoutEntry{Type: "run", DurationMin: 30, CaloriesBurned: 280})
	tr.SetSteps("2024-01-02", 8400)
	tr.LogSymptom("2024-01-02", "cramps")

	reloaded, err := New(tr.store)
	if err != nil {
		t.Fatalf("failed to reload tracker: %v", err)
	}

	if got := len(reloaded.CycleEvents()); got != 2 {
		t.Fatalf("expected 2 cycle events after reload, got %d", got)
	}
	if got := reloaded.WeightOn("2024-01-02"); got != 64.5 {
		t.Errorf("expected weight 64.5 after reload, got %v", got)
	}
	totals := reloaded.DailyTotals("2024-01-02")
	if totals.Calories != 310 || totals.CaloriesBurned != 280 {
		t.Errorf("unexpected totals after reload: %+v", totals)
	}
	if got := reloaded.StepsOn("2024-01-02"); got != 8400 {
		t.Errorf("expected 8400 steps after reload, got %d", got)
	}
	if got := reloaded.SymptomsOn("2024-01-02"); len(got) != 1 || got[0] != "cramps" {
		t.Errorf("unexpected symptoms after reload: %v", got)
	}
	if got := len(reloaded.Library()); got != 1 {
		t.Errorf("expected 1 library preset after reload, got %d", got)
	}
}

func TestSnapshotEmission(t *testing.T) {
	tr := newTestTracker(t)

	var gotReason Reason
	var gotSnap Snapshot
	calls := 0
	tr.Subscribe(func(reason Reason, snap Snapshot) {
		gotReason = reason
		gotSnap = snap
		calls++
	})

	today := tr.Today()
	tr.LogFood(today, models.NutritionEntry{Name: "Yogurt", Calories: 120})

	if calls != 1 {
		t.Fatalf("expected 1 notification, got %d", calls)
	}
	if gotReason != ReasonFood {
		t.Errorf("expected reason %q, got %q", ReasonFood, gotReason)
	}
	if gotSnap.Date != today {
		t.Errorf("expected snapshot for %s, got %s", today, gotSnap.Date)
	}
	if gotSnap.Totals.Calories != 120 {
		t.Errorf("expected snapshot calories 120, got %d", gotSnap.Totals.Calories)
	}
	if gotSnap.Warning != "" {
		t.Errorf("unexpected warning: %q", gotSnap.Warning)
	}
}

func TestRejectedMutationEmitsNothing(t *testing.T) {
	tr := newTestTracker(t)

	calls := 0
	tr.Subscribe(func(Reason, Snapshot) { calls++ })

	tr.LogFood("not-a-date", models.NutritionEntry{Name: "Toast", Calories: 200})
	tr.SetWeight("2024-01-02", -5)
	tr.AddWater(0)

	if calls != 0 {
		t.Fatalf("expected no notifications for rejected mutations, got %d", calls)
	}
}

func TestPeriodEndWithoutOpenStart(t *testing.T) {
	tr := newTestTracker(t)

	calls := 0
	tr.Subscribe(func(Reason, Snapshot) { calls++ })

	tr.LogPeriodEnd("2024-01-05")

	if calls != 0 {
		t.Fatalf("expected no notification for orphan end, got %d", calls)
	}
	if got := len(tr.CycleEvents()); got != 0 {
		t.Errorf("expected empty event log, got %d events", got)
	}
	snap := tr.Snapshot(tr.Today())
	if snap.Warning == "" {
		t.Error("expected snapshot warning for orphan end")
	}
}

func TestWarningClearedByNextMutation(t *testing.T) {
	tr := newTestTracker(t)

	tr.LogPeriodEnd("2024-01-05")
	if tr.Snapshot(tr.Today()).Warning == "" {
		t.Fatal("expected warning after orphan end")
	}

	tr.LogPeriodStart("2024-01-10")
	if warn := tr.Snapshot(tr.Today()).Warning; warn != "" {
		t.Errorf("expected warning cleared after valid mutation, got %q", warn)
	}
}

func TestWaterAccumulates(t *testing.T) {
	tr := newTestTracker(t)

	tr.AddWater(250)
	tr.AddWater(500)

	if got := tr.WaterOn(tr.Today()); got != 750 {
		t.Errorf("expected 750ml, got %d", got)
	}
}

func TestWeightReplacesAndUpdatesProfile(t *testing.T) {
	tr := newTestTracker(t)
	today := tr.Today()

	tr.SetWeight(today, 70)
	tr.SetWeight(today, 69.2)

	if got := tr.WeightOn(today); got != 69.2 {
		t.Errorf("expected re-logged weight 69.2, got %v", got)
	}
	if got := tr.Profile().WeightKG; got != 69.2 {
		t.Errorf("expected profile weight updated to 69.2, got %v", got)
	}
}

func TestWeightOnFallsBack(t *testing.T) {
	tr := newTestTracker(t)

	tr.SetProfile(models.Profile{Name: "Ada", HeightCM: 165, WeightKG: 66, Activity: models.ActivityModerate})
	tr.SetWeight("2024-01-05", 65)

	if got := tr.WeightOn("2024-01-10"); got != 65 {
		t.Errorf("expected latest prior reading 65, got %v", got)
	}
	if got := tr.WeightOn("2024-01-01"); got != 66 {
		t.Errorf("expected profile fallback 66, got %v", got)
	}
}

func TestLibraryDedupAndSort(t *testing.T) {
	tr := newTestTracker(t)

	tr.LogFood("2024-01-02", models.NutritionEntry{Name: "Banana", Calories: 105})
	tr.LogFood("2024-01-03", models.NutritionEntry{Name: "banana", Calories: 120})
	tr.LogFood("2024-01-03", models.NutritionEntry{Name: "Apple", Calories: 95})

	library := tr.Library()
	if len(library) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(library))
	}
	if library[0].Name != "Apple" || library[1].Name != "Banana" {
		t.Errorf("expected name-sorted library, got %v", library)
	}
	if library[1].Calories != 105 {
		t.Errorf("expected first-logged values to win, got %d calories", library[1].Calories)
	}
}

func TestSymptomDedup(t *testing.T) {
	tr := newTestTracker(t)

	tr.LogSymptom("2024-01-02", "Cramps")
	tr.LogSymptom("2024-01-02", "cramps")
	tr.LogSymptom("2024-01-02", "headache")

	if got := tr.SymptomsOn("2024-01-02"); len(got) != 2 {
		t.Errorf("expected 2 symptoms, got %v", got)
	}
}

func TestCycleStatsRecomputed(t *testing.T) {
	tr := newTestTracker(t)

	tr.LogPeriodStart("2024-01-01")
	tr.LogPeriodStart("2024-01-30")
	tr.LogPeriodStart("2024-02-29")

	avgLength, _ := tr.CycleStats()
	if avgLength != 30 {
		t.Errorf("expected learned average length 30, got %d", avgLength)
	}
}

func TestSetProfileRejectsWholeUpdate(t *testing.T) {
	tr := newTestTracker(t)

	tr.SetProfile(models.Profile{Name: "Ada", HeightCM: 165, WeightKG: 66, Activity: models.ActivityModerate})
	tr.SetProfile(models.Profile{Name: "Ada", HeightCM: 400, WeightKG: 60, Activity: models.ActivityModerate})

	if got := tr.Profile().WeightKG; got != 66 {
		t.Errorf("expected rejected update to leave weight at 66, got %v", got)
	}
}

func TestUpdateSettings(t *testing.T) {
	tr := newTestTracker(t)

	tr.UpdateSettings(models.Settings{Theme: "light", Timezone: "UTC", WaterReminderMin: 60, WaterGoalML: 2500})
	if got := tr.Settings().Theme; got != "light" {
		t.Errorf("expected theme light, got %q", got)
	}

	tr.UpdateSettings(models.Settings{Theme: "neon", Timezone: "UTC", WaterGoalML: 2500})
	if got := tr.Settings().Theme; got != "light" {
		t.Errorf("expected invalid theme rejected, got %q", got)
	}
}
