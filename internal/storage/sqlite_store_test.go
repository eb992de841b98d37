package storage

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/cyra/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store := NewSQLiteStore(filepath.Join(t.TempDir(), "cyra.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreInitSeedsDefaults(t *testing.T) {
	store := newTestSQLiteStore(t)

	state, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if state.Settings.Theme == "" {
		t.Error("expected seeded settings")
	}
	if state.Cycle.AvgLength <= 0 {
		t.Errorf("expected seeded cycle length, got %d", state.Cycle.AvgLength)
	}
}

func TestSQLiteStoreLoadUninitialized(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "cyra.db"))
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error loading uninitialized store")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	state := FactoryState()
	state.Profile.Name = "Ada"
	state.Profile.BodyFatPercent = 22
	state.Cycle.Events = []models.CycleEvent{
		{Date: "2024-01-01", Kind: models.EventStart},
		{Date: "2024-01-05", Kind: models.EventEnd},
		{Date: "2024-01-29", Kind: models.EventStart},
	}
	state.Cycle.AvgLength = 29
	state.Logs.Nutrition["2024-01-02"] = []models.NutritionEntry{
		{ID: "n1", Name: "Oatmeal", Calories: 310, ProteinG: 11},
		{ID: "n2", Name: "Banana", Calories: 105},
	}
	state.Logs.Workouts["2024-01-02"] = []models.WorkoutEntry{
		{ID: "w1", Type: "run", DurationMin: 30, CaloriesBurned: 280},
	}
	state.Logs.Weight["2024-01-02"] = 64.5
	state.Logs.Water["2024-01-02"] = 750
	state.Logs.Steps["2024-01-02"] = 8400
	state.Logs.Symptoms["2024-01-02"] = []string{"cramps", "headache"}
	state.Library = []models.FoodPreset{
		{Name: "Banana", Calories: 105},
		{Name: "Oatmeal", Calories: 310, ProteinG: 11},
	}
	state.Settings.Theme = "light"
	state.Settings.WaterReminderMin = 60

	if err := store.Save(state); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	if loaded.Profile.Name != "Ada" || loaded.Profile.BodyFatPercent != 22 {
		t.Errorf("unexpected profile: %+v", loaded.Profile)
	}
	if len(loaded.Cycle.Events) != 3 {
		t.Fatalf("expected 3 cycle events, got %d", len(loaded.Cycle.Events))
	}
	if loaded.Cycle.Events[0].Date != "2024-01-01" || loaded.Cycle.Events[2].Date != "2024-01-29" {
		t.Errorf("expected date-ordered events, got %v", loaded.Cycle.Events)
	}
	if loaded.Cycle.AvgLength != 29 {
		t.Errorf("expected avg length 29, got %d", loaded.Cycle.AvgLength)
	}

	entries := loaded.Logs.Nutrition["2024-01-02"]
	if len(entries) != 2 || entries[0].Name != "Oatmeal" || entries[1].Name != "Banana" {
		t.Errorf("expected log-ordered nutrition entries, got %v", entries)
	}
	if len(loaded.Logs.Workouts["2024-01-02"]) != 1 {
		t.Errorf("expected 1 workout entry, got %d", len(loaded.Logs.Workouts["2024-01-02"]))
	}
	if loaded.Logs.Weight["2024-01-02"] != 64.5 {
		t.Errorf("expected weight 64.5, got %v", loaded.Logs.Weight["2024-01-02"])
	}
	if loaded.Logs.Water["2024-01-02"] != 750 {
		t.Errorf("expected 750ml water, got %d", loaded.Logs.Water["2024-01-02"])
	}
	if loaded.Logs.Steps["2024-01-02"] != 8400 {
		t.Errorf("expected 8400 steps, got %d", loaded.Logs.Steps["2024-01-02"])
	}
	if got := loaded.Logs.Symptoms["2024-01-02"]; len(got) != 2 || got[0] != "cramps" {
		t.Errorf("expected ordered symptoms, got %v", got)
	}
	if len(loaded.Library) != 2 || loaded.Library[0].Name != "Banana" {
		t.Errorf("expected name-sorted library, got %v", loaded.Library)
	}
	if loaded.Settings.Theme != "light" || loaded.Settings.WaterReminderMin != 60 {
		t.Errorf("unexpected settings: %+v", loaded.Settings)
	}
}

func TestSQLiteStoreSaveReplaces(t *testing.T) {
	store := newTestSQLiteStore(t)

	state := FactoryState()
	state.Logs.Water["2024-01-02"] = 500
	if err := store.Save(state); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	delete(state.Logs.Water, "2024-01-02")
	state.Logs.Water["2024-01-03"] = 250
	if err := store.Save(state); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if _, ok := loaded.Logs.Water["2024-01-02"]; ok {
		t.Error("expected removed water log to stay removed")
	}
	if loaded.Logs.Water["2024-01-03"] != 250 {
		t.Errorf("expected 250ml on 2024-01-03, got %d", loaded.Logs.Water["2024-01-03"])
	}
}
