package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/cyra/internal/constants"
	"github.com/julianstephens/cyra/internal/models"
)

func TestJSONStoreInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cyra.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected state file to exist: %v", err)
	}

	if err := store.Init(); err == nil {
		t.Error("expected error initializing twice")
	}
}

func TestJSONStoreLoadUninitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "cyra.json"))
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error loading uninitialized store")
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "cyra.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}

	state := FactoryState()
	state.Profile.Name = "Ada"
	state.Profile.WeightKG = 65
	state.Cycle.Events = []models.CycleEvent{
		{Date: "2024-01-01", Kind: models.EventStart},
		{Date: "2024-01-05", Kind: models.EventEnd},
	}
	state.Logs.Nutrition["2024-01-02"] = []models.NutritionEntry{
		{ID: "n1", Name: "Oatmeal", Calories: 310},
	}
	state.Logs.Water["2024-01-02"] = 750

	if err := store.Save(state); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if loaded.Profile.Name != "Ada" || loaded.Profile.WeightKG != 65 {
		t.Errorf("unexpected profile after load: %+v", loaded.Profile)
	}
	if len(loaded.Cycle.Events) != 2 {
		t.Errorf("expected 2 cycle events, got %d", len(loaded.Cycle.Events))
	}
	if got := loaded.Logs.Water["2024-01-02"]; got != 750 {
		t.Errorf("expected 750ml water, got %d", got)
	}
	if len(loaded.Logs.Nutrition["2024-01-02"]) != 1 {
		t.Errorf("expected 1 nutrition entry, got %d", len(loaded.Logs.Nutrition["2024-01-02"]))
	}
}

func TestJSONStoreCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cyra.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	state, err := store.Load()
	if err != nil {
		t.Fatalf("expected corrupt file to recover, got error: %v", err)
	}
	if state.Cycle.AvgLength != constants.DefaultCycleLength {
		t.Errorf("expected factory cycle length, got %d", state.Cycle.AvgLength)
	}
	if state.Settings.Theme != constants.DefaultTheme {
		t.Errorf("expected factory theme, got %q", state.Settings.Theme)
	}
}

func TestJSONStoreFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cyra.json")
	// An older record with most fields absent must load with defaults.
	if err := os.WriteFile(path, []byte(`{"profile": {"name": "Ada"}}`), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	state, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if state.Profile.Name != "Ada" {
		t.Errorf("expected name preserved, got %q", state.Profile.Name)
	}
	if state.Logs.Nutrition == nil || state.Logs.Water == nil {
		t.Error("expected log maps initialized")
	}
	if state.Cycle.AvgLength != constants.DefaultCycleLength {
		t.Errorf("expected default cycle length, got %d", state.Cycle.AvgLength)
	}
	if state.Profile.Activity != models.ActivityModerate {
		t.Errorf("expected default activity, got %q", state.Profile.Activity)
	}
}
