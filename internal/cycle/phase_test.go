package cycle

import (
	"testing"

	"github.com/julianstephens/cyra/internal/models"
)

func TestPhaseForDate_WrapsAtAverageLength(t *testing.T) {
	events := starts("2024-01-01")

	tests := []struct {
		date string
		want models.Phase
	}{
		{"2024-01-01", models.PhaseMenstrual},  // day 1
		{"2024-01-05", models.PhaseMenstrual},  // day 5
		{"2024-01-06", models.PhaseFollicular}, // day 6
		{"2024-01-13", models.PhaseFollicular}, // day 13
		{"2024-01-15", models.PhaseOvulation},  // day 15
		{"2024-01-18", models.PhaseLuteal},     // day 18
		{"2024-01-28", models.PhaseLuteal},     // day 28
		{"2024-01-29", models.PhaseMenstrual},  // wrapped to day 1
		{"2024-03-10", models.PhaseOvulation},  // day 15 two cycles on
	}
	for _, tt := range tests {
		if got := PhaseForDate(tt.date, events, 28); got != tt.want {
			t.Errorf("PhaseForDate(%s): expected %s, got %s", tt.date, tt.want, got)
		}
	}
}

func TestPhaseForDate_NoHistoryFallsBackToFollicular(t *testing.T) {
	if got := PhaseForDate("2024-01-01", nil, 28); got != models.PhaseFollicular {
		t.Errorf("expected follicular fallback, got %s", got)
	}

	// A start strictly after the date cannot anchor it.
	events := starts("2024-02-01")
	if got := PhaseForDate("2024-01-15", events, 28); got != models.PhaseFollicular {
		t.Errorf("expected follicular for date before first start, got %s", got)
	}
}

func TestPhaseForDate_LoggedEndExtendsMenstrualWindow(t *testing.T) {
	events := []models.CycleEvent{
		{Date: "2024-01-01", Kind: models.EventStart},
		{Date: "2024-01-09", Kind: models.EventEnd},
	}

	// Day 6 would be follicular by boundary, but the logged end keeps it
	// menstrual.
	if got := PhaseForDate("2024-01-06", events, 28); got != models.PhaseMenstrual {
		t.Errorf("expected menstrual on day 6 inside logged window, got %s", got)
	}
	// Day 7 is the cap.
	if got := PhaseForDate("2024-01-07", events, 28); got != models.PhaseMenstrual {
		t.Errorf("expected menstrual on day 7, got %s", got)
	}
	// Day 8 exceeds the 7-day cap even though the end is on day 9.
	if got := PhaseForDate("2024-01-08", events, 28); got != models.PhaseFollicular {
		t.Errorf("expected follicular past the 7-day cap, got %s", got)
	}
}

func TestCycleDayFor(t *testing.T) {
	events := starts("2024-01-01")
	if got := CycleDayFor("2024-01-01", events, 28); got != 1 {
		t.Errorf("expected day 1, got %d", got)
	}
	if got := CycleDayFor("2024-01-29", events, 28); got != 1 {
		t.Errorf("expected wrapped day 1, got %d", got)
	}
	if got := CycleDayFor("2024-01-15", events, 28); got != 15 {
		t.Errorf("expected day 15, got %d", got)
	}
	if got := CycleDayFor("2024-01-01", nil, 28); got != 0 {
		t.Errorf("expected 0 with empty log, got %d", got)
	}
}

func TestNextPeriodAfter(t *testing.T) {
	events := starts("2024-01-01")

	if got := NextPeriodAfter("2024-01-10", events, 28); got != "2024-01-29" {
		t.Errorf("expected 2024-01-29, got %s", got)
	}
	// Far in the future: projection advances whole cycles.
	if got := NextPeriodAfter("2024-03-01", events, 28); got != "2024-03-25" {
		t.Errorf("expected 2024-03-25, got %s", got)
	}
	if got := NextPeriodAfter("2024-01-10", nil, 28); got != "" {
		t.Errorf("expected empty prediction with no history, got %s", got)
	}
}
