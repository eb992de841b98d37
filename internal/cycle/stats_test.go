package cycle

import (
	"testing"

	"github.com/julianstephens/cyra/internal/models"
)

func starts(dates ...string) []models.CycleEvent {
	events := make([]models.CycleEvent, 0, len(dates))
	for _, d := range dates {
		events = append(events, models.CycleEvent{Date: d, Kind: models.EventStart})
	}
	return events
}

func TestAverageLength_RejectsOutliers(t *testing.T) {
	// Consecutive deltas: 28, 29, 5, 31. The 5-day gap is spotting, not a
	// cycle, and must not drag the average down.
	events := starts(
		"2024-01-01",
		"2024-01-29",
		"2024-02-27",
		"2024-03-03",
		"2024-04-03",
	)

	if got := AverageLength(events, 28); got != 29 {
		t.Errorf("expected average 29, got %d", got)
	}
}

func TestAverageLength_RetainsPriorWithSparseLog(t *testing.T) {
	events := starts("2024-01-01", "2024-01-29")
	if got := AverageLength(events, 30); got != 30 {
		t.Errorf("expected prior 30 to be retained, got %d", got)
	}
	if got := AverageLength(nil, 0); got != 28 {
		t.Errorf("expected default 28 with no prior, got %d", got)
	}
}

func TestAverageLength_AllSamplesRejected(t *testing.T) {
	// Three events but every delta implausible: prior stands.
	events := starts("2024-01-01", "2024-01-03", "2024-06-01")
	if got := AverageLength(events, 28); got != 28 {
		t.Errorf("expected prior 28, got %d", got)
	}
}

func TestAveragePeriodDuration(t *testing.T) {
	events := []models.CycleEvent{
		{Date: "2024-01-01", Kind: models.EventStart},
		{Date: "2024-01-04", Kind: models.EventEnd}, // 4 days
		{Date: "2024-01-29", Kind: models.EventStart},
		{Date: "2024-02-03", Kind: models.EventEnd}, // 6 days
	}
	if got := AveragePeriodDuration(events, 5); got != 5 {
		t.Errorf("expected average duration 5, got %d", got)
	}

	if got := AveragePeriodDuration(nil, 0); got != 5 {
		t.Errorf("expected default duration 5, got %d", got)
	}
}
