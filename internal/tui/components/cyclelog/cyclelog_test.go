package cyclelog

import (
	"testing"

	"github.com/julianstephens/cyra/internal/models"
)

func TestItemDescriptionRelativeDays(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-03-10", "today"},
		{"2024-03-09", "yesterday"},
		{"2024-03-01", "9 days ago"},
		{"2024-03-15", "in the future"},
	}
	for _, tt := range tests {
		item := Item{Event: models.CycleEvent{Date: tt.date, Kind: models.EventStart}, Today: "2024-03-10"}
		if got := item.Description(); got != tt.want {
			t.Errorf("description for %s: expected %q, got %q", tt.date, tt.want, got)
		}
	}
}

func TestSetEventsNewestFirst(t *testing.T) {
	m := New(80, 24)
	m.SetEvents([]models.CycleEvent{
		{Date: "2024-01-01", Kind: models.EventStart},
		{Date: "2024-01-06", Kind: models.EventEnd},
		{Date: "2024-01-30", Kind: models.EventStart},
	}, "2024-02-01", 29, 5, "2024-02-28")

	items := m.list.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	first := items[0].(Item)
	if first.Event.Date != "2024-01-30" {
		t.Errorf("expected newest event first, got %s", first.Event.Date)
	}
}
