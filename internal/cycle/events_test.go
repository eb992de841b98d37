package cycle

import (
	"testing"

	"github.com/julianstephens/cyra/internal/models"
)

func TestAddStart_Idempotent(t *testing.T) {
	events, changed := AddStart(nil, "2024-01-01")
	if !changed {
		t.Fatalf("expected first AddStart to change the log")
	}

	again, changed := AddStart(events, "2024-01-01")
	if changed {
		t.Errorf("expected second AddStart on same date to be a no-op")
	}
	if len(again) != len(events) {
		t.Errorf("expected log length %d, got %d", len(events), len(again))
	}
}

func TestAddStart_AutoClosesOpenPeriod(t *testing.T) {
	events, _ := AddStart(nil, "2024-01-01")
	events, changed := AddStart(events, "2024-01-20")
	if !changed {
		t.Fatalf("expected second start to be recorded")
	}

	want := []models.CycleEvent{
		{Date: "2024-01-01", Kind: models.EventStart},
		{Date: "2024-01-06", Kind: models.EventEnd},
		{Date: "2024-01-20", Kind: models.EventStart},
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(events), events)
	}
	for i, ev := range want {
		if events[i] != ev {
			t.Errorf("event %d: expected %+v, got %+v", i, ev, events[i])
		}
	}
}

func TestAddStart_NoAutoCloseWhenSynthesizedDateTooLate(t *testing.T) {
	// Second start only 3 days after the first: start+5 would land after it,
	// so no end is synthesized.
	events, _ := AddStart(nil, "2024-01-01")
	events, _ = AddStart(events, "2024-01-04")

	for _, ev := range events {
		if ev.Kind == models.EventEnd {
			t.Fatalf("expected no synthesized end, got %+v", ev)
		}
	}
}

func TestAddEnd_ClosesOpenStart(t *testing.T) {
	events, _ := AddStart(nil, "2024-01-01")
	events, changed := AddEnd(events, "2024-01-04")
	if !changed {
		t.Fatalf("expected end to be recorded")
	}
	if !HasEvent(events, "2024-01-04", models.EventEnd) {
		t.Errorf("expected end event on 2024-01-04")
	}
}

func TestAddEnd_NoOpWithoutOpenStart(t *testing.T) {
	events, changed := AddEnd(nil, "2024-01-04")
	if changed || len(events) != 0 {
		t.Errorf("expected orphan end to be ignored, got %v", events)
	}

	// A start that is already closed is not eligible either.
	events, _ = AddStart(nil, "2024-01-01")
	events, _ = AddEnd(events, "2024-01-05")
	events, changed = AddEnd(events, "2024-01-08")
	if changed {
		t.Errorf("expected end on closed period to be ignored, got %v", events)
	}
}

func TestAddEnd_Idempotent(t *testing.T) {
	events, _ := AddStart(nil, "2024-01-01")
	events, _ = AddEnd(events, "2024-01-05")
	_, changed := AddEnd(events, "2024-01-05")
	if changed {
		t.Errorf("expected duplicate end to be a no-op")
	}
}

func TestEventLog_StaysSorted(t *testing.T) {
	var events []models.CycleEvent
	for _, date := range []string{"2024-03-01", "2024-01-01", "2024-02-01"} {
		events, _ = AddStart(events, date)
	}

	for i := 1; i < len(events); i++ {
		if events[i].Date < events[i-1].Date {
			t.Fatalf("log not sorted at %d: %v", i, events)
		}
	}
}
