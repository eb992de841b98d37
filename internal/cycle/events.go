package cycle

import (
	"sort"

	"github.com/julianstephens/cyra/internal/constants"
	"github.com/julianstephens/cyra/internal/models"
	"github.com/julianstephens/cyra/internal/utils"
)

// AddStart inserts a period-start marker into the event log. It returns the
// updated log and whether anything changed. Logging a start on a date that
// already has one is a no-op.
//
// When the most recent event is a still-open start dated before the new one,
// a closing end is synthesized at openStart+DefaultPeriodLength days, but
// only when that synthesized date still lands strictly before the new start.
func AddStart(events []models.CycleEvent, date string) ([]models.CycleEvent, bool) {
	if HasEvent(events, date, models.EventStart) {
		return events, false
	}

	updated := make([]models.CycleEvent, 0, len(events)+2)
	updated = append(updated, events...)

	if open, ok := openStart(updated); ok && open.Date < date {
		synthesized := utils.AddDays(open.Date, constants.DefaultPeriodLength)
		if synthesized < date {
			updated = append(updated, models.CycleEvent{Date: synthesized, Kind: models.EventEnd})
		}
	}

	updated = append(updated, models.CycleEvent{Date: date, Kind: models.EventStart})
	sortEvents(updated)
	return updated, true
}

// AddEnd inserts a period-end marker. It scans backward for the nearest
// start dated on-or-before the end date that has not already been closed.
// Without an eligible open start the call changes nothing: an end with no
// matching start would be an orphan the phase resolver could never anchor.
func AddEnd(events []models.CycleEvent, date string) ([]models.CycleEvent, bool) {
	if HasEvent(events, date, models.EventEnd) {
		return events, false
	}

	eligible := false
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind != models.EventStart || events[i].Date > date {
			continue
		}
		if i+1 < len(events) && events[i+1].Kind == models.EventEnd {
			// Nearest start on-or-before the date is already closed.
			break
		}
		eligible = true
		break
	}
	if !eligible {
		return events, false
	}

	updated := make([]models.CycleEvent, 0, len(events)+1)
	updated = append(updated, events...)
	updated = append(updated, models.CycleEvent{Date: date, Kind: models.EventEnd})
	sortEvents(updated)
	return updated, true
}

// HasEvent reports whether an event of the given kind exists on the date.
func HasEvent(events []models.CycleEvent, date string, kind models.EventKind) bool {
	for _, ev := range events {
		if ev.Date == date && ev.Kind == kind {
			return true
		}
	}
	return false
}

// LastStartOnOrBefore returns the most recent start event dated on-or-before
// date, along with its index in the sorted log.
func LastStartOnOrBefore(events []models.CycleEvent, date string) (models.CycleEvent, int, bool) {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == models.EventStart && events[i].Date <= date {
			return events[i], i, true
		}
	}
	return models.CycleEvent{}, -1, false
}

// LastStart returns the most recent start event in the log.
func LastStart(events []models.CycleEvent) (models.CycleEvent, bool) {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == models.EventStart {
			return events[i], true
		}
	}
	return models.CycleEvent{}, false
}

// openStart returns the trailing start event when it has no closing end yet.
func openStart(events []models.CycleEvent) (models.CycleEvent, bool) {
	if len(events) == 0 {
		return models.CycleEvent{}, false
	}
	last := events[len(events)-1]
	if last.Kind != models.EventStart {
		return models.CycleEvent{}, false
	}
	return last, true
}

// sortEvents sorts ascending by date. On date ties an end sorts before a
// start so a period closing on the same day a new one begins reads in
// chronological order.
func sortEvents(events []models.CycleEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Kind == models.EventEnd && events[j].Kind == models.EventStart
	})
}
