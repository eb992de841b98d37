package cycle

import (
	"github.com/julianstephens/cyra/internal/constants"
	"github.com/julianstephens/cyra/internal/models"
	"github.com/julianstephens/cyra/internal/utils"
)

// PhaseForDate resolves the phase active on a date, which may lie
// arbitrarily far in the past or future relative to the logged history.
//
// The anchor is the most recent start on-or-before the date; the cycle day
// wraps at the learned average length, assuming perfect periodicity for
// projection. A logged end can stretch the menstrual classification past the
// day-5 boundary, but never past MaxMenstrualDays: a period the user forgot
// to close should not color a whole month.
func PhaseForDate(date string, events []models.CycleEvent, avgLen int) models.Phase {
	if avgLen <= 0 {
		avgLen = constants.DefaultCycleLength
	}

	start, idx, ok := LastStartOnOrBefore(events, date)
	if !ok {
		// No period history on-or-before this date.
		return models.PhaseFollicular
	}

	dayOfBleed := utils.DaysBetween(start.Date, date) + 1
	if end, found := closingEnd(events, idx); found {
		if date <= end && dayOfBleed <= constants.MaxMenstrualDays {
			return models.PhaseMenstrual
		}
	}

	cycleDay := ((dayOfBleed - 1) % avgLen) + 1
	switch {
	case cycleDay <= constants.MenstrualEndDay:
		return models.PhaseMenstrual
	case cycleDay <= constants.FollicularEndDay:
		return models.PhaseFollicular
	case cycleDay <= constants.OvulationEndDay:
		return models.PhaseOvulation
	default:
		return models.PhaseLuteal
	}
}

// CycleDayFor returns the 1-indexed day within the current (possibly
// projected) cycle, or 0 when no start precedes the date.
func CycleDayFor(date string, events []models.CycleEvent, avgLen int) int {
	if avgLen <= 0 {
		avgLen = constants.DefaultCycleLength
	}
	start, _, ok := LastStartOnOrBefore(events, date)
	if !ok {
		return 0
	}
	return (utils.DaysBetween(start.Date, date) % avgLen) + 1
}

// NextPeriodAfter predicts the first period start strictly after the given
// date by projecting whole cycles forward from the last logged start.
// Returns "" when the log holds no starts.
func NextPeriodAfter(date string, events []models.CycleEvent, avgLen int) string {
	if avgLen <= 0 {
		avgLen = constants.DefaultCycleLength
	}
	start, ok := LastStart(events)
	if !ok {
		return ""
	}

	next := utils.AddDays(start.Date, avgLen)
	if next > date {
		return next
	}
	elapsed := utils.DaysBetween(start.Date, date)
	cycles := elapsed/avgLen + 1
	return utils.AddDays(start.Date, cycles*avgLen)
}

// closingEnd returns the end event that closes the start at startIdx, which
// is its immediate successor when that successor is an end.
func closingEnd(events []models.CycleEvent, startIdx int) (string, bool) {
	if startIdx+1 < len(events) && events[startIdx+1].Kind == models.EventEnd {
		return events[startIdx+1].Date, true
	}
	return "", false
}
