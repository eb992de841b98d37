package cycle

import (
	"math"

	"github.com/julianstephens/cyra/internal/constants"
	"github.com/julianstephens/cyra/internal/models"
	"github.com/julianstephens/cyra/internal/utils"
)

// AverageLength recomputes the learned cycle length from the event log.
// Fewer than MinEventsForEstimate events retains the prior estimate, so the
// default holds until real history accumulates. Deltas between consecutive
// starts outside the plausible range are discarded as logging gaps or
// spotting before the mean is taken.
func AverageLength(events []models.CycleEvent, prior int) int {
	if prior <= 0 {
		prior = constants.DefaultCycleLength
	}
	if len(events) < constants.MinEventsForEstimate {
		return prior
	}

	starts := startDates(events)
	accepted := make([]int, 0, len(starts))
	for i := 1; i < len(starts); i++ {
		delta := utils.DaysBetween(starts[i-1], starts[i])
		if delta > constants.MinPlausibleCycleDays && delta < constants.MaxPlausibleCycleDays {
			accepted = append(accepted, delta)
		}
	}
	if len(accepted) == 0 {
		return prior
	}

	var total int
	for _, d := range accepted {
		total += d
	}
	return int(math.Round(float64(total) / float64(len(accepted))))
}

// AveragePeriodDuration recomputes the learned bleeding duration from
// start/end pairs, counting both endpoints. Durations past ten days are
// discarded the same way implausible cycle lengths are.
func AveragePeriodDuration(events []models.CycleEvent, prior int) int {
	if prior <= 0 {
		prior = constants.DefaultPeriodLength
	}

	accepted := make([]int, 0, len(events)/2)
	for i, ev := range events {
		if ev.Kind != models.EventStart {
			continue
		}
		if i+1 >= len(events) || events[i+1].Kind != models.EventEnd {
			continue
		}
		duration := utils.DaysBetween(ev.Date, events[i+1].Date) + 1
		if duration > 0 && duration <= 10 {
			accepted = append(accepted, duration)
		}
	}
	if len(accepted) == 0 {
		return prior
	}

	var total int
	for _, d := range accepted {
		total += d
	}
	return int(math.Round(float64(total) / float64(len(accepted))))
}

func startDates(events []models.CycleEvent) []string {
	starts := make([]string, 0, len(events))
	for _, ev := range events {
		if ev.Kind == models.EventStart {
			starts = append(starts, ev.Date)
		}
	}
	return starts
}
