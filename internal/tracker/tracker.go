package tracker

import (
	"fmt"

	"github.com/julianstephens/cyra/internal/cycle"
	"github.com/julianstephens/cyra/internal/logger"
	"github.com/julianstephens/cyra/internal/metabolic"
	"github.com/julianstephens/cyra/internal/models"
	"github.com/julianstephens/cyra/internal/storage"
	"github.com/julianstephens/cyra/internal/utils"
)

// Reason tags a state-changed notification with the mutation that caused it.
type Reason string

const (
	ReasonPeriodStart Reason = "period_start"
	ReasonPeriodEnd   Reason = "period_end"
	ReasonWeight      Reason = "weight"
	ReasonFood        Reason = "food"
	ReasonWorkout     Reason = "workout"
	ReasonWater       Reason = "water"
	ReasonSteps       Reason = "steps"
	ReasonSymptom     Reason = "symptom"
	ReasonProfile     Reason = "profile"
	ReasonSettings    Reason = "settings"
)

// Snapshot is the plain data emitted to subscribers after every mutation.
// Renderers draw from it and never reach back into the tracker mid-update.
type Snapshot struct {
	Theme      string              `json:"theme"`
	Profile    models.Profile      `json:"profile"`
	Date       string              `json:"date"` // the "today" this snapshot describes
	Totals     models.DailyTotals  `json:"totals"`
	WaterML    int                 `json:"water_ml"`
	Phase      models.Phase        `json:"phase"`
	CycleDay   int                 `json:"cycle_day"`
	NextPeriod string              `json:"next_period"`
	Estimate   metabolic.Estimate  `json:"estimate"`
	Library    []models.FoodPreset `json:"library"`
	Warning    string              `json:"warning,omitempty"`
}

// Observer receives state-changed notifications.
type Observer func(reason Reason, snap Snapshot)

// Tracker is the single mutation gateway for the application state. All
// writes go through its methods: each one validates input, applies the
// change, recomputes derived cycle statistics, persists synchronously, and
// notifies subscribers. Execution is single-threaded (one bubbletea event
// loop), so no locking is needed.
type Tracker struct {
	store     storage.Provider
	state     models.State
	observers []Observer
	warning   string
}

// New loads persisted state from the provider and wraps it in a tracker.
func New(store storage.Provider) (*Tracker, error) {
	state, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return &Tracker{
		store: store,
		state: state,
	}, nil
}

// Subscribe registers an observer for state-changed notifications.
func (t *Tracker) Subscribe(obs Observer) {
	t.observers = append(t.observers, obs)
}

// Today returns today's date string in the configured timezone, falling
// back to the system zone when the setting is invalid.
func (t *Tracker) Today() string {
	today, err := utils.TodayInTimezone(t.state.Settings.Timezone)
	if err != nil {
		return utils.Today()
	}
	return today
}

// Snapshot builds the derived view of the given date.
func (t *Tracker) Snapshot(date string) Snapshot {
	return Snapshot{
		Theme:      t.state.Settings.Theme,
		Profile:    t.state.Profile,
		Date:       date,
		Totals:     t.DailyTotals(date),
		WaterML:    t.state.Logs.Water[date],
		Phase:      t.PhaseForDate(date),
		CycleDay:   cycle.CycleDayFor(date, t.state.Cycle.Events, t.state.Cycle.AvgLength),
		NextPeriod: cycle.NextPeriodAfter(date, t.state.Cycle.Events, t.state.Cycle.AvgLength),
		Estimate:   t.MetabolicEstimate(date),
		Library:    t.Library(),
		Warning:    t.warning,
	}
}

// afterMutation persists the state and notifies subscribers. A failed save
// is surfaced as a warning on the snapshot and the in-memory state stays
// authoritative; the mutation is not rolled back.
func (t *Tracker) afterMutation(reason Reason) {
	if err := t.store.Save(t.state); err != nil {
		logger.Error("Failed to persist state", "reason", reason, "error", err)
		t.warning = fmt.Sprintf("changes kept in memory but not saved: %v", err)
	}

	snap := t.Snapshot(t.Today())
	for _, obs := range t.observers {
		obs(reason, snap)
	}
}

// recomputeCycleStats refreshes the learned averages from the event log.
func (t *Tracker) recomputeCycleStats() {
	t.state.Cycle.AvgLength = cycle.AverageLength(t.state.Cycle.Events, t.state.Cycle.AvgLength)
	t.state.Cycle.AvgDuration = cycle.AveragePeriodDuration(t.state.Cycle.Events, t.state.Cycle.AvgDuration)
}
