package models

// EventKind marks a cycle event as a period start or end.
type EventKind string

const (
	EventStart EventKind = "start"
	EventEnd   EventKind = "end"
)

// CycleEvent is one period marker. Events are immutable once logged; the
// only rewrite the tracker performs is synthesizing a missing end when a new
// start is logged while an earlier one is still open.
type CycleEvent struct {
	Date string    `json:"date"` // YYYY-MM-DD
	Kind EventKind `json:"kind"`
}

// Phase is one of the four menstrual-cycle segments used to color dates and
// adjust metabolic targets.
type Phase string

const (
	PhaseMenstrual  Phase = "menstrual"
	PhaseFollicular Phase = "follicular"
	PhaseOvulation  Phase = "ovulation"
	PhaseLuteal     Phase = "luteal"
)
