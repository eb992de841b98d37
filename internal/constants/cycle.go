package constants

const (
	// DefaultCycleLength is the assumed cycle length (days) until enough
	// period starts have been logged to learn a personal average.
	DefaultCycleLength = 28

	// DefaultPeriodLength is the assumed bleeding duration in days. It is
	// also the offset used when a forgotten period is auto-closed.
	DefaultPeriodLength = 5

	// MaxMenstrualDays caps how long a date keeps the menstrual
	// classification when the user never logs a period end.
	MaxMenstrualDays = 7

	// MinPlausibleCycleDays and MaxPlausibleCycleDays bound the cycle-length
	// samples accepted into the learned average. Samples outside
	// (min, max) are treated as logging gaps or spotting, not real cycles.
	MinPlausibleCycleDays = 15
	MaxPlausibleCycleDays = 50

	// MinEventsForEstimate is the number of logged cycle events required
	// before the average cycle length is recomputed.
	MinEventsForEstimate = 3

	// Phase day boundaries (1-indexed cycle days). Luteal absorbs every day
	// past the ovulation window up to the learned cycle length.
	MenstrualEndDay  = 5
	FollicularEndDay = 13
	OvulationEndDay  = 17
)
