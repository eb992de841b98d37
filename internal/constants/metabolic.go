package constants

const (
	// Katch-McArdle coefficients: bmr = KatchBase + KatchPerKgLBM * leanMassKg.
	KatchBase     = 370.0
	KatchPerKgLBM = 21.6

	// MifflinAdjustment is the flat downward correction applied to the
	// Mifflin-St Jeor estimate, which tends to run high without
	// body-composition data.
	MifflinAdjustment = 0.85

	// LutealSurchargeKcal is the extra daily expenditure credited during the
	// luteal phase (elevated basal temperature).
	LutealSurchargeKcal = 150

	// DeficitFactor is the fraction of adjusted maintenance used when a
	// weight-loss target is requested (15% below maintenance).
	DeficitFactor = 0.85
)
