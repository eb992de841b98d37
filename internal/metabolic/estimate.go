package metabolic

import (
	"math"
	"time"

	"github.com/julianstephens/cyra/internal/constants"
	"github.com/julianstephens/cyra/internal/models"
	"github.com/julianstephens/cyra/internal/utils"
)

// activityMultipliers maps activity levels to their TDEE multiplier. This is
// the single source of truth for valid levels, also used by input
// validation on profile updates.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary: 1.20,
	models.ActivityLight:     1.375,
	models.ActivityModerate:  1.55,
	models.ActivityActive:    1.725,
	models.ActivityAthlete:   1.90,
}

// Method records which formula produced an estimate.
type Method string

const (
	MethodKatchMcArdle Method = "katch-mcardle"
	MethodMifflin      Method = "mifflin-st-jeor"
)

// Estimate is the derived energy expenditure for one date.
type Estimate struct {
	BMR    int    `json:"bmr"`
	TDEE   int    `json:"tdee"`
	Method Method `json:"method"`
}

// ActivityMultiplier returns the multiplier for a level, defaulting to
// moderate for unset or unrecognized values.
func ActivityMultiplier(level models.ActivityLevel) float64 {
	if mult, ok := activityMultipliers[level]; ok {
		return mult
	}
	return activityMultipliers[models.ActivityModerate]
}

// IsValidActivityLevel reports whether level is a recognized activity level.
func IsValidActivityLevel(level models.ActivityLevel) bool {
	_, ok := activityMultipliers[level]
	return ok
}

// ForDate computes the basal and total daily energy expenditure for a date.
//
// Katch-McArdle is the primary estimator whenever a body-fat percentage is
// on file, since it keys off lean mass and tracks composition changes.
// Without body fat it falls back to Mifflin-St Jeor with a flat 15%
// downward adjustment. The luteal phase adds a fixed thermic surcharge on
// top of the activity-scaled basal rate.
func ForDate(profile models.Profile, weightKG float64, phase models.Phase) Estimate {
	var bmr float64
	method := MethodKatchMcArdle
	if profile.BodyFatPercent > 0 {
		bmr = katchMcArdleBMR(weightKG, profile.BodyFatPercent)
	} else {
		bmr = mifflinBMR(weightKG, profile.HeightCM, ageFromDOB(profile.DateOfBirth, time.Now()))
		method = MethodMifflin
	}

	tdee := int(math.Floor(bmr * ActivityMultiplier(profile.Activity)))
	if phase == models.PhaseLuteal {
		tdee += constants.LutealSurchargeKcal
	}

	return Estimate{
		BMR:    int(math.Round(bmr)),
		TDEE:   tdee,
		Method: method,
	}
}

// DeficitTarget is the daily calorie target for a weight-loss goal: 15%
// below the phase-adjusted maintenance. Exposed as a separate query so the
// raw TDEE stays an expenditure number.
func DeficitTarget(est Estimate) int {
	return int(math.Round(float64(est.TDEE) * constants.DeficitFactor))
}

// katchMcArdleBMR derives the basal rate from lean body mass.
func katchMcArdleBMR(weightKG, bodyFatPercent float64) float64 {
	lbm := weightKG * (1 - bodyFatPercent/100)
	return constants.KatchBase + constants.KatchPerKgLBM*lbm
}

// mifflinBMR is the female Mifflin-St Jeor form with the flat adjustment
// applied. It runs high without composition data, hence the correction.
func mifflinBMR(weightKG, heightCM float64, age int) float64 {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age) - 161
	return bmr * constants.MifflinAdjustment
}

// ageFromDOB derives whole years from a YYYY-MM-DD date of birth at the
// reference time. Implausible or missing values fall back to 30 so the
// Mifflin estimate stays usable rather than failing the whole estimate.
func ageFromDOB(dob string, now time.Time) int {
	t, err := utils.ParseDate(dob)
	if err != nil {
		return 30
	}
	age := now.Year() - t.Year()
	if now.Before(t.AddDate(age, 0, 0)) {
		age--
	}
	if age < 0 || age > 130 {
		return 30
	}
	return age
}
