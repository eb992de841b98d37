package cli

import (
	"fmt"

	"github.com/julianstephens/cyra/internal/metabolic"
	"github.com/julianstephens/cyra/internal/models"
)

type ProfileShowCmd struct {
	JSON bool `help:"Output as JSON."`
}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	profile := trk.Profile()
	if c.JSON {
		return PrintJSON(profile)
	}

	fmt.Println("Profile:")
	fmt.Printf("  Name:      %s\n", profile.Name)
	if profile.DateOfBirth != "" {
		fmt.Printf("  Born:      %s\n", profile.DateOfBirth)
	}
	fmt.Printf("  Height:    %.1f cm\n", profile.HeightCM)
	fmt.Printf("  Weight:    %.1f kg\n", profile.WeightKG)
	if profile.BodyFatPercent > 0 {
		fmt.Printf("  Body fat:  %.1f%%\n", profile.BodyFatPercent)
	} else {
		fmt.Println("  Body fat:  unknown (TDEE uses the Mifflin-St Jeor estimator)")
	}
	fmt.Printf("  Activity:  %s (x%.3f)\n", profile.Activity, metabolic.ActivityMultiplier(profile.Activity))
	fmt.Printf("  Goals:     %d kcal, %.0fg protein, %d ml water\n",
		profile.Goals.Calories, profile.Goals.ProteinG, profile.Goals.WaterML)
	return nil
}

type ProfileSetCmd struct {
	Name     string  `help:"Display name."`
	Dob      string  `help:"Date of birth (YYYY-MM-DD), used by the Mifflin-St Jeor estimator."`
	Height   float64 `help:"Height in centimeters."`
	Weight   float64 `help:"Current weight in kilograms."`
	BodyFat  float64 `help:"Body fat percent. 0 means unknown." default:"-1"`
	Activity string  `help:"Activity level (sedentary|light|moderate|active|athlete)."`
	Calories int     `help:"Daily calorie goal."`
	Protein  float64 `help:"Daily protein goal in grams."`
	Water    int     `help:"Daily water goal in milliliters."`
}

func (c *ProfileSetCmd) Validate() error {
	if c.Activity != "" && !metabolic.IsValidActivityLevel(models.ActivityLevel(c.Activity)) {
		return fmt.Errorf("activity must be sedentary, light, moderate, active, or athlete")
	}
	return nil
}

// Run updates only the fields that were passed; the rest keep their current
// values. The tracker still validates the merged profile as a whole.
func (c *ProfileSetCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	profile := trk.Profile()
	if c.Name != "" {
		profile.Name = c.Name
	}
	if c.Dob != "" {
		profile.DateOfBirth = c.Dob
	}
	if c.Height > 0 {
		profile.HeightCM = c.Height
	}
	if c.Weight > 0 {
		profile.WeightKG = c.Weight
	}
	if c.BodyFat >= 0 {
		profile.BodyFatPercent = c.BodyFat
	}
	if c.Activity != "" {
		profile.Activity = models.ActivityLevel(c.Activity)
	}
	if c.Calories > 0 {
		profile.Goals.Calories = c.Calories
	}
	if c.Protein > 0 {
		profile.Goals.ProteinG = c.Protein
	}
	if c.Water > 0 {
		profile.Goals.WaterML = c.Water
	}

	trk.SetProfile(profile)
	PrintWarning(trk)
	if trk.Profile() != profile {
		return fmt.Errorf("profile update was rejected, check the values")
	}

	fmt.Println("Profile updated.")
	today := trk.Today()
	est := trk.MetabolicEstimate(today)
	fmt.Printf("TDEE today: %d kcal (%s), deficit target %d kcal.\n",
		est.TDEE, est.Method, trk.DeficitTarget(today))
	return nil
}
