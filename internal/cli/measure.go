package cli

import "fmt"

type WeightCmd struct {
	Kg   float64 `arg:"" help:"Weight in kilograms."`
	Date string  `short:"d" help:"Date to log on (YYYY-MM-DD), defaults to today."`
}

func (c *WeightCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	trk.SetWeight(date, c.Kg)
	PrintWarning(trk)
	if trk.WeightOn(date) != c.Kg {
		return fmt.Errorf("weight %.1f kg was rejected, plausible range is 20-400", c.Kg)
	}

	fmt.Printf("Logged %.1f kg on %s.\n", c.Kg, date)
	if date == trk.Today() {
		est := trk.MetabolicEstimate(date)
		fmt.Printf("Updated TDEE: %d kcal (%s).\n", est.TDEE, est.Method)
	}
	return nil
}

type WaterCmd struct {
	Ml int `arg:"" help:"Amount of water in milliliters."`
}

func (c *WaterCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	today := trk.Today()
	before := trk.WaterOn(today)
	trk.AddWater(c.Ml)
	PrintWarning(trk)
	if trk.WaterOn(today) == before {
		return fmt.Errorf("water amount %d ml was rejected, a single pour must be 1-5000", c.Ml)
	}

	goal := trk.Settings().WaterGoalML
	fmt.Printf("Logged %d ml. Today: %d / %d ml.\n", c.Ml, trk.WaterOn(today), goal)
	return nil
}

type StepsCmd struct {
	Count int    `arg:"" help:"Step count for the day."`
	Date  string `short:"d" help:"Date to log on (YYYY-MM-DD), defaults to today."`
}

func (c *StepsCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	trk.SetSteps(date, c.Count)
	PrintWarning(trk)
	if trk.StepsOn(date) != c.Count {
		return fmt.Errorf("step count %d was rejected", c.Count)
	}

	fmt.Printf("Logged %d steps on %s.\n", c.Count, date)
	return nil
}

type SymptomCmd struct {
	Name string `arg:"" help:"Symptom tag (cramps, headache, ...)."`
	Date string `short:"d" help:"Date to log on (YYYY-MM-DD), defaults to today."`
}

func (c *SymptomCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	before := len(trk.SymptomsOn(date))
	trk.LogSymptom(date, c.Name)
	PrintWarning(trk)
	if len(trk.SymptomsOn(date)) == before {
		fmt.Printf("Symptom %q was already logged on %s.\n", c.Name, date)
		return nil
	}

	fmt.Printf("Logged symptom %q on %s.\n", c.Name, date)
	return nil
}
