package cli

import "fmt"

type PeriodStartCmd struct {
	Date string `arg:"" optional:"" help:"Start date (YYYY-MM-DD), defaults to today."`
}

func (c *PeriodStartCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	before := len(trk.CycleEvents())
	trk.LogPeriodStart(date)
	PrintWarning(trk)
	if len(trk.CycleEvents()) == before {
		fmt.Printf("Period start on %s was already logged.\n", date)
		return nil
	}

	avgLength, _ := trk.CycleStats()
	fmt.Printf("Logged period start on %s.\n", date)
	fmt.Printf("Next period predicted around %s (cycle length %d days).\n", trk.NextPeriod(), avgLength)
	return nil
}

type PeriodEndCmd struct {
	Date string `arg:"" optional:"" help:"End date (YYYY-MM-DD), defaults to today."`
}

func (c *PeriodEndCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	before := len(trk.CycleEvents())
	trk.LogPeriodEnd(date)
	PrintWarning(trk)
	if len(trk.CycleEvents()) == before {
		if trk.Warning() == "" {
			fmt.Printf("Period end on %s was already logged.\n", date)
		}
		return nil
	}

	fmt.Printf("Logged period end on %s.\n", date)
	return nil
}
