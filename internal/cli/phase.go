package cli

import (
	"fmt"

	"github.com/julianstephens/cyra/internal/models"
)

type PhaseCmd struct {
	Date string `arg:"" optional:"" help:"Date to resolve (YYYY-MM-DD), defaults to today. Future dates are projected."`
	JSON bool   `help:"Output as JSON."`
}

type phaseReport struct {
	Date        string       `json:"date"`
	Phase       models.Phase `json:"phase"`
	CycleDay    int          `json:"cycle_day"`
	NextPeriod  string       `json:"next_period,omitempty"`
	AvgLength   int          `json:"avg_length"`
	AvgDuration int          `json:"avg_duration"`
	Events      int          `json:"events"`
}

func (c *PhaseCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	avgLength, avgDuration := trk.CycleStats()
	report := phaseReport{
		Date:        date,
		Phase:       trk.PhaseForDate(date),
		CycleDay:    trk.CycleDay(date),
		NextPeriod:  trk.NextPeriod(),
		AvgLength:   avgLength,
		AvgDuration: avgDuration,
		Events:      len(trk.CycleEvents()),
	}

	if c.JSON {
		return PrintJSON(report)
	}

	if report.Events == 0 {
		fmt.Println("No cycle history yet. Log a period start with 'cyra period start'.")
	}
	fmt.Printf("%s is cycle day %d (%s phase).\n", report.Date, report.CycleDay, report.Phase)
	if report.NextPeriod != "" {
		fmt.Printf("Next period predicted around %s.\n", report.NextPeriod)
	}
	fmt.Printf("Averages: %d day cycle, %d day period (%d logged events).\n",
		report.AvgLength, report.AvgDuration, report.Events)
	return nil
}

type TdeeCmd struct {
	Date string `arg:"" optional:"" help:"Date to estimate for (YYYY-MM-DD), defaults to today."`
	JSON bool   `help:"Output as JSON."`
}

func (c *TdeeCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	est := trk.MetabolicEstimate(date)
	if c.JSON {
		return PrintJSON(struct {
			Date          string  `json:"date"`
			BMR           int     `json:"bmr"`
			TDEE          int     `json:"tdee"`
			Method        string  `json:"method"`
			DeficitTarget int     `json:"deficit_target"`
			WeightKG      float64 `json:"weight_kg"`
		}{date, est.BMR, est.TDEE, string(est.Method), trk.DeficitTarget(date), trk.WeightOn(date)})
	}

	fmt.Printf("Estimate for %s (%.1f kg, %s phase):\n", date, trk.WeightOn(date), trk.PhaseForDate(date))
	fmt.Printf("  BMR:     %d kcal (%s)\n", est.BMR, est.Method)
	fmt.Printf("  TDEE:    %d kcal\n", est.TDEE)
	fmt.Printf("  Deficit: %d kcal target\n", trk.DeficitTarget(date))
	return nil
}
