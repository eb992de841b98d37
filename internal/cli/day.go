package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/cyra/internal/metabolic"
	"github.com/julianstephens/cyra/internal/models"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD), defaults to today."`
	JSON bool   `help:"Output as JSON."`
}

type daySummary struct {
	Date          string                  `json:"date"`
	Phase         models.Phase            `json:"phase"`
	CycleDay      int                     `json:"cycle_day"`
	Totals        models.DailyTotals      `json:"totals"`
	Estimate      metabolic.Estimate      `json:"estimate"`
	DeficitTarget int                     `json:"deficit_target"`
	WaterML       int                     `json:"water_ml"`
	WaterGoalML   int                     `json:"water_goal_ml"`
	Steps         int                     `json:"steps"`
	Symptoms      []string                `json:"symptoms,omitempty"`
	Nutrition     []models.NutritionEntry `json:"nutrition,omitempty"`
	Workouts      []models.WorkoutEntry   `json:"workouts,omitempty"`
}

func (c *DayCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	summary := daySummary{
		Date:          date,
		Phase:         trk.PhaseForDate(date),
		CycleDay:      trk.CycleDay(date),
		Totals:        trk.DailyTotals(date),
		Estimate:      trk.MetabolicEstimate(date),
		DeficitTarget: trk.DeficitTarget(date),
		WaterML:       trk.WaterOn(date),
		WaterGoalML:   trk.Settings().WaterGoalML,
		Steps:         trk.StepsOn(date),
		Symptoms:      trk.SymptomsOn(date),
		Nutrition:     trk.NutritionOn(date),
		Workouts:      trk.WorkoutsOn(date),
	}

	if c.JSON {
		return PrintJSON(summary)
	}

	fmt.Printf("%s  (cycle day %d, %s phase)\n\n", summary.Date, summary.CycleDay, summary.Phase)
	fmt.Printf("Energy:  %d / %d kcal eaten, %d kcal burned in workouts\n",
		summary.Totals.Calories, summary.Estimate.TDEE, summary.Totals.CaloriesBurned)
	fmt.Printf("Target:  %d kcal (deficit), estimator %s\n", summary.DeficitTarget, summary.Estimate.Method)
	fmt.Printf("Macros:  %.1fg protein, %.1fg carbs, %.1fg fat, %.1fg fiber\n",
		summary.Totals.ProteinG, summary.Totals.CarbsG, summary.Totals.FatG, summary.Totals.FiberG)
	fmt.Printf("Water:   %d / %d ml\n", summary.WaterML, summary.WaterGoalML)
	if summary.Steps > 0 {
		fmt.Printf("Steps:   %d\n", summary.Steps)
	}
	if len(summary.Symptoms) > 0 {
		fmt.Printf("Symptoms: %s\n", strings.Join(summary.Symptoms, ", "))
	}

	if len(summary.Nutrition) > 0 {
		fmt.Println("\nFood:")
		for _, e := range summary.Nutrition {
			fmt.Printf("  %-24s %5d kcal\n", e.Name, e.Calories)
		}
	}
	if len(summary.Workouts) > 0 {
		fmt.Println("\nWorkouts:")
		for _, w := range summary.Workouts {
			fmt.Printf("  %-16s %3d min  %s  %d kcal\n", w.Type, w.DurationMin, w.Intensity, w.CaloriesBurned)
		}
	}
	return nil
}
