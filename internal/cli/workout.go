package cli

import (
	"fmt"

	"github.com/julianstephens/cyra/internal/models"
)

type WorkoutCmd struct {
	Type      string `arg:"" help:"Workout type (run, lift, yoga, ...)."`
	Duration  int    `short:"m" help:"Duration in minutes." required:""`
	Intensity string `short:"i" help:"Intensity (low|medium|high)." default:"medium"`
	Calories  int    `short:"c" help:"Estimated calories burned."`
	Date      string `short:"d" help:"Date to log on (YYYY-MM-DD), defaults to today."`
}

func (c *WorkoutCmd) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be greater than zero")
	}
	if c.Calories < 0 {
		return fmt.Errorf("calories burned must not be negative")
	}
	switch c.Intensity {
	case "low", "medium", "high":
	default:
		return fmt.Errorf("intensity must be low, medium, or high")
	}
	return nil
}

func (c *WorkoutCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	entry := models.WorkoutEntry{
		Type:           c.Type,
		DurationMin:    c.Duration,
		Intensity:      c.Intensity,
		CaloriesBurned: c.Calories,
	}

	before := len(trk.WorkoutsOn(date))
	trk.LogWorkout(date, entry)
	PrintWarning(trk)
	if len(trk.WorkoutsOn(date)) == before {
		return fmt.Errorf("workout entry was rejected, check the values")
	}

	fmt.Printf("Logged %s (%d min) on %s.\n", c.Type, c.Duration, date)
	return nil
}
