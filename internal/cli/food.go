package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/cyra/internal/models"
)

type FoodCmd struct {
	Name     string  `arg:"" help:"Food name, or a library preset name with --preset."`
	Calories int     `short:"c" help:"Calories." default:"-1"`
	Protein  float64 `short:"p" help:"Protein in grams."`
	Carbs    float64 `help:"Carbohydrates in grams."`
	Fat      float64 `short:"f" help:"Fat in grams."`
	Fiber    float64 `help:"Fiber in grams."`
	Preset   bool    `help:"Look the food up in the quick-add library instead of passing macros."`
	Date     string  `short:"d" help:"Date to log on (YYYY-MM-DD), defaults to today."`
}

func (c *FoodCmd) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("food name must not be empty")
	}
	if !c.Preset && c.Calories < 0 {
		return fmt.Errorf("--calories is required unless --preset is set")
	}
	return nil
}

func (c *FoodCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	entry := models.NutritionEntry{
		Name:     c.Name,
		Calories: c.Calories,
		ProteinG: c.Protein,
		CarbsG:   c.Carbs,
		FatG:     c.Fat,
		FiberG:   c.Fiber,
	}
	if c.Preset {
		preset, ok := findPreset(trk.Library(), c.Name)
		if !ok {
			return fmt.Errorf("no library preset named %q", c.Name)
		}
		entry = models.NutritionEntry{
			Name:     preset.Name,
			Calories: preset.Calories,
			ProteinG: preset.ProteinG,
			CarbsG:   preset.CarbsG,
			FatG:     preset.FatG,
			FiberG:   preset.FiberG,
		}
	}

	before := len(trk.NutritionOn(date))
	trk.LogFood(date, entry)
	PrintWarning(trk)
	if len(trk.NutritionOn(date)) == before {
		return fmt.Errorf("food entry was rejected, check the values")
	}

	totals := trk.DailyTotals(date)
	fmt.Printf("Logged %s (%d kcal) on %s. Day total: %d kcal.\n", entry.Name, entry.Calories, date, totals.Calories)
	return nil
}

func findPreset(library []models.FoodPreset, name string) (models.FoodPreset, bool) {
	for _, preset := range library {
		if strings.EqualFold(preset.Name, name) {
			return preset, true
		}
	}
	return models.FoodPreset{}, false
}

type LibraryCmd struct {
	JSON bool `help:"Output as JSON."`
}

func (c *LibraryCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	library := trk.Library()
	if c.JSON {
		return PrintJSON(library)
	}

	if len(library) == 0 {
		fmt.Println("The quick-add library is empty. Logged foods are added automatically.")
		return nil
	}

	fmt.Printf("Quick-add library (%d foods):\n\n", len(library))
	for _, preset := range library {
		fmt.Printf("  %-24s %5d kcal  %5.1fg protein  %5.1fg carbs  %5.1fg fat  %5.1fg fiber\n",
			preset.Name, preset.Calories, preset.ProteinG, preset.CarbsG, preset.FatG, preset.FiberG)
	}
	return nil
}
