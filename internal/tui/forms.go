package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/cyra/internal/models"
	"github.com/julianstephens/cyra/internal/utils"
	"github.com/julianstephens/cyra/internal/validation"
)

// customEntry is the sentinel option for logging food without a preset.
const customEntry = ""

type FoodFormModel struct {
	Preset   string
	Name     string
	Calories string
	Protein  string
	Carbs    string
	Fat      string
	Fiber    string
}

type WorkoutFormModel struct {
	Type      string
	Duration  string
	Intensity string
	Calories  string
}

type ProfileFormModel struct {
	Name        string
	DateOfBirth string
	Height      string
	Weight      string
	BodyFat     string
	Activity    models.ActivityLevel
}

type SettingsFormModel struct {
	Theme                string
	Timezone             string
	NotificationsEnabled bool
	WaterReminderMin     string
	WaterGoalML          string
}

// formTheme picks the huh theme matching the configured UI theme.
func formTheme(theme string) *huh.Theme {
	if theme == "light" {
		return huh.ThemeBase()
	}
	return huh.ThemeDracula()
}

// NewFoodForm creates the food logging form. With a non-empty quick-add
// library the first field selects a preset; choosing one skips the manual
// macro fields on submit.
func NewFoodForm(fm *FoodFormModel, library []models.FoodPreset, theme string) *huh.Form {
	var fields []huh.Field

	if len(library) > 0 {
		options := []huh.Option[string]{huh.NewOption("(custom entry)", customEntry)}
		for _, preset := range library {
			options = append(options, huh.NewOption(
				fmt.Sprintf("%s (%d kcal)", preset.Name, preset.Calories), preset.Name))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Preset").
			Options(options...).
			Value(&fm.Preset))
	}

	fields = append(fields,
		huh.NewInput().
			Title("Name").
			Value(&fm.Name).
			Validate(func(s string) error {
				if fm.Preset == customEntry && strings.TrimSpace(s) == "" {
					return fmt.Errorf("name cannot be empty")
				}
				return nil
			}),
		huh.NewInput().
			Title("Calories").
			Value(&fm.Calories).
			Validate(func(s string) error {
				if fm.Preset != customEntry && strings.TrimSpace(s) == "" {
					return nil
				}
				i, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("calories must be a whole number")
				}
				if i < 0 {
					return fmt.Errorf("calories cannot be negative")
				}
				return nil
			}),
		huh.NewInput().
			Title("Protein (g)").
			Value(&fm.Protein).
			Validate(optionalGrams),
		huh.NewInput().
			Title("Carbs (g)").
			Value(&fm.Carbs).
			Validate(optionalGrams),
		huh.NewInput().
			Title("Fat (g)").
			Value(&fm.Fat).
			Validate(optionalGrams),
		huh.NewInput().
			Title("Fiber (g)").
			Value(&fm.Fiber).
			Validate(optionalGrams),
	)

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(formTheme(theme))
}

// NewWorkoutForm creates the workout logging form.
func NewWorkoutForm(fm *WorkoutFormModel, theme string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Type").
				Value(&fm.Type).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("type cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Duration (min)").
				Value(&fm.Duration).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i <= 0 || i > validation.MaxWorkoutMin {
						return fmt.Errorf("duration must be between 1 and %d minutes", validation.MaxWorkoutMin)
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Intensity").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
				).
				Value(&fm.Intensity),
			huh.NewInput().
				Title("Calories burned").
				Value(&fm.Calories).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 0 {
						return fmt.Errorf("calories cannot be negative")
					}
					return nil
				}),
		),
	).WithTheme(formTheme(theme))
}

// NewProfileForm creates the profile editing form.
func NewProfileForm(fm *ProfileFormModel, theme string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name),
			huh.NewInput().
				Title("Date of birth (YYYY-MM-DD)").
				Description("Used by the fallback calorie estimator").
				Value(&fm.DateOfBirth).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !utils.IsValidDate(s) {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Height (cm)").
				Value(&fm.Height).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					f, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return err
					}
					if !validation.IsValidHeight(f) {
						return fmt.Errorf("height must be %.0f-%.0f cm", validation.MinHeightCM, validation.MaxHeightCM)
					}
					return nil
				}),
			huh.NewInput().
				Title("Weight (kg)").
				Value(&fm.Weight).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					f, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return err
					}
					if !validation.IsValidWeight(f) {
						return fmt.Errorf("weight must be %.0f-%.0f kg", validation.MinWeightKG, validation.MaxWeightKG)
					}
					return nil
				}),
			huh.NewInput().
				Title("Body fat (%)").
				Description("Leave empty if unknown").
				Value(&fm.BodyFat).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					f, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return err
					}
					if !validation.IsValidBodyFat(f) {
						return fmt.Errorf("body fat must be below 100%%")
					}
					return nil
				}),
			huh.NewSelect[models.ActivityLevel]().
				Title("Activity level").
				Options(
					huh.NewOption("Sedentary", models.ActivitySedentary),
					huh.NewOption("Light", models.ActivityLight),
					huh.NewOption("Moderate", models.ActivityModerate),
					huh.NewOption("Active", models.ActivityActive),
					huh.NewOption("Athlete", models.ActivityAthlete),
				).
				Value(&fm.Activity),
		),
	).WithTheme(formTheme(theme))
}

// NewSettingsForm creates the settings editing form.
func NewSettingsForm(fm *SettingsFormModel, theme string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Dark", "dark"),
					huh.NewOption("Light", "light"),
				).
				Value(&fm.Theme),
			huh.NewInput().
				Title("Timezone (IANA name or 'Local')").
				Description("Examples: Local, UTC, America/New_York, Europe/Berlin").
				Value(&fm.Timezone).
				Validate(func(s string) error {
					if _, err := utils.LoadLocation(s); err != nil {
						return fmt.Errorf("invalid timezone name")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Enable Notifications").
				Value(&fm.NotificationsEnabled),
			huh.NewInput().
				Title("Water reminder interval (min, 0 disables)").
				Value(&fm.WaterReminderMin).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 0 {
						return fmt.Errorf("interval cannot be negative")
					}
					return nil
				}),
			huh.NewInput().
				Title("Daily water goal (ml)").
				Value(&fm.WaterGoalML).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i <= 0 {
						return fmt.Errorf("goal must be a positive number")
					}
					return nil
				}),
		),
	).WithTheme(formTheme(theme))
}

func optionalGrams(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number of grams")
	}
	if f < 0 {
		return fmt.Errorf("cannot be negative")
	}
	return nil
}
