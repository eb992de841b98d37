package cli

import (
	"fmt"

	"github.com/julianstephens/cyra/internal/utils"
)

type SettingsShowCmd struct {
	JSON bool `help:"Output as JSON."`
}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	settings := trk.Settings()
	if c.JSON {
		return PrintJSON(settings)
	}

	fmt.Println("Settings:")
	fmt.Printf("  Theme:          %s\n", settings.Theme)
	fmt.Printf("  Timezone:       %s\n", settings.Timezone)
	fmt.Printf("  Notifications:  %v\n", settings.NotificationsEnabled)
	if settings.WaterReminderMin > 0 {
		fmt.Printf("  Water reminder: every %d min\n", settings.WaterReminderMin)
	} else {
		fmt.Println("  Water reminder: disabled")
	}
	fmt.Printf("  Water goal:     %d ml\n", settings.WaterGoalML)
	return nil
}

type SettingsSetCmd struct {
	Theme         string `help:"Color theme (dark|light)."`
	Timezone      string `help:"IANA timezone name, or 'Local' for the system timezone."`
	Notifications string `help:"Enable desktop notifications (on|off)."`
	WaterReminder int    `help:"Minutes between water reminders, 0 disables." default:"-1"`
	WaterGoal     int    `help:"Daily water goal in milliliters."`
}

func (c *SettingsSetCmd) Validate() error {
	if c.Theme != "" && c.Theme != "dark" && c.Theme != "light" {
		return fmt.Errorf("theme must be dark or light")
	}
	if c.Timezone != "" {
		if _, err := utils.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("unknown timezone %q", c.Timezone)
		}
	}
	if c.Notifications != "" && c.Notifications != "on" && c.Notifications != "off" {
		return fmt.Errorf("notifications must be on or off")
	}
	return nil
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	settings := trk.Settings()
	if c.Theme != "" {
		settings.Theme = c.Theme
	}
	if c.Timezone != "" {
		settings.Timezone = c.Timezone
	}
	if c.Notifications != "" {
		settings.NotificationsEnabled = c.Notifications == "on"
	}
	if c.WaterReminder >= 0 {
		settings.WaterReminderMin = c.WaterReminder
	}
	if c.WaterGoal > 0 {
		settings.WaterGoalML = c.WaterGoal
	}

	trk.UpdateSettings(settings)
	PrintWarning(trk)
	if trk.Settings() != settings {
		return fmt.Errorf("settings update was rejected, check the values")
	}

	fmt.Println("Settings updated.")
	return nil
}
