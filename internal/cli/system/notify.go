package system

import (
	"fmt"

	"github.com/julianstephens/cyra/internal/cli"
	"github.com/julianstephens/cyra/internal/notifier"
)

type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

// Run sends the hydration reminder when one is due. It is intended to be
// invoked from a scheduler (cron, systemd timer) at the reminder interval.
func (c *NotifyCmd) Run(ctx *cli.Context) error {
	trk, err := ctx.Tracker()
	if err != nil {
		return err
	}

	settings := trk.Settings()
	if !settings.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}
	if settings.WaterReminderMin <= 0 {
		if c.DryRun {
			fmt.Println("Water reminders are disabled in settings.")
		}
		return nil
	}

	today := trk.Today()
	drunk := trk.WaterOn(today)
	if drunk >= settings.WaterGoalML {
		if c.DryRun {
			fmt.Printf("Water goal already reached (%d / %d ml).\n", drunk, settings.WaterGoalML)
		}
		return nil
	}

	msg := fmt.Sprintf("Time to drink water: %d / %d ml today", drunk, settings.WaterGoalML)
	if c.DryRun {
		fmt.Println("[DryRun] " + msg)
		return nil
	}

	if err := notifier.New().Notify(msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
