package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/cyra/internal/backup"
	"github.com/julianstephens/cyra/internal/cli"
	"github.com/julianstephens/cyra/internal/models"
	"github.com/julianstephens/cyra/internal/storage"
	"github.com/julianstephens/cyra/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	var state models.State
	if loaded, err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
		state = loaded
	}

	if storeReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (storage not reachable)\n")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if storeReachable {
		if err := checkEventLogIntegrity(state); err != nil {
			fmt.Printf("❌ Cycle event log: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Cycle event log: OK\n")
		}

		if err := checkLogDates(state); err != nil {
			fmt.Printf("❌ Log date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Log date formats: OK\n")
		}

		if err := checkProfileSanity(state); err != nil {
			fmt.Printf("⚠ Profile: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Profile: OK\n")
		}

		if err := checkTimezone(state); err != nil {
			fmt.Printf("❌ Timezone setting: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Timezone setting: OK\n")
		}
	} else {
		fmt.Printf("⊘ Cycle event log: SKIPPED (storage not reachable)\n")
		fmt.Printf("⊘ Log date formats: SKIPPED (storage not reachable)\n")
		fmt.Printf("⊘ Profile: SKIPPED (storage not reachable)\n")
		fmt.Printf("⊘ Timezone setting: SKIPPED (storage not reachable)\n")
	}

	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock sanity: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock sanity: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// The JSON store fills defaults on load instead of migrating.
		return nil
	}

	runner, err := sqliteStore.MigrationRunner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetDataPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'cyra backup create'")
	}

	return nil
}

func checkEventLogIntegrity(state models.State) error {
	events := state.Cycle.Events
	seen := make(map[string]bool, len(events))
	for i, ev := range events {
		if !utils.IsValidDate(ev.Date) {
			return fmt.Errorf("event %d has invalid date %q", i, ev.Date)
		}
		if ev.Kind != models.EventStart && ev.Kind != models.EventEnd {
			return fmt.Errorf("event %d has invalid kind %q", i, ev.Kind)
		}
		key := ev.Date + "/" + string(ev.Kind)
		if seen[key] {
			return fmt.Errorf("duplicate %s event on %s", ev.Kind, ev.Date)
		}
		seen[key] = true
		if i > 0 && events[i-1].Date > ev.Date {
			return fmt.Errorf("event log is not date-ordered at index %d (%s after %s)", i, ev.Date, events[i-1].Date)
		}
	}
	return nil
}

func checkLogDates(state models.State) error {
	check := func(kind, day string) error {
		if !utils.IsValidDate(day) {
			return fmt.Errorf("%s log has invalid date key %q", kind, day)
		}
		return nil
	}
	for day := range state.Logs.Nutrition {
		if err := check("nutrition", day); err != nil {
			return err
		}
	}
	for day := range state.Logs.Workouts {
		if err := check("workout", day); err != nil {
			return err
		}
	}
	for day := range state.Logs.Weight {
		if err := check("weight", day); err != nil {
			return err
		}
	}
	for day := range state.Logs.Water {
		if err := check("water", day); err != nil {
			return err
		}
	}
	for day := range state.Logs.Steps {
		if err := check("steps", day); err != nil {
			return err
		}
	}
	for day := range state.Logs.Symptoms {
		if err := check("symptom", day); err != nil {
			return err
		}
	}
	return nil
}

func checkProfileSanity(state models.State) error {
	p := state.Profile
	if p.WeightKG == 0 && len(state.Logs.Weight) == 0 {
		return fmt.Errorf("no weight on record - calorie estimates need one ('cyra weight <kg>')")
	}
	if p.BodyFatPercent == 0 && (p.DateOfBirth == "" || p.HeightCM == 0) {
		return fmt.Errorf("body fat unknown and profile incomplete - the fallback estimator needs height and date of birth")
	}
	return nil
}

func checkTimezone(state models.State) error {
	if _, err := utils.LoadLocation(state.Settings.Timezone); err != nil {
		return fmt.Errorf("configured timezone %q is not loadable: %w", state.Settings.Timezone, err)
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
