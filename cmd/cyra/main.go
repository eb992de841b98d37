package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/cyra/internal/cli"
	"github.com/julianstephens/cyra/internal/cli/system"
	"github.com/julianstephens/cyra/internal/constants"
	"github.com/julianstephens/cyra/internal/errors"
	"github.com/julianstephens/cyra/internal/logger"
	"github.com/julianstephens/cyra/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"State file path. A .json extension selects the JSON store, anything else SQLite." type:"path" default:"~/.config/cyra/cyra.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize cyra storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Period  struct {
		Start cli.PeriodStartCmd `cmd:"" help:"Log a period start."`
		End   cli.PeriodEndCmd   `cmd:"" help:"Log a period end."`
	} `cmd:"" help:"Log cycle events."`
	Food    cli.FoodCmd    `cmd:"" help:"Log a food entry."`
	Workout cli.WorkoutCmd `cmd:"" help:"Log a workout."`
	Weight  cli.WeightCmd  `cmd:"" help:"Log a weight reading."`
	Water   cli.WaterCmd   `cmd:"" help:"Log water intake for today."`
	Steps   cli.StepsCmd   `cmd:"" help:"Record a daily step count."`
	Symptom cli.SymptomCmd `cmd:"" help:"Log a symptom."`
	Day     cli.DayCmd     `cmd:"" help:"Show the daily summary."`
	Phase   cli.PhaseCmd   `cmd:"" help:"Show the cycle phase for a date."`
	Tdee    cli.TdeeCmd    `cmd:"" help:"Show the calorie estimate for a date."`
	Library cli.LibraryCmd `cmd:"" help:"List the quick-add food library."`
	Profile struct {
		Show cli.ProfileShowCmd `cmd:"" help:"Show the profile." default:"1"`
		Set  cli.ProfileSetCmd  `cmd:"" help:"Update profile fields."`
	} `cmd:"" help:"Manage the user profile."`
	Settings struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Update settings."`
	} `cmd:"" help:"Manage application settings."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage state backups."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Send the hydration reminder if one is due (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Cycle-aware personal health tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// The state file's extension selects the backend.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{Store: store}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
