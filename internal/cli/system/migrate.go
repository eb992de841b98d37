package system

import (
	"fmt"

	"github.com/julianstephens/cyra/internal/cli"
	"github.com/julianstephens/cyra/internal/storage"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return fmt.Errorf("migrate command only supports SQLite storage")
	}

	// Load opens the connection; a version mismatch here is exactly what we
	// are about to fix, so only a missing file is fatal.
	if _, err := sqliteStore.Load(); err != nil && sqliteStore.GetDB() == nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer sqliteStore.Close()

	runner, err := sqliteStore.MigrationRunner()
	if err != nil {
		return err
	}

	count, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}

	return nil
}
