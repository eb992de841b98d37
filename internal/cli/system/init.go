package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/cyra/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing state file before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dataPath := ctx.Store.GetDataPath()
		if _, err := os.Stat(dataPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing store: %w", err)
			}
			if err := os.Remove(dataPath); err != nil {
				return fmt.Errorf("failed to delete existing state file: %w", err)
			}
			fmt.Printf("Deleted existing state file at: %s\n", dataPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing state file: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized cyra storage at: %s\n", ctx.Store.GetDataPath())
	fmt.Println("Set up your profile with 'cyra profile set' to get calorie estimates.")
	return nil
}
