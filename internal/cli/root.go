package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/cyra/internal/backup"
	"github.com/julianstephens/cyra/internal/logger"
	"github.com/julianstephens/cyra/internal/storage"
	"github.com/julianstephens/cyra/internal/tracker"
	"github.com/julianstephens/cyra/internal/utils"
)

type Context struct {
	Store storage.Provider

	trk *tracker.Tracker
}

// Tracker loads the persisted state on first use and returns the shared
// mutation gateway. Commands never touch the store directly.
func (c *Context) Tracker() (*tracker.Tracker, error) {
	if c.trk != nil {
		return c.trk, nil
	}
	trk, err := tracker.New(c.Store)
	if err != nil {
		return nil, err
	}
	c.trk = trk
	return trk, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetDataPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveDate validates a --date flag, defaulting an empty value to today in
// the configured timezone.
func (c *Context) ResolveDate(date string) (string, error) {
	if date == "" {
		trk, err := c.Tracker()
		if err != nil {
			return "", err
		}
		return trk.Today(), nil
	}
	if !utils.IsValidDate(date) {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return date, nil
}

// PrintJSON writes v to stdout as indented JSON for --json output modes.
func PrintJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintWarning surfaces a mutation warning on stderr, if the last mutation
// raised one.
func PrintWarning(trk *tracker.Tracker) {
	if warn := trk.Warning(); warn != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warn)
	}
}
