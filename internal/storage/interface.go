package storage

import "github.com/julianstephens/cyra/internal/models"

// Provider persists the tracker state as one logical record. The tracker
// loads it once at startup and writes it back synchronously after every
// mutation; backends only need whole-state semantics.
type Provider interface {
	// Init creates the backing store with factory-default state. It fails
	// when the store already exists.
	Init() error

	// Load reads the persisted state. A missing store is an error; a corrupt
	// one is recovered locally by returning factory defaults.
	Load() (models.State, error)

	// Save writes the full state.
	Save(models.State) error

	Close() error

	// GetDataPath returns the path of the underlying data file.
	GetDataPath() string
}
