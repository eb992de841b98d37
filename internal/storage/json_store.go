package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/cyra/internal/logger"
	"github.com/julianstephens/cyra/internal/models"
)

// JSONStore persists the state as a single indented JSON document. It is
// the blob format used for plain-file setups and for export/import.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(FactoryState())
}

// Load reads and parses the state file. An unparsable file is recovered
// locally: the loader logs the corruption and hands back factory defaults
// rather than failing the application.
func (s *JSONStore) Load() (models.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.State{}, fmt.Errorf("storage not initialized, run 'cyra init' first")
		}
		return models.State{}, fmt.Errorf("failed to read storage: %w", err)
	}

	var state models.State
	if err := json.Unmarshal(data, &state); err != nil {
		logger.Warn("State file is corrupt, falling back to factory defaults", "path", s.path, "error", err)
		return FactoryState(), nil
	}

	FillDefaults(&state)
	return state, nil
}

func (s *JSONStore) Save(state models.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetDataPath() string {
	return s.path
}
