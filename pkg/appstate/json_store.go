package appstate

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const stateFileName = "state.json"

// JSONStore persists the application state as a single JSON file with
// atomic temp-file-and-rename writes.
type JSONStore struct {
	basePath string
}

// NewJSONStore creates a JSON file-based state store rooted at basePath.
func NewJSONStore(basePath string) (*JSONStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create state directory")
	}
	return &JSONStore{basePath: basePath}, nil
}

// Load reads the persisted state. A missing state file is not an error; it
// yields the first-run default state.
func (s *JSONStore) Load(_ context.Context) (State, error) {
	data, err := os.ReadFile(filepath.Join(s.basePath, stateFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return State{}, errors.Wrap(err, "failed to read state file")
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, errors.Wrap(err, "failed to unmarshal state file")
	}

	return state, nil
}

// Save writes the state wholesale. The write goes to a temporary file first
// and is renamed into place so readers never see a torn state file.
func (s *JSONStore) Save(_ context.Context, state State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal state")
	}

	filePath := filepath.Join(s.basePath, stateFileName)
	tempPath := filePath + ".tmp"

	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write temporary state file")
	}

	if err := os.Rename(tempPath, filePath); err != nil {
		os.Remove(tempPath)
		return errors.Wrap(err, "failed to rename temporary state file")
	}

	return nil
}

// Close is a no-op for the JSON store.
func (s *JSONStore) Close() error {
	return nil
}
