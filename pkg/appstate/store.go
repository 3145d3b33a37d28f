package appstate

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Store defines the persistence boundary for application state. The state
// is always written wholesale; there is no field-level patching across the
// store boundary.
type Store interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
	Close() error
}

// Config holds configuration for the state store.
type Config struct {
	Backend  string // "json" or "sqlite"
	BasePath string
}

// DefaultBasePath returns the directory holding all skillpocket state.
func DefaultBasePath() (string, error) {
	if basePath := os.Getenv("SKILLPOCKET_BASE_PATH"); basePath != "" {
		return basePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, ".claude", "skill-pocket"), nil
}

// DefaultConfig returns a default configuration using the JSON backend.
func DefaultConfig() (*Config, error) {
	basePath, err := DefaultBasePath()
	if err != nil {
		return nil, err
	}
	return &Config{
		Backend:  "json",
		BasePath: basePath,
	}, nil
}

// NewStore creates the appropriate Store implementation for the given
// configuration.
func NewStore(ctx context.Context, config *Config) (Store, error) {
	if config == nil {
		var err error
		config, err = DefaultConfig()
		if err != nil {
			return nil, errors.Wrap(err, "failed to create default config")
		}
	}

	switch config.Backend {
	case "sqlite":
		return NewSQLiteStore(ctx, filepath.Join(config.BasePath, "storage.db"))
	case "json", "":
		return NewJSONStore(config.BasePath)
	default:
		return nil, errors.Errorf("unknown state store backend: %s", config.Backend)
	}
}
