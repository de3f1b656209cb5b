package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/amterp/paintbox/internal/config"
	painterr "github.com/amterp/paintbox/internal/errors"
	"github.com/amterp/paintbox/internal/model"
)

// ConfigSchema is stamped into every saved config file.
const ConfigSchema = "config/1"

// FileConfigStore implements ConfigStore using a TOML file.
type FileConfigStore struct {
	paths *config.Paths
}

// NewConfigStore creates a new config store.
func NewConfigStore(paths *config.Paths) *FileConfigStore {
	return &FileConfigStore{paths: paths}
}

// Load reads the config from disk.
// Returns the default config if the file doesn't exist.
func (s *FileConfigStore) Load() (*model.Config, error) {
	path := s.paths.ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg model.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if cfg.Schema != "" && cfg.Schema != ConfigSchema {
		return nil, painterr.InvalidField("schema", fmt.Sprintf("%s has schema %q, expected %q", path, cfg.Schema, ConfigSchema))
	}

	switch cfg.Backend {
	case "", model.BackendFile, model.BackendSQLite:
	default:
		return nil, painterr.InvalidField("backend", fmt.Sprintf("%q (expected %q or %q)", cfg.Backend, model.BackendFile, model.BackendSQLite))
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// Save writes the config to disk.
func (s *FileConfigStore) Save(cfg *model.Config) error {
	cfg.Schema = ConfigSchema

	path := s.paths.ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists reports whether a config file is present.
func (s *FileConfigStore) Exists() bool {
	_, err := os.Stat(s.paths.ConfigPath())
	return err == nil
}
