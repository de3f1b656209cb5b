package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultDataDir  = ".paintbox"
	ConfigFileName  = "config.toml"
	SQLiteFileName  = "paintbox.db"
	SlotFileSuffix  = ".json"
	UserDataDirName = "paintbox"
)

// Paths provides path resolution for paintbox data files.
type Paths struct {
	dataDir string
}

// NewPaths creates a new Paths resolver rooted at dataDir.
func NewPaths(dataDir string) *Paths {
	return &Paths{dataDir: dataDir}
}

// DataDir returns the root directory for paintbox data.
func (p *Paths) DataDir() string {
	return p.dataDir
}

// ConfigPath returns the config file path.
func (p *Paths) ConfigPath() string {
	return filepath.Join(p.dataDir, ConfigFileName)
}

// SlotPath returns the file that backs a storage slot in the file backend.
func (p *Paths) SlotPath(key string) string {
	return filepath.Join(p.dataDir, key+SlotFileSuffix)
}

// SQLitePath returns the database file for the sqlite backend.
func (p *Paths) SQLitePath() string {
	return filepath.Join(p.dataDir, SQLiteFileName)
}

// UserDataDir returns the fallback data directory used when no project-local
// .paintbox directory is found. XDG_DATA_HOME is honored.
func UserDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, UserDataDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", UserDataDirName)
}
