package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/paintbox/internal/config"
)

// Result contains the discovered data directory.
type Result struct {
	DataDir string // Absolute path to the data directory
	Local   bool   // Whether a project-local .paintbox/ was found
}

// DiscoverDataDir finds the data directory by walking up from cwd.
// Priority:
// 1. Nearest ancestor directory containing .paintbox/
// 2. The per-user data directory
func DiscoverDataDir() (*Result, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return DiscoverDataDirFrom(cwd, config.UserDataDir())
}

// DiscoverDataDirFrom finds the data directory starting from a given directory,
// falling back to fallback when no project-local directory exists.
func DiscoverDataDirFrom(startDir, fallback string) (*Result, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	dir := absStart
	for {
		candidate := filepath.Join(dir, config.DefaultDataDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return &Result{DataDir: candidate, Local: true}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if fallback == "" {
		return nil, fmt.Errorf("no %s directory found and no user data directory available", config.DefaultDataDir)
	}
	return &Result{DataDir: fallback, Local: false}, nil
}
