package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/paintbox/internal/config"
)

// FileSlots implements Slots with one file per key in the data directory.
type FileSlots struct {
	paths *config.Paths
}

// NewFileSlots creates a file-backed slot store.
func NewFileSlots(paths *config.Paths) *FileSlots {
	return &FileSlots{paths: paths}
}

// Get reads a slot file. A missing file is reported as ok == false.
func (s *FileSlots) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.paths.SlotPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set replaces the slot file. The value is written to a temp file in the same
// directory and renamed into place so readers never see a partial write.
func (s *FileSlots) Set(key, value string) error {
	path := s.paths.SlotPath(key)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for slot %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace slot %s: %w", key, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *FileSlots) Close() error {
	return nil
}
