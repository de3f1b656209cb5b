package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/paintbox/internal/config"
	"github.com/amterp/paintbox/internal/model"
)

func newTestFileSlots(t *testing.T) *FileSlots {
	t.Helper()
	return NewFileSlots(config.NewPaths(t.TempDir()))
}

func newTestSQLiteSlots(t *testing.T) *SQLiteSlots {
	t.Helper()

	slots, err := NewSQLiteSlots(filepath.Join(t.TempDir(), "paintbox.db"))
	if err != nil {
		t.Fatalf("NewSQLiteSlots failed: %v", err)
	}
	t.Cleanup(func() { slots.Close() })
	return slots
}

func TestSlots_GetSet(t *testing.T) {
	backends := map[string]Slots{
		"memory": NewMemorySlots(),
		"file":   newTestFileSlots(t),
		"sqlite": newTestSQLiteSlots(t),
	}

	for name, slots := range backends {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := slots.Get("k"); err != nil || ok {
				t.Fatalf("Get on empty store: ok=%v err=%v", ok, err)
			}

			if err := slots.Set("k", "one"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := slots.Set("k", "two"); err != nil {
				t.Fatalf("second Set failed: %v", err)
			}

			value, ok, err := slots.Get("k")
			if err != nil || !ok {
				t.Fatalf("Get failed: ok=%v err=%v", ok, err)
			}
			if value != "two" {
				t.Errorf("value = %q, want %q", value, "two")
			}

			if _, ok, _ := slots.Get("other"); ok {
				t.Error("keys should be independent")
			}
		})
	}
}

func TestFileSlots_CreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", ".paintbox")
	slots := NewFileSlots(config.NewPaths(dataDir))

	if err := slots.Set(StorageKey, "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dataDir, StorageKey+".json"))
	if err != nil {
		t.Fatalf("slot file missing: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("slot file = %q", data)
	}

	entries, _ := os.ReadDir(dataDir)
	if len(entries) != 1 {
		t.Errorf("expected only the slot file, found %d entries (temp file left behind?)", len(entries))
	}
}

func TestSQLiteSlots_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paintbox.db")

	first, err := NewSQLiteSlots(path)
	if err != nil {
		t.Fatalf("NewSQLiteSlots failed: %v", err)
	}
	if err := first.Set("k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	first.Close()

	second, err := NewSQLiteSlots(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	value, ok, err := second.Get("k")
	if err != nil || !ok || value != "v" {
		t.Errorf("after reopen: value=%q ok=%v err=%v", value, ok, err)
	}
}

func TestOpenSlots(t *testing.T) {
	paths := config.NewPaths(t.TempDir())

	fileSlots, err := OpenSlots(model.BackendFile, paths)
	if err != nil {
		t.Fatalf("OpenSlots(file) failed: %v", err)
	}
	if _, ok := fileSlots.(*FileSlots); !ok {
		t.Errorf("expected *FileSlots, got %T", fileSlots)
	}

	sqliteSlots, err := OpenSlots(model.BackendSQLite, paths)
	if err != nil {
		t.Fatalf("OpenSlots(sqlite) failed: %v", err)
	}
	defer sqliteSlots.Close()
	if _, ok := sqliteSlots.(*SQLiteSlots); !ok {
		t.Errorf("expected *SQLiteSlots, got %T", sqliteSlots)
	}

	if _, err := OpenSlots("redis", paths); err == nil {
		t.Error("expected error for unknown backend")
	}
}
