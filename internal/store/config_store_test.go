package store

import (
	"os"
	"strings"
	"testing"

	"github.com/amterp/paintbox/internal/config"
	painterr "github.com/amterp/paintbox/internal/errors"
	"github.com/amterp/paintbox/internal/model"
)

func setupTestConfigStore(t *testing.T) (*FileConfigStore, *config.Paths) {
	t.Helper()
	paths := config.NewPaths(t.TempDir())
	return NewConfigStore(paths), paths
}

func TestConfigStore_LoadMissingReturnsDefaults(t *testing.T) {
	s, _ := setupTestConfigStore(t)

	if s.Exists() {
		t.Error("Exists should be false before Save")
	}

	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *model.DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestConfigStore_SaveAndLoad(t *testing.T) {
	s, paths := setupTestConfigStore(t)

	cfg := &model.Config{Backend: model.BackendSQLite, DefaultColor: "#123456", Port: 4000}
	if err := s.Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !s.Exists() {
		t.Error("Exists should be true after Save")
	}

	data, _ := os.ReadFile(paths.ConfigPath())
	if !strings.Contains(string(data), `schema = "config/1"`) {
		t.Errorf("saved config missing schema stamp:\n%s", data)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Backend != model.BackendSQLite || loaded.DefaultColor != "#123456" || loaded.Port != 4000 {
		t.Errorf("loaded %+v", loaded)
	}
}

func TestConfigStore_PartialFileGetsDefaults(t *testing.T) {
	s, paths := setupTestConfigStore(t)
	os.WriteFile(paths.ConfigPath(), []byte("port = 8080\n"), 0644)

	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8080 || cfg.Backend != model.BackendFile || cfg.DefaultColor != model.DefaultColor {
		t.Errorf("got %+v", cfg)
	}
}

func TestConfigStore_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		validation bool
	}{
		{"malformed toml", "backend = = \"file\"", false},
		{"unknown backend", "backend = \"redis\"\n", true},
		{"future schema", "schema = \"config/9\"\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, paths := setupTestConfigStore(t)
			os.WriteFile(paths.ConfigPath(), []byte(tt.content), 0644)

			_, err := s.Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if got := painterr.IsValidationError(err); got != tt.validation {
				t.Errorf("IsValidationError = %v, want %v (err: %v)", got, tt.validation, err)
			}
		})
	}
}
