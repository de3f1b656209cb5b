package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/paintbox/internal/config"
	"github.com/amterp/paintbox/internal/model"
)

// TestItem returns a paint item with the given name and a palette color.
func TestItem(name string) model.PaintItem {
	return model.PaintItem{Name: name, Color: model.DefaultColor}
}

// RecordingRenderer records every render it receives.
type RecordingRenderer struct {
	Renders [][]model.PaintItem
}

// Render implements inventory.Renderer.
func (r *RecordingRenderer) Render(items []model.PaintItem) {
	r.Renders = append(r.Renders, model.CloneItems(items))
}

// Last returns the most recent render, or nil if nothing was rendered.
func (r *RecordingRenderer) Last() []model.PaintItem {
	if len(r.Renders) == 0 {
		return nil
	}
	return r.Renders[len(r.Renders)-1]
}

// Count returns how many renders happened.
func (r *RecordingRenderer) Count() int {
	return len(r.Renders)
}

// StaticForm is a Form whose fields are set directly by tests.
type StaticForm struct {
	NameValue  string
	ColorValue string
	Cleared    int
}

func (f *StaticForm) Name() string  { return f.NameValue }
func (f *StaticForm) Color() string { return f.ColorValue }

// ClearName empties the name field and counts the call.
func (f *StaticForm) ClearName() {
	f.NameValue = ""
	f.Cleared++
}

// TempDataDir creates a temporary .paintbox data directory for testing.
// Returns the data dir path and a cleanup function.
func TempDataDir(t *testing.T) (string, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", "paintbox-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dataDir := filepath.Join(dir, config.DefaultDataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		os.RemoveAll(dir)
		t.Fatalf("failed to create data dir: %v", err)
	}

	cleanup := func() {
		os.RemoveAll(dir)
	}

	return dataDir, cleanup
}

// NewTestPaths creates a Paths for testing with the given data directory.
func NewTestPaths(dataDir string) *config.Paths {
	return config.NewPaths(dataDir)
}
