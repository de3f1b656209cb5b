package cli

import (
	"errors"
	"path/filepath"
	"testing"

	painterr "github.com/amterp/paintbox/internal/errors"
	"github.com/amterp/paintbox/internal/model"
	"github.com/amterp/paintbox/internal/prompt"
	"github.com/amterp/paintbox/internal/store"
	"github.com/amterp/paintbox/testutil"
	"go.uber.org/zap"
)

func TestNewApp_ExplicitDataDir(t *testing.T) {
	dataDir, cleanup := testutil.TempDataDir(t)
	defer cleanup()

	app, err := NewApp(dataDir, false, false)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	defer app.Close()

	if app.Paths.DataDir() != dataDir {
		t.Errorf("Expected data dir %q, got %q", dataDir, app.Paths.DataDir())
	}
	if app.Config.Backend != model.BackendFile {
		t.Errorf("Expected file backend by default, got %q", app.Config.Backend)
	}
	if _, ok := app.Prompter.(*prompt.NoopPrompter); !ok {
		t.Errorf("Expected NoopPrompter when not interactive, got %T", app.Prompter)
	}
}

func TestNewApp_MissingDataDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := NewApp(missing, false, false)
	if !painterr.IsNotInitialized(err) {
		t.Errorf("Expected not-initialized error, got %v", err)
	}
}

func TestNewApp_InventoryRoundTrip(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), ".paintbox")
	if _, err := initDataDir(dataDir, model.BackendSQLite); err != nil {
		t.Fatalf("initDataDir failed: %v", err)
	}

	app, err := NewApp(dataDir, false, false)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	renderer := &testutil.RecordingRenderer{}
	inv := app.Inventory(renderer)
	if !inv.Add("Red Oxide", "#aa3311") {
		t.Fatal("Expected add to succeed")
	}
	if err := app.ItemStore.LastSaveError(); err != nil {
		t.Fatalf("Unexpected save error: %v", err)
	}
	app.Close()

	reopened, err := NewApp(dataDir, false, false)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	defer reopened.Close()

	items := reopened.ItemStore.Load()
	if len(items) != 1 || items[0].Name != "Red Oxide" {
		t.Errorf("Expected persisted item, got %v", items)
	}
	if renderer.Count() != 2 {
		t.Errorf("Expected start and add renders, got %d", renderer.Count())
	}
}

// closeCountingSlots counts Close calls.
type closeCountingSlots struct {
	store.Slots
	closes int
}

func (s *closeCountingSlots) Close() error {
	s.closes++
	return s.Slots.Close()
}

func TestApp_FatalClosesBeforeExit(t *testing.T) {
	slots := &closeCountingSlots{Slots: store.NewMemorySlots()}
	app := &App{Slots: slots, Log: zap.NewNop()}

	exitCode := -1
	oldExit := exit
	exit = func(code int) { exitCode = code }
	defer func() { exit = oldExit }()

	app.Fatal(errors.New("save failed"))

	if exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", exitCode)
	}
	if slots.closes != 1 {
		t.Errorf("Expected storage closed once before exit, got %d closes", slots.closes)
	}

	// A deferred Close after Fatal must not close again.
	app.Close()
	if slots.closes != 1 {
		t.Errorf("Expected Close to be idempotent, got %d closes", slots.closes)
	}
}
