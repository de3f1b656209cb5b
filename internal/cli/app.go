package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/paintbox/internal/config"
	"github.com/amterp/paintbox/internal/discovery"
	painterr "github.com/amterp/paintbox/internal/errors"
	"github.com/amterp/paintbox/internal/inventory"
	"github.com/amterp/paintbox/internal/logging"
	"github.com/amterp/paintbox/internal/model"
	"github.com/amterp/paintbox/internal/prompt"
	"github.com/amterp/paintbox/internal/resolver"
	"github.com/amterp/paintbox/internal/store"
	"go.uber.org/zap"
)

// App holds all the dependencies for the CLI.
// Uses interfaces for testability.
type App struct {
	Paths        *config.Paths
	Config       *model.Config
	ConfigStore  store.ConfigStore
	Slots        store.Slots
	ItemStore    *TrackedItemStore
	Prompter     prompt.Prompter
	ItemResolver *resolver.ItemResolver
	Log          *zap.Logger
	Local        bool

	closed bool
}

// NewApp creates a new App with all dependencies wired up.
// dataDir overrides discovery when set. If interactive is false, uses
// NoopPrompter that fails on prompts.
func NewApp(dataDir string, interactive, verbose bool) (*App, error) {
	log := logging.New(verbose)

	local := false
	if dataDir == "" {
		result, err := discovery.DiscoverDataDir()
		if err != nil {
			return nil, err
		}
		dataDir = result.DataDir
		local = result.Local
	} else {
		abs, err := filepath.Abs(dataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
		dataDir = abs
		if info, err := os.Stat(dataDir); err != nil || !info.IsDir() {
			return nil, &painterr.NotInitializedError{Path: dataDir}
		}
	}
	log.Debug("using data directory", zap.String("path", dataDir), zap.Bool("local", local))

	paths := config.NewPaths(dataDir)
	configStore := store.NewConfigStore(paths)
	cfg, err := configStore.Load()
	if err != nil {
		return nil, err
	}

	slots, err := store.OpenSlots(cfg.Backend, paths)
	if err != nil {
		return nil, err
	}

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}

	return &App{
		Paths:        paths,
		Config:       cfg,
		ConfigStore:  configStore,
		Slots:        slots,
		ItemStore:    &TrackedItemStore{ItemStore: store.NewItemStore(slots, log)},
		Prompter:     prompter,
		ItemResolver: resolver.NewItemResolver(),
		Log:          log,
		Local:        local,
	}, nil
}

// newAppFor builds an App from the global flags.
func newAppFor(g globals, interactive bool) *App {
	app, err := NewApp(g.dataDir, interactive && !g.nonInteractive, g.verbose)
	if err != nil {
		Fatal(err)
	}
	return app
}

// Inventory returns a started inventory drawing through renderer.
func (a *App) Inventory(renderer inventory.Renderer) *inventory.Inventory {
	inv := inventory.New(a.ItemStore, renderer, a.Log)
	inv.Start()
	return inv
}

// TrackedItemStore remembers the outcome of the last save so one-shot
// commands can exit non-zero when persisting failed.
type TrackedItemStore struct {
	store.ItemStore
	lastErr error
}

// Save implements store.ItemStore and records the outcome.
func (s *TrackedItemStore) Save(items []model.PaintItem) error {
	s.lastErr = s.ItemStore.Save(items)
	return s.lastErr
}

// LastSaveError returns the error from the most recent Save, if any.
func (s *TrackedItemStore) LastSaveError() error {
	return s.lastErr
}

// Close releases the slot backend and flushes the logger.
// Calling it more than once is harmless.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	if err := a.Slots.Close(); err != nil {
		a.Log.Warn("failed to close storage", zap.Error(err))
	}
	_ = a.Log.Sync()
}

// Fatal closes the app, then prints err and exits. Deferred Close calls
// do not run past exit.
func (a *App) Fatal(err error) {
	a.Close()
	Fatal(err)
}

// exit is swapped out by tests.
var exit = os.Exit

// Fatal prints an error and exits.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exit(1)
}
