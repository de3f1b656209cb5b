package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/paintbox/internal/config"
	"github.com/amterp/paintbox/internal/model"
	"github.com/amterp/paintbox/internal/store"
	"github.com/amterp/ra"
)

func registerInit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("init")
	cmd.SetDescription("Create a paintbox data directory here")

	ctx.InitBackend, _ = ra.NewString("backend").
		SetShort("b").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Storage backend: file or sqlite (default: file)").
		SetCompletionFunc(completeBackends).
		Register(cmd)

	ctx.InitUsed, _ = parent.RegisterCmd(cmd)
}

// initDataDir creates dataDir with a config for backend. An existing
// config is an error so a re-run never switches backends under stored data.
func initDataDir(dataDir, backend string) (*model.Config, error) {
	paths := config.NewPaths(dataDir)
	configStore := store.NewConfigStore(paths)
	if configStore.Exists() {
		return nil, fmt.Errorf("paintbox already initialized in %s", dataDir)
	}

	cfg := model.DefaultConfig()
	if backend != "" {
		cfg.Backend = backend
	}
	if cfg.Backend != model.BackendFile && cfg.Backend != model.BackendSQLite {
		return nil, fmt.Errorf("unknown backend %q (supported: %s, %s)", cfg.Backend, model.BackendFile, model.BackendSQLite)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := configStore.Save(cfg); err != nil {
		return nil, err
	}

	// Create the empty slot up front so the backend is usable right away.
	slots, err := store.OpenSlots(cfg.Backend, paths)
	if err != nil {
		return nil, err
	}
	defer slots.Close()
	if err := store.NewItemStore(slots, nil).Save(nil); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runInit(backend string, g globals) {
	dataDir := g.dataDir
	if dataDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			Fatal(err)
		}
		dataDir = filepath.Join(cwd, config.DefaultDataDir)
	}

	cfg, err := initDataDir(dataDir, backend)
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Initialized paintbox in %s (%s backend)", dataDir, cfg.Backend)
}
