package cli

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/amterp/paintbox/internal/config"
	"github.com/amterp/paintbox/internal/discovery"
	"github.com/amterp/paintbox/internal/model"
	"github.com/amterp/paintbox/internal/store"
	"github.com/amterp/ra"
)

// completionCtx provides lightweight store access for shell completion.
// Completion functions run during ParseOrExit, before NewApp() is called,
// so we can't use the full App. This loads just the inventory.
type completionCtx struct {
	once  sync.Once
	items []model.PaintItem
	err   error
}

var compCtx completionCtx

func initCompletionCtx() {
	compCtx.once.Do(func() {
		dataDir := dataDirFromArgs(os.Args)
		if dataDir == "" {
			result, err := discovery.DiscoverDataDir()
			if err != nil {
				compCtx.err = err
				return
			}
			dataDir = result.DataDir
		}

		paths := config.NewPaths(dataDir)
		cfg, err := store.NewConfigStore(paths).Load()
		if err != nil {
			// Graceful degradation: no completions if config is broken
			compCtx.err = err
			return
		}

		slots, err := store.OpenSlots(cfg.Backend, paths)
		if err != nil {
			compCtx.err = fmt.Errorf("no storage available: %w", err)
			return
		}
		defer slots.Close()

		compCtx.items = store.NewItemStore(slots, nil).Load()
	})
}

// completeItems returns paint names matching the given prefix.
func completeItems(toComplete string) ([]string, ra.CompletionDirective) {
	initCompletionCtx()
	if compCtx.err != nil {
		return nil, ra.CompletionDirectiveNoFileComp
	}
	return matchItemNames(compCtx.items, toComplete), ra.CompletionDirectiveNoFileComp
}

// matchItemNames returns the names of items that start with prefix,
// ignoring case, without duplicates.
func matchItemNames(items []model.PaintItem, prefix string) []string {
	prefix = strings.ToLower(prefix)
	seen := make(map[string]bool)

	var result []string
	for _, item := range items {
		if seen[item.Name] || !strings.HasPrefix(strings.ToLower(item.Name), prefix) {
			continue
		}
		seen[item.Name] = true
		result = append(result, item.Name)
	}
	return result
}

// completeBackends returns the storage backend names matching the given prefix.
func completeBackends(toComplete string) ([]string, ra.CompletionDirective) {
	var result []string
	for _, backend := range []string{model.BackendFile, model.BackendSQLite} {
		if strings.HasPrefix(backend, toComplete) {
			result = append(result, backend)
		}
	}
	return result, ra.CompletionDirectiveNoFileComp
}

// dataDirFromArgs scans the argument list for an explicit -d/--data-dir flag value.
func dataDirFromArgs(args []string) string {
	for i, arg := range args {
		// --data-dir=value or -d=value (skip empty values so fallback logic runs)
		if strings.HasPrefix(arg, "--data-dir=") {
			if v := strings.TrimPrefix(arg, "--data-dir="); v != "" {
				return v
			}
		}
		if strings.HasPrefix(arg, "-d=") {
			if v := strings.TrimPrefix(arg, "-d="); v != "" {
				return v
			}
		}
		// --data-dir value or -d value
		if (arg == "--data-dir" || arg == "-d") && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// registerCompletion adds the "paintbox completion <shell>" command.
func registerCompletion(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("completion")
	cmd.SetDescription("Output shell completion script")

	ctx.CompletionShell, _ = ra.NewString("shell").
		SetUsage("Shell type").
		SetEnumConstraint([]string{"bash", "zsh"}).
		Register(cmd)

	ctx.CompletionUsed, _ = parent.RegisterCmd(cmd)
}

// runCompletion outputs the shell completion script to stdout.
func runCompletion(shell string, rootCmd *ra.Cmd) {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(os.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(os.Stdout)
	default:
		Fatal(fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell))
	}
	if err != nil {
		Fatal(fmt.Errorf("failed to generate completion script: %w", err))
	}
}
