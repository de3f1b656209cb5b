package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool
	DataDir        *string
	Verbose        *bool

	// init command
	InitUsed    *bool
	InitBackend *string

	// add command
	AddUsed  *bool
	AddName  *string
	AddColor *string

	// list command
	ListUsed *bool
	ListJson *bool

	// delete command
	DeleteUsed   *bool
	DeleteTarget *string
	DeleteForce  *bool

	// tui command
	TuiUsed *bool

	// serve command
	ServeUsed   *bool
	ServePort   *int
	ServeNoOpen *bool

	// completion command
	CompletionUsed  *bool
	CompletionShell *string
}

// globals are the flags every command reads.
type globals struct {
	nonInteractive bool
	dataDir        string
	verbose        bool
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("paintbox")
	cmd.SetDescription("Track your paint inventory")

	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.DataDir, _ = ra.NewString("data-dir").
		SetShort("d").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Use this data directory instead of discovering one").
		Register(cmd, ra.WithGlobal(true))

	ctx.Verbose, _ = ra.NewBool("verbose").
		SetShort("v").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Enable debug logging").
		Register(cmd, ra.WithGlobal(true))

	registerInit(cmd, ctx)
	registerAdd(cmd, ctx)
	registerList(cmd, ctx)
	registerDelete(cmd, ctx)
	registerTui(cmd, ctx)
	registerServe(cmd, ctx)
	registerCompletion(cmd, ctx)

	cmd.ParseOrExit(os.Args[1:])

	executeCommand(ctx, cmd)
}

func executeCommand(ctx *CommandContext, rootCmd *ra.Cmd) {
	g := globals{
		nonInteractive: *ctx.NonInteractive,
		dataDir:        *ctx.DataDir,
		verbose:        *ctx.Verbose,
	}

	switch {
	case *ctx.InitUsed:
		runInit(*ctx.InitBackend, g)

	case *ctx.AddUsed:
		runAdd(*ctx.AddName, *ctx.AddColor, g)

	case *ctx.ListUsed:
		runList(*ctx.ListJson, g)

	case *ctx.DeleteUsed:
		runDelete(*ctx.DeleteTarget, *ctx.DeleteForce, g)

	case *ctx.TuiUsed:
		runTui(g)

	case *ctx.ServeUsed:
		runServe(*ctx.ServePort, *ctx.ServeNoOpen, g)

	case *ctx.CompletionUsed:
		runCompletion(*ctx.CompletionShell, rootCmd)
	}
}
