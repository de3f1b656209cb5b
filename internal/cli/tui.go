package cli

import (
	"errors"

	"github.com/amterp/paintbox/internal/tui"
	"github.com/amterp/ra"
	tea "github.com/charmbracelet/bubbletea"
)

var errNonInteractiveTui = errors.New("the terminal UI cannot run in non-interactive mode")

func registerTui(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("tui")
	cmd.SetDescription("Open the interactive terminal UI")

	ctx.TuiUsed, _ = parent.RegisterCmd(cmd)
}

func runTui(g globals) {
	if g.nonInteractive {
		Fatal(errNonInteractiveTui)
	}

	app := newAppFor(g, true)
	defer app.Close()

	m := tui.New(app.ItemStore, app.Log)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		app.Fatal(err)
	}
	if err := app.ItemStore.LastSaveError(); err != nil {
		PrintWarning("last change was not saved: %v", err)
	}
}
