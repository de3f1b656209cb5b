package cli

import (
	"os"

	"github.com/amterp/ra"
)

func registerList(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("list")
	cmd.SetDescription("List paints")

	ctx.ListJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.ListUsed, _ = parent.RegisterCmd(cmd)
}

func runList(jsonOutput bool, g globals) {
	app := newAppFor(g, false)
	defer app.Close()

	if jsonOutput {
		items := app.ItemStore.Load()
		if err := printJson(items); err != nil {
			app.Fatal(err)
		}
		return
	}

	app.Inventory(NewTextRenderer(os.Stdout))
}
