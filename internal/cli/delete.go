package cli

import (
	"fmt"

	"github.com/amterp/ra"
)

func registerDelete(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("delete")
	cmd.SetDescription("Delete a paint")

	ctx.DeleteTarget, _ = ra.NewString("paint").
		SetUsage("Position as shown by list, or paint name").
		SetCompletionFunc(completeItems).
		Register(cmd)

	ctx.DeleteForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation (required in non-interactive mode)").
		Register(cmd)

	ctx.DeleteUsed, _ = parent.RegisterCmd(cmd)
}

func runDelete(target string, force bool, g globals) {
	app := newAppFor(g, true)
	defer app.Close()

	inv := app.Inventory(nil)
	items := inv.Items()

	index, err := app.ItemResolver.Resolve(items, target)
	if err != nil {
		app.Fatal(err)
	}
	item := items[index]

	if !force {
		if g.nonInteractive {
			app.Fatal(fmt.Errorf("deleting paint %q requires --force in non-interactive mode", item.Name))
		}

		confirmed, err := app.Prompter.Confirm(fmt.Sprintf("Delete paint %q?", item.Name), false)
		if err != nil {
			app.Fatal(err)
		}
		if !confirmed {
			PrintInfo("Cancelled")
			return
		}
	}

	inv.DeleteItem(index)
	if err := app.ItemStore.LastSaveError(); err != nil {
		app.Fatal(err)
	}

	PrintSuccess("Deleted %s %s", ItemSwatch(item.Color), RenderBold(item.Name))
}
