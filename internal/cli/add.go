package cli

import (
	"errors"
	"fmt"

	"github.com/amterp/paintbox/internal/model"
	"github.com/amterp/paintbox/internal/prompt"
	"github.com/amterp/ra"
)

func registerAdd(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("add")
	cmd.SetDescription("Add a paint to the inventory")

	ctx.AddName, _ = ra.NewString("name").
		SetOptional(true).
		SetUsage("Paint name (prompted for if omitted)").
		Register(cmd)

	ctx.AddColor, _ = ra.NewString("color").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Swatch color, e.g. #aa3311 (default from config)").
		Register(cmd)

	ctx.AddUsed, _ = parent.RegisterCmd(cmd)
}

// addInput fills in whatever the user left off the command line.
// Name is prompted for when missing; color falls back to defaultColor,
// offered as the prefilled answer when a prompt is possible.
func addInput(p prompt.Prompter, name, color, defaultColor string) (string, string, error) {
	if name == "" {
		answer, err := p.Input("Paint name", "")
		if errors.Is(err, prompt.ErrNonInteractive) {
			return "", "", fmt.Errorf("paint name is required in non-interactive mode")
		}
		if err != nil {
			return "", "", err
		}
		name = answer
	}

	if color == "" {
		color = defaultColor
		answer, err := p.Input("Color", defaultColor)
		if err != nil && !errors.Is(err, prompt.ErrNonInteractive) {
			return "", "", err
		}
		if err == nil && answer != "" {
			color = answer
		}
	}

	return name, color, nil
}

func runAdd(name, color string, g globals) {
	app := newAppFor(g, true)
	defer app.Close()

	name, color, err := addInput(app.Prompter, name, color, app.Config.DefaultColor)
	if err != nil {
		app.Fatal(err)
	}

	inv := app.Inventory(nil)
	if !inv.Add(name, color) {
		PrintInfo("Nothing added: paint name is empty")
		return
	}
	if err := app.ItemStore.LastSaveError(); err != nil {
		app.Fatal(err)
	}

	item := inv.Items()[inv.Len()-1]
	if !model.IsHexColor(item.Color) {
		PrintWarning("%q is not a hex color; no swatch will be shown", item.Color)
	}
	PrintSuccess("Added %s %s (#%d)", ColorSwatch(item.Color), RenderBold(item.Name), inv.Len())
}
