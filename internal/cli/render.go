package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/amterp/paintbox/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// EmptyMessage is shown in place of rows when the inventory is empty.
const EmptyMessage = "No paints yet"

// TextRenderer draws the inventory as numbered rows on a writer.
// Positions are 1-based, matching what delete accepts.
type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Render implements inventory.Renderer.
func (r *TextRenderer) Render(items []model.PaintItem) {
	if len(items) == 0 {
		fmt.Fprintln(r.w, RenderMuted(EmptyMessage))
		return
	}

	nameWidth := 0
	for _, item := range items {
		nameWidth = max(nameWidth, lipgloss.Width(item.Name))
	}
	posWidth := len(fmt.Sprintf("%d", len(items)))

	for i, item := range items {
		pos := fmt.Sprintf("[%*d]", posWidth, i+1)
		name := item.Name + strings.Repeat(" ", nameWidth-lipgloss.Width(item.Name))
		fmt.Fprintf(r.w, "  %s  %s  %s  %s\n", RenderMuted(pos), ItemSwatch(item.Color), name, RenderMuted(item.Color))
	}
}

// ItemSwatch renders the swatch for an item color. Colors that are not hex
// get a muted placeholder instead of whatever the terminal makes of them.
func ItemSwatch(color string) string {
	if !model.IsHexColor(color) {
		return StyleMuted.Render("░░")
	}
	return ColorSwatch(color)
}

// printJson outputs v as indented JSON to stdout.
func printJson(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}
