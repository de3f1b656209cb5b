package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	colorAccent    = "86"  // titles
	colorHighlight = "205" // selected row, focused field label
	colorMuted     = "241" // hints, placeholders
	colorText      = "252"
)

var styles = struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Empty    lipgloss.Style
	Box      lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)),
	Label: lipgloss.NewStyle().
		Width(7).
		Foreground(lipgloss.Color(colorMuted)),
	Focused: lipgloss.NewStyle().
		Width(7).
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)),
	Selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Empty: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(colorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorAccent)).
		Padding(0, 1),
}

// swatch renders a two-cell block in color, or a muted placeholder when
// the color is not something the terminal can draw.
func swatch(color string, hex bool) string {
	if !hex {
		return styles.Muted.Render("░░")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}
