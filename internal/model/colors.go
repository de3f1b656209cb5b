package model

import "regexp"

// DefaultColor is the color used when none is supplied.
const DefaultColor = "#aa3311"

// Palette is the set of swatch colors offered as suggestions.
// Suggestions cycle through this list based on the current item count.
var Palette = []string{
	"#aa3311", // red oxide
	"#e3b23c", // yellow ochre
	"#1f4e8c", // ultramarine
	"#2e6b3f", // sap green
	"#6b3e26", // burnt umber
	"#c2185b", // quinacridone rose
	"#f5f1e6", // titanium white
	"#1b1b1b", // ivory black
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// NextColor returns the suggested color for a new item,
// cycling through the palette based on the current item count.
func NextColor(itemCount int) string {
	if itemCount < 0 {
		itemCount = 0
	}
	return Palette[itemCount%len(Palette)]
}

// IsHexColor reports whether color is a #rgb or #rrggbb hex string.
// Renderers use it to decide whether a swatch can be drawn in that color;
// it is never used to reject input.
func IsHexColor(color string) bool {
	return hexColor.MatchString(color)
}
