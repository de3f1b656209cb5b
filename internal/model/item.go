package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// PaintItem is a single named, colored inventory entry.
// Items have no identity beyond their position in the inventory.
type PaintItem struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// NormalizeName trims surrounding whitespace and composes the name to NFC so
// that visually identical names are stored identically.
// An empty result means the name is unusable.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// Valid reports whether the item satisfies the inventory invariant:
// a non-empty name. Color is unrestricted.
func (p PaintItem) Valid() bool {
	return strings.TrimSpace(p.Name) != ""
}

// CloneItems returns a copy of items that never aliases the input.
// The result is non-nil even for an empty input.
func CloneItems(items []PaintItem) []PaintItem {
	out := make([]PaintItem, len(items))
	copy(out, items)
	return out
}
