package resolver

import (
	"strconv"
	"strings"

	painterr "github.com/amterp/paintbox/internal/errors"
	"github.com/amterp/paintbox/internal/model"
	"github.com/amterp/paintbox/internal/util"
)

// ItemResolver turns a user-supplied position or name into an index.
type ItemResolver struct{}

// NewItemResolver creates a new item resolver.
func NewItemResolver() *ItemResolver {
	return &ItemResolver{}
}

// Resolve finds an item by 1-based position (as printed by list) or by name.
// Tries position first, then falls back to the first item whose folded name
// matches, so an item literally named "42" is still reachable when there are
// fewer than 42 items.
func (r *ItemResolver) Resolve(items []model.PaintItem, positionOrName string) (int, error) {
	arg := strings.TrimSpace(positionOrName)

	if pos, err := strconv.Atoi(arg); err == nil && pos >= 1 && pos <= len(items) {
		return pos - 1, nil
	}

	key := util.FoldName(arg)
	if key == "" {
		return -1, painterr.ItemNotFound(positionOrName)
	}
	for i, item := range items {
		if util.FoldName(item.Name) == key {
			return i, nil
		}
	}

	return -1, painterr.ItemNotFound(arg)
}
