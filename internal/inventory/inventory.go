// Package inventory owns the in-memory paint collection and keeps it
// mirrored to storage and to whatever is displaying it.
//
// Every mutation runs to completion in the same order: change the
// collection, persist it, re-render. An Inventory is not safe for concurrent
// use; frontends that receive events on several goroutines must serialize
// their calls.
package inventory

import (
	"github.com/amterp/paintbox/internal/model"
	"github.com/amterp/paintbox/internal/store"
	"go.uber.org/zap"
)

// Renderer displays the collection. Render must replace whatever was shown
// before: one row per item in order, or an empty-state placeholder when
// items is empty.
type Renderer interface {
	Render(items []model.PaintItem)
}

// Form is the input surface an item is added from.
type Form interface {
	Name() string
	Color() string
	ClearName()
}

// Inventory is the application state: the collection plus the store and
// renderer it is mirrored to.
type Inventory struct {
	items    []model.PaintItem
	store    store.ItemStore
	renderer Renderer
	log      *zap.Logger
}

// New creates an empty inventory. Call Start to load and display it.
func New(itemStore store.ItemStore, renderer Renderer, log *zap.Logger) *Inventory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Inventory{
		items:    []model.PaintItem{},
		store:    itemStore,
		renderer: renderer,
		log:      log,
	}
}

// Start loads the collection from storage and renders it.
func (inv *Inventory) Start() {
	inv.items = inv.store.Load()
	inv.render()
}

// Reload re-reads storage and re-renders. Used when the slot was changed
// outside this process.
func (inv *Inventory) Reload() {
	inv.Start()
}

// AddItem appends the item described by form. A blank name is silently
// ignored: nothing is saved, rendered, or cleared. Reports whether an item
// was added.
func (inv *Inventory) AddItem(form Form) bool {
	if !inv.Add(form.Name(), form.Color()) {
		return false
	}
	form.ClearName()
	return true
}

// Add appends {name, color}. A blank name is a silent no-op.
func (inv *Inventory) Add(name, color string) bool {
	name = model.NormalizeName(name)
	if name == "" {
		inv.log.Debug("ignoring item with empty name")
		return false
	}

	inv.items = append(inv.items, model.PaintItem{Name: name, Color: color})
	inv.commit()
	return true
}

// DeleteItem removes the item at index and shifts later items left.
//
// index must be valid at call time; delete controls capture it when rows are
// rendered and every render replaces every control. An out of range index is
// logged and ignored.
func (inv *Inventory) DeleteItem(index int) bool {
	if index < 0 || index >= len(inv.items) {
		inv.log.Warn("ignoring delete of missing item", zap.Int("index", index), zap.Int("len", len(inv.items)))
		return false
	}

	inv.items = append(inv.items[:index], inv.items[index+1:]...)
	inv.commit()
	return true
}

// Items returns a copy of the collection.
func (inv *Inventory) Items() []model.PaintItem {
	return model.CloneItems(inv.items)
}

// Len returns the number of items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

func (inv *Inventory) commit() {
	if err := inv.store.Save(inv.items); err != nil {
		inv.log.Error("failed to save inventory", zap.Error(err))
	}
	inv.render()
}

func (inv *Inventory) render() {
	if inv.renderer == nil {
		return
	}
	inv.renderer.Render(model.CloneItems(inv.items))
}
