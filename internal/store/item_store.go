package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amterp/paintbox/internal/model"
	"go.uber.org/zap"
)

// StorageKey is the slot that holds the whole inventory.
const StorageKey = "paint-inventory-v1"

// SlotItemStore implements ItemStore on top of a single slot.
type SlotItemStore struct {
	slots Slots
	log   *zap.Logger
}

// NewItemStore creates an item store backed by slots.
func NewItemStore(slots Slots, log *zap.Logger) *SlotItemStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &SlotItemStore{slots: slots, log: log}
}

// Load reads the inventory. A missing slot yields an empty inventory.
// Unreadable or malformed data is logged and also yields an empty inventory.
// Entries without a name are skipped with a warning.
func (s *SlotItemStore) Load() []model.PaintItem {
	value, ok, err := s.slots.Get(StorageKey)
	if err != nil {
		s.log.Error("failed to read inventory", zap.String("key", StorageKey), zap.Error(err))
		return []model.PaintItem{}
	}
	if !ok || strings.TrimSpace(value) == "" {
		return []model.PaintItem{}
	}

	var items []model.PaintItem
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		s.log.Error("failed to parse inventory", zap.String("key", StorageKey), zap.Error(err))
		return []model.PaintItem{}
	}

	valid := make([]model.PaintItem, 0, len(items))
	for i, item := range items {
		if !item.Valid() {
			s.log.Warn("skipping inventory entry without a name",
				zap.String("key", StorageKey), zap.Int("index", i))
			continue
		}
		valid = append(valid, item)
	}
	return valid
}

// Save overwrites the slot with the full inventory.
func (s *SlotItemStore) Save(items []model.PaintItem) error {
	if items == nil {
		items = []model.PaintItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal inventory: %w", err)
	}

	if err := s.slots.Set(StorageKey, string(data)); err != nil {
		return err
	}
	return nil
}
