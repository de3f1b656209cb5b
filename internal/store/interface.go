package store

import "github.com/amterp/paintbox/internal/model"

// Slots is a persistent key-value store. Each key is one slot whose value is
// always written in full.
type Slots interface {
	// Get returns the value for key. ok is false when the slot was never written.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// ItemStore handles paint item persistence.
type ItemStore interface {
	Load() []model.PaintItem
	Save(items []model.PaintItem) error
}

// ConfigStore handles data directory config persistence.
type ConfigStore interface {
	Load() (*model.Config, error)
	Save(config *model.Config) error
	Exists() bool
}
