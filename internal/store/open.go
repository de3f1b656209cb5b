package store

import (
	"github.com/amterp/paintbox/internal/config"
	painterr "github.com/amterp/paintbox/internal/errors"
	"github.com/amterp/paintbox/internal/model"
)

// OpenSlots returns the slot backend named by backend.
func OpenSlots(backend string, paths *config.Paths) (Slots, error) {
	switch backend {
	case "", model.BackendFile:
		return NewFileSlots(paths), nil
	case model.BackendSQLite:
		return NewSQLiteSlots(paths.SQLitePath())
	default:
		return nil, painterr.InvalidField("backend", backend)
	}
}
