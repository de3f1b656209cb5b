package store

import "sync"

// MemorySlots implements Slots in memory. Nothing survives the process.
type MemorySlots struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemorySlots creates an empty in-memory slot store.
func NewMemorySlots() *MemorySlots {
	return &MemorySlots{values: make(map[string]string)}
}

// Get implements Slots.
func (s *MemorySlots) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set implements Slots.
func (s *MemorySlots) Set(key, value string) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

// Close implements Slots.
func (s *MemorySlots) Close() error {
	return nil
}
