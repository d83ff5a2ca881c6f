package persist

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store for tests. Values round-trip through
// JSON so it behaves like the file store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]json.RawMessage)}
}

// Save implements Store.
func (s *MemoryStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling %q: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = data
	return nil
}

// Load implements Store.
func (s *MemoryStore) Load(key string, into any) (bool, error) {
	s.mu.RLock()
	data, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, into); err != nil {
		return false, fmt.Errorf("unmarshaling %q: %w", key, err)
	}
	return true, nil
}
