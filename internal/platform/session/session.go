// Package session provides the key/value byte storage that backs every
// collection for the lifetime of one EMS session. State lives exactly as
// long as the store instance: Reset wipes it, Close ends the session.
//
// Writes are immediately visible to subsequent reads. There is no TTL and
// no eviction. The store knows nothing about collections or JSON; that
// layering belongs to the storage package.
package session

import "sync"

type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
	// Reset clears every key, the explicit session teardown.
	Reset() error
	Close() error
}

// MemoryStore is the default backend. The mutex only makes the store safe
// to touch from the HTTP server's goroutines; it is not a transaction
// discipline, and read-modify-write sequences built on top still race.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = stored
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *MemoryStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string][]byte)
	return nil
}

func (s *MemoryStore) Close() error {
	return s.Reset()
}
