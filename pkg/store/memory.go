package store

import (
	"sync"
	"time"
)

type memoryEntry struct {
	value    []byte
	expireAt int64 // epoch seconds, 0 = never expires
}

// MemoryStore is a map-backed Store with the same contract as FileStore,
// lazy expiration included. It is used for tests and for callers that
// want the store semantics without persistence.
type MemoryStore struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]memoryEntry
}

var _ Store = (*MemoryStore)(nil)

// NewMemory creates an empty in-memory store. Only the clock option is
// meaningful here; a filesystem option is ignored.
func NewMemory(opts ...Option) *MemoryStore {
	o := buildOptions(opts)
	return &MemoryStore{
		now:     o.now,
		entries: make(map[string]memoryEntry),
	}
}

// Save stores value under key, replacing any prior value and expiration.
func (s *MemoryStore) Save(key string, value []byte, opts ...SaveOption) error {
	if err := validateKey(key); err != nil {
		return err
	}
	var so saveOptions
	for _, opt := range opts {
		opt(&so)
	}

	entry := memoryEntry{value: append([]byte(nil), value...)}
	if expireAt, ok := so.expiry(s.now); ok {
		entry.expireAt = expireAt
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry
	return nil
}

// Load returns the value stored under key, removing it first if its
// expiration lies strictly in the past.
func (s *MemoryStore) Load(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	if entry.expireAt != 0 && s.now().Unix() > entry.expireAt {
		delete(s.entries, key)
		return nil, false, nil
	}
	return append([]byte(nil), entry.value...), true, nil
}

// Clear removes the key. Clearing an absent key is a no-op.
func (s *MemoryStore) Clear(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// ClearAll removes every entry.
func (s *MemoryStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]memoryEntry)
	return nil
}

// Size reports the summed byte size of all stored values.
func (s *MemoryStore) Size() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, entry := range s.entries {
		total += int64(len(entry.value))
	}
	return humanSize(total), nil
}
