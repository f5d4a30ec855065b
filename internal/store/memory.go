package store

import (
	"errors"
	"sync"

	"hko-district-weather/internal/weather"
)

var (
	// ErrNotFound is returned before the first successful refresh has stored
	// a snapshot.
	ErrNotFound = errors.New("no weather snapshot available")
)

// MemoryStore is a concurrency-safe in-memory holder for the latest aggregate
// snapshot. Historical readings are not persisted; a new snapshot replaces
// the previous one wholesale, so readers never see a mix of stale and fresh
// district values.
type MemoryStore struct {
	mu sync.RWMutex

	latest    weather.AggregateSnapshot
	hasLatest bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SaveSnapshot replaces the stored snapshot.
func (s *MemoryStore) SaveSnapshot(snapshot weather.AggregateSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = snapshot
	s.hasLatest = true
}

// GetLatest returns the most recent snapshot.
func (s *MemoryStore) GetLatest() (weather.AggregateSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasLatest {
		return weather.AggregateSnapshot{}, ErrNotFound
	}
	return s.latest, nil
}
