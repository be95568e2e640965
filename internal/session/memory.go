package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/flight-booking/flight-booking-gateway/internal/infrastructure/timeutil"
)

// MemoryStore is an in-process Store. Entries expire lazily: an expired entry
// is treated as absent on read and overwritten on write.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	clock   timeutil.Clock
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryStore creates a MemoryStore with the given per-entry TTL.
func NewMemoryStore(ttl time.Duration, clock timeutil.Clock) *MemoryStore {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, sessionID, key string, dest any) error {
	s.mu.RLock()
	entry, ok := s.entries[storeKey(sessionID, key)]
	s.mu.RUnlock()

	if !ok || s.clock.Now().After(entry.expiresAt) {
		return ErrNotFound
	}

	if err := json.Unmarshal(entry.data, dest); err != nil {
		return fmt.Errorf("decode session value %q: %w", key, err)
	}
	return nil
}

// Set implements Store.
func (s *MemoryStore) Set(_ context.Context, sessionID, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode session value %q: %w", key, err)
	}

	s.mu.Lock()
	s.entries[storeKey(sessionID, key)] = memoryEntry{
		data:      data,
		expiresAt: s.clock.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, sessionID, key string) error {
	s.mu.Lock()
	delete(s.entries, storeKey(sessionID, key))
	s.mu.Unlock()
	return nil
}

// storeKey namespaces a scratch key by session.
func storeKey(sessionID, key string) string {
	return sessionID + ":" + key
}

var _ Store = (*MemoryStore)(nil)
