package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

// MemoryStore keeps sessions in a process-local map. Expired entries are
// dropped lazily on read and in bulk by PurgeExpired, which main runs on a
// cron schedule.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

// NewMemoryStore creates a memory store with the given idle TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Create(_ context.Context, data Data) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[token] = memoryEntry{data: data, expiresAt: time.Now().Add(s.ttl)}
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return Data{}, ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, token)
		return Data{}, ErrNotFound
	}

	// Refresh the idle TTL
	entry.expiresAt = time.Now().Add(s.ttl)
	s.entries[token] = entry

	return entry.data, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, token)
	return nil
}

// PurgeExpired drops every expired entry and returns how many were removed.
func (s *MemoryStore) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for token, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, token)
			removed++
		}
	}
	return removed
}
