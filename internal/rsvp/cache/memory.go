package cache

import (
	"context"
	"sync"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
)

type memoryEntry struct {
	flags   domain.UserFlags
	expires time.Time
}

// Memory is a process-local FlagCache. Expired entries are dropped on read.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry

	now func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, userID string) (domain.UserFlags, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[userID]
	m.mu.RUnlock()
	if !ok {
		return domain.UserFlags{}, false, nil
	}
	if !m.now().Before(e.expires) {
		m.mu.Lock()
		// Re-check under the write lock; a Set may have landed in between.
		if cur, ok := m.entries[userID]; ok && !m.now().Before(cur.expires) {
			delete(m.entries, userID)
		}
		m.mu.Unlock()
		return domain.UserFlags{}, false, nil
	}
	return e.flags, true, nil
}

func (m *Memory) Set(_ context.Context, userID string, flags domain.UserFlags) error {
	m.mu.Lock()
	m.entries[userID] = memoryEntry{flags: flags, expires: m.now().Add(m.ttl)}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Invalidate(_ context.Context, userID string) error {
	m.mu.Lock()
	delete(m.entries, userID)
	m.mu.Unlock()
	return nil
}

// Len reports the number of entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
