package repository

import (
	"context"
	"sync"
	"time"
)

type mockEntry struct {
	value     string
	expiresAt time.Time
}

// MockCache is the in-process cache used when no Redis address is
// configured, and in tests.
type MockCache struct {
	mu   sync.RWMutex
	data map[string]mockEntry
	ttl  time.Duration
	now  func() time.Time

	hits   int
	misses int
}

// NewMockCache returns an empty cache whose entries expire after ttl; 0
// keeps them.
func NewMockCache(ttl time.Duration) *MockCache {
	return &MockCache{
		data: make(map[string]mockEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.data[key]
	if ok && !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		delete(m.data, key)
		ok = false
	}
	if !ok {
		m.misses++
		return "", false
	}
	m.hits++
	return entry.value, true
}

func (m *MockCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := mockEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}
	m.data[key] = entry
	return nil
}

// Stats returns the number of hits and misses served so far.
func (m *MockCache) Stats() (hits, misses int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hits, m.misses
}
