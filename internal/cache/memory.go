package cache

import (
	"context"
	"sync"
	"time"

	"github.com/emily-flambe/naptime/internal/domain"
)

type memoryEntry struct {
	advisory  domain.Advisory
	expiresAt time.Time
}

// Memory is an in-process Cache: a mutex-guarded map with per-entry expiry.
// Entries are stored by value so a cached advisory cannot be mutated through
// a retained pointer.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	clock   func() time.Time
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		clock:   time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) (*domain.Advisory, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if !m.clock().Before(entry.expiresAt) {
		delete(m.entries, key)
		return nil, false
	}

	adv := entry.advisory
	return &adv, true
}

func (m *Memory) Set(_ context.Context, key string, adv *domain.Advisory, ttl time.Duration) {
	if adv == nil || ttl <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		advisory:  *adv,
		expiresAt: m.clock().Add(ttl),
	}
}

func (m *Memory) Flush(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]memoryEntry)
}
