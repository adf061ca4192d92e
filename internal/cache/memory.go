// Package cache provides the chain-resolution cache and the admin
// league-config store. The in-memory implementations are the default; the
// Redis-backed ones exist for multi-instance deployments where a process-local
// cache would be resolved once per instance.
package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryChainCache is a process-local chain cache with a TTL. Safe for
// concurrent use; multiple simultaneous dashboard requests may race on first
// population for the same key, and last write wins.
type MemoryChainCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	chain   []string
	expires time.Time
}

// NewMemoryChainCache creates a cache. A non-positive ttl disables expiry
// (process-lifetime entries).
func NewMemoryChainCache(ttl time.Duration) *MemoryChainCache {
	return &MemoryChainCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryChainCache) Get(_ context.Context, leagueID string) ([]string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[leagueID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !entry.expires.IsZero() && time.Now().After(entry.expires) {
		c.mu.Lock()
		delete(c.entries, leagueID)
		c.mu.Unlock()
		return nil, false
	}
	return entry.chain, true
}

func (c *MemoryChainCache) Set(_ context.Context, leagueID string, chain []string) {
	entry := memoryEntry{chain: chain}
	if c.ttl > 0 {
		entry.expires = time.Now().Add(c.ttl)
	}
	c.mu.Lock()
	c.entries[leagueID] = entry
	c.mu.Unlock()
}

// MemoryConfigStore holds the configured dashboard league ID in memory.
type MemoryConfigStore struct {
	mu       sync.RWMutex
	leagueID string
}

func NewMemoryConfigStore(initial string) *MemoryConfigStore {
	return &MemoryConfigStore{leagueID: initial}
}

func (s *MemoryConfigStore) LeagueID(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leagueID, nil
}

func (s *MemoryConfigStore) SetLeagueID(_ context.Context, leagueID string) error {
	s.mu.Lock()
	s.leagueID = leagueID
	s.mu.Unlock()
	return nil
}
