package services

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"finhealth/internal/engine"
)

type cachedSnapshot struct {
	version  int64
	snapshot *engine.Snapshot
}

// SnapshotCache holds the last computed snapshot per user. An entry is only
// served for the data version it was computed from and until its TTL lapses.
// A nil *SnapshotCache is a valid cache that never hits.
type SnapshotCache struct {
	lru *expirable.LRU[string, cachedSnapshot]
}

// NewSnapshotCache returns a cache holding up to size users for ttl.
func NewSnapshotCache(size int, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{lru: expirable.NewLRU[string, cachedSnapshot](size, nil, ttl)}
}

// Get returns the snapshot cached for userID at version.
func (c *SnapshotCache) Get(userID string, version int64) (*engine.Snapshot, bool) {
	if c == nil {
		return nil, false
	}
	entry, ok := c.lru.Get(userID)
	if !ok || entry.version != version {
		return nil, false
	}
	return entry.snapshot, true
}

// Put stores snapshot as computed from version.
func (c *SnapshotCache) Put(userID string, version int64, snapshot *engine.Snapshot) {
	if c == nil {
		return
	}
	c.lru.Add(userID, cachedSnapshot{version: version, snapshot: snapshot})
}

// Invalidate drops the user's entry.
func (c *SnapshotCache) Invalidate(userID string) {
	if c == nil {
		return
	}
	c.lru.Remove(userID)
}

// Len reports the number of live entries.
func (c *SnapshotCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
