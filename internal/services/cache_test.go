package services

import (
	"testing"
	"time"

	"finhealth/internal/engine"
)

func TestSnapshotCache(t *testing.T) {
	t.Run("version_must_match", func(t *testing.T) {
		c := NewSnapshotCache(4, time.Minute)
		snap := &engine.Snapshot{Score: 70}
		c.Put("u1", 3, snap)

		if got, ok := c.Get("u1", 3); !ok || got != snap {
			t.Error("expected a hit at the stored version")
		}
		if _, ok := c.Get("u1", 4); ok {
			t.Error("expected a miss at a newer version")
		}
		if _, ok := c.Get("u2", 3); ok {
			t.Error("expected a miss for another user")
		}
	})

	t.Run("invalidate", func(t *testing.T) {
		c := NewSnapshotCache(4, time.Minute)
		c.Put("u1", 1, &engine.Snapshot{})
		c.Invalidate("u1")
		if _, ok := c.Get("u1", 1); ok {
			t.Error("expected a miss after invalidation")
		}
		if c.Len() != 0 {
			t.Errorf("len = %d, want 0", c.Len())
		}
	})

	t.Run("ttl", func(t *testing.T) {
		c := NewSnapshotCache(4, 20*time.Millisecond)
		c.Put("u1", 1, &engine.Snapshot{})
		time.Sleep(60 * time.Millisecond)
		if _, ok := c.Get("u1", 1); ok {
			t.Error("expected entry to expire")
		}
	})

	t.Run("size_bound", func(t *testing.T) {
		c := NewSnapshotCache(2, time.Minute)
		c.Put("a", 1, &engine.Snapshot{})
		c.Put("b", 1, &engine.Snapshot{})
		c.Put("c", 1, &engine.Snapshot{})
		if c.Len() != 2 {
			t.Errorf("len = %d, want 2", c.Len())
		}
		if _, ok := c.Get("a", 1); ok {
			t.Error("expected the oldest user to be evicted")
		}
	})

	t.Run("nil_cache", func(t *testing.T) {
		var c *SnapshotCache
		c.Put("u1", 1, &engine.Snapshot{})
		c.Invalidate("u1")
		if _, ok := c.Get("u1", 1); ok {
			t.Error("nil cache must never hit")
		}
		if c.Len() != 0 {
			t.Error("nil cache must be empty")
		}
	})
}
