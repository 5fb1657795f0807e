package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// TTL is a bounded, time-expiring key/value cache. Capacity and expiry
// are fixed at construction so callers own their cache instead of
// sharing an implicit process-wide one.
type TTL[T any] struct {
	store    *gocache.Cache
	capacity int
}

// New creates a TTL cache holding at most capacity entries for ttl each
func New[T any](capacity int, ttl time.Duration) *TTL[T] {
	return &TTL[T]{
		store:    gocache.New(ttl, ttl),
		capacity: capacity,
	}
}

// Get returns the cached value for key, if present and not expired
func (c *TTL[T]) Get(key string) (T, bool) {
	v, found := c.store.Get(key)
	if !found {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Set stores a value under key. When the cache is full, expired entries
// are dropped first; if it is still full the cache is flushed. Entries
// are cheap to refill, so coarse eviction beats unbounded growth.
func (c *TTL[T]) Set(key string, value T) {
	if c.store.ItemCount() >= c.capacity {
		c.store.DeleteExpired()
		if c.store.ItemCount() >= c.capacity {
			c.store.Flush()
		}
	}
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// Len returns the number of entries currently held, expired ones included
func (c *TTL[T]) Len() int {
	return c.store.ItemCount()
}
