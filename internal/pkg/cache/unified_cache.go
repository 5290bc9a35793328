package cache

import (
	"sync"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// CacheMetrics tracks cache performance
type CacheMetrics struct {
	Hits      int64
	Misses    int64
	Sets      int64
	Evictions int64
}

// UnifiedCache is a typed store over go-cache. Entries expire after ttl
// without access; every successful Get pushes the deadline out again.
type UnifiedCache[T any] struct {
	items  *gocache.Cache
	ttl    time.Duration
	name   string
	logger *zap.Logger

	hits, misses, sets, evictions atomic.Int64
	onEvict                       func(key string, value T)

	// createMu serialises GetOrCreate so clearing a stale entry never races a
	// fresh insert for the same key.
	createMu sync.Mutex
}

// NewUnifiedCache creates a new generic cache with specified idle TTL and name
func NewUnifiedCache[T any](ttl time.Duration, name string, logger *zap.Logger) *UnifiedCache[T] {
	return newUnifiedCache[T](ttl, ttl/2, name, logger)
}

// newUnifiedCache allows a custom janitor interval; zero disables the janitor.
func newUnifiedCache[T any](ttl, cleanup time.Duration, name string, logger *zap.Logger) *UnifiedCache[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &UnifiedCache[T]{
		items:  gocache.New(ttl, cleanup),
		ttl:    ttl,
		name:   name,
		logger: logger,
	}
	c.items.OnEvicted(func(key string, v interface{}) {
		c.evictions.Add(1)
		c.logger.Debug("Cache evict",
			zap.String("cache", c.name),
			zap.String("key", key),
		)
		if c.onEvict == nil {
			return
		}
		if value, ok := v.(T); ok {
			c.onEvict(key, value)
		}
	})
	return c
}

// OnEvict registers fn to run when an entry expires or is deleted. Set it
// before the cache is shared.
func (c *UnifiedCache[T]) OnEvict(fn func(key string, value T)) {
	c.onEvict = fn
}

// Set stores an item in the cache with the given key
func (c *UnifiedCache[T]) Set(key string, value T) {
	c.items.Set(key, value, gocache.DefaultExpiration)
	c.sets.Add(1)

	c.logger.Debug("Cache set",
		zap.String("cache", c.name),
		zap.String("key", key),
		zap.Duration("ttl", c.ttl),
	)
}

// Get retrieves an item and refreshes its idle deadline.
func (c *UnifiedCache[T]) Get(key string) (T, bool) {
	v, found := c.items.Get(key)
	value, ok := v.(T)
	if !found || !ok {
		c.misses.Add(1)
		var zero T
		c.logger.Debug("Cache miss",
			zap.String("cache", c.name),
			zap.String("key", key),
		)
		return zero, false
	}

	c.items.Set(key, value, gocache.DefaultExpiration)
	c.hits.Add(1)
	return value, true
}

// GetOrCreate returns the entry for key, building it with create on a miss.
// The second result is true when a new entry was stored. An expired entry the
// janitor has not collected yet is evicted first, so OnEvict always runs for
// the value being replaced.
func (c *UnifiedCache[T]) GetOrCreate(key string, create func() T) (T, bool) {
	if value, ok := c.Get(key); ok {
		return value, false
	}

	c.createMu.Lock()
	defer c.createMu.Unlock()

	if value, ok := c.Get(key); ok {
		return value, false
	}
	c.items.Delete(key)

	value := create()
	c.items.Set(key, value, gocache.DefaultExpiration)
	c.sets.Add(1)
	return value, true
}

// Delete removes an item from the cache
func (c *UnifiedCache[T]) Delete(key string) {
	c.items.Delete(key)
}

// Clear removes all items from the cache
func (c *UnifiedCache[T]) Clear() {
	c.items.Flush()
	c.logger.Info("Cache cleared", zap.String("cache", c.name))
}

// GetMetrics returns current cache metrics
func (c *UnifiedCache[T]) GetMetrics() CacheMetrics {
	return CacheMetrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Sets:      c.sets.Load(),
		Evictions: c.evictions.Load(),
	}
}

// Size returns the number of items in the cache, including expired items not
// yet collected.
func (c *UnifiedCache[T]) Size() int {
	return c.items.ItemCount()
}
