package cache

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedCache_SetGet(t *testing.T) {
	c := NewUnifiedCache[string](time.Minute, "test", nil)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", "alpha")
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "alpha", v)

	m := c.GetMetrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, int64(1), m.Sets)
	assert.Equal(t, 1, c.Size())
}

func TestUnifiedCache_IdleExpiry(t *testing.T) {
	c := NewUnifiedCache[int](60*time.Millisecond, "test", nil)
	var evicted atomic.Int64
	c.OnEvict(func(key string, value int) { evicted.Add(1) })

	c.Set("k", 1)

	// Touching the entry keeps it alive past the original deadline.
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		_, ok := c.Get("k")
		require.True(t, ok)
	}

	// Left alone, the janitor collects it once the idle deadline passes.
	assert.Eventually(t, func() bool { return evicted.Load() == 1 }, time.Second, 20*time.Millisecond)
	assert.Equal(t, int64(1), c.GetMetrics().Evictions)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestUnifiedCache_GetOrCreateReplacesExpired(t *testing.T) {
	// No janitor: the expired entry is still stored when GetOrCreate runs.
	c := newUnifiedCache[int](20*time.Millisecond, 0, "test", nil)
	var evictedKeys []string
	c.OnEvict(func(key string, _ int) { evictedKeys = append(evictedKeys, key) })

	_, created := c.GetOrCreate("sid", func() int { return 1 })
	require.True(t, created)

	time.Sleep(30 * time.Millisecond)

	v, created := c.GetOrCreate("sid", func() int { return 2 })
	assert.True(t, created)
	assert.Equal(t, 2, v)
	assert.Equal(t, []string{"sid"}, evictedKeys)
	assert.Equal(t, int64(1), c.GetMetrics().Evictions)
	assert.Equal(t, 1, c.Size())
}

func TestUnifiedCache_GetOrCreate(t *testing.T) {
	c := NewUnifiedCache[*int](time.Minute, "test", nil)
	var created atomic.Int64

	var wg sync.WaitGroup
	results := make([]*int, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.GetOrCreate("shared", func() *int {
				created.Add(1)
				n := 7
				return &n
			})
		}(i)
	}
	wg.Wait()

	first, ok := c.Get("shared")
	require.True(t, ok)
	for _, r := range results {
		assert.Same(t, first, r)
	}
	assert.Equal(t, int64(1), created.Load())
}

func TestUnifiedCache_DeleteNotifies(t *testing.T) {
	c := NewUnifiedCache[string](time.Minute, "test", nil)
	var keys []string
	c.OnEvict(func(key string, _ string) { keys = append(keys, key) })

	c.Set("gone", "x")
	c.Delete("gone")

	_, ok := c.Get("gone")
	assert.False(t, ok)
	assert.Equal(t, []string{"gone"}, keys)
	assert.Equal(t, int64(1), c.GetMetrics().Evictions)
}
