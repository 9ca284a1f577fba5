// Package cache provides a small generic LRU cache.
//
// The rasterizers use it to keep brush shapes between calls:
//
//	brushes := cache.New[int, []raster.Run](32)
//	runs := brushes.GetOrCreate(w, func() []raster.Run { return raster.Brush(w) })
package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most limit entries.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	order   *lruList[K]
	limit   int
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a cache holding at most limit entries.
// A limit of 0 or less means unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[K, V]),
		order:   newLRUList[K](),
		limit:   limit,
	}
}

// Get returns the value stored under key and marks it recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(e.node)
	return e.value, true
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create runs under the lock, so it is called at most once per miss.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.order.MoveToFront(e.node)
		return e.value
	}
	v := create()
	c.set(key, v)
	return v
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Caller must hold c.mu.
func (c *Cache[K, V]) set(key K, value V) {
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.order.MoveToFront(e.node)
		return
	}
	c.entries[key] = &entry[K, V]{value: value, node: c.order.PushFront(key)}
	for c.limit > 0 && c.order.Len() > c.limit {
		oldest, ok := c.order.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, oldest)
	}
}
