// Package cache holds the last known result of each read query.
//
// Writers never put values into the cache; they mark entries stale so the
// next read goes back to the relay.
package cache

import (
	"context"
	"sync"
)

// Key identifies a logical query. Subject is usually an event id and Variant
// distinguishes shapes of the same query (filters, acting user).
type Key struct {
	Scope   string
	Subject string
	Variant string
}

type entry struct {
	value   any
	stale   bool
	filled  bool
	version uint64
}

type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
}

func New() *Cache {
	return &Cache{entries: make(map[Key]*entry)}
}

// Get returns the cached value for key when it is present and not stale.
func (c *Cache) Get(key Key) (any, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.filled || e.stale {
		return nil, false
	}

	return e.value, true
}

// begin registers an in-flight load and returns its version. Any later load
// or invalidation of the same key moves the version on.
func (c *Cache) begin(key Key) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	e.version++

	return e.version
}

// commit stores value if version is still current.
func (c *Cache) commit(key Key, version uint64, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.version != version {
		return false
	}

	e.value = value
	e.filled = true
	e.stale = false

	return true
}

func (c *Cache) markStale(e *entry) {
	e.stale = true
	e.version++
}

// Invalidate marks every variant of (scope, subject) stale.
func (c *Cache) Invalidate(scope, subject string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for k, e := range c.entries {
		if k.Scope == scope && k.Subject == subject {
			c.markStale(e)
		}
	}
}

// InvalidateScope marks every entry of scope stale.
func (c *Cache) InvalidateScope(scope string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for k, e := range c.entries {
		if k.Scope == scope {
			c.markStale(e)
		}
	}
}

// Purge drops everything, e.g. after switching relays.
func (c *Cache) Purge() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		c.markStale(e)
		e.value = nil
		e.filled = false
	}
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if e.filled {
			n++
		}
	}

	return n
}

// Fetch returns the fresh cached value for key or calls load. The loaded
// value is stored only when ctx is still live and no newer load or
// invalidation of key happened in between. A nil cache always loads.
func Fetch[T any](ctx context.Context, c *Cache, key Key, load func(ctx context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}

	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	version := c.begin(key)

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}

	c.commit(key, version, value)

	return value, nil
}
