package cache

import (
	"fmt"
	"strings"
)

// Stats is a snapshot of a cache's hit/miss counters.
type Stats struct {
	Hits   int
	Misses int
}

// Cache is a size-bounded key→value store with a fixed eviction policy.
//
// Capacity is expressed in size units, not item count, and is fixed for the
// cache's lifetime. The policy is chosen at construction time and is not
// swappable.
//
// Contract:
// - Concurrency: single-owner; callers must not share a Cache across
//   goroutines without external synchronization.
// - Errors: Get never errors; Put returns ErrOversizedItem for items that
//   can never fit and leaves the cache unchanged.
type Cache[V any] struct {
	maxSize     int
	currentSize int
	hits        int
	misses      int
	items       map[string]Item[V]
	policy      Policy
}

// New constructs a cache with the given capacity and eviction policy.
// Capacity must be positive.
func New[V any](capacity int, policy Policy) (*Cache[V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	if policy == nil {
		return nil, ErrNilPolicy
	}
	return &Cache[V]{
		maxSize: capacity,
		items:   make(map[string]Item[V]),
		policy:  policy,
	}, nil
}

// Get returns the value stored under key and whether it was present.
//
// A hit bumps the hit counter and notifies the policy of the access; a miss
// only bumps the miss counter. Get never changes size accounting.
func (c *Cache[V]) Get(key string) (V, bool) {
	it, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.policy.OnAccess(key)
	return it.value, true
}

// Put inserts or replaces the entry for key.
//
// A size larger than the capacity is rejected with ErrOversizedItem. If key
// already exists, its old entry is fully removed first; the new entry's
// position is then whatever the policy's OnPut semantics assign. Items are
// evicted per the policy until the new entry fits.
//
// A wrapped ErrNoVictim means the policy lost track of resident keys; the
// put is aborted rather than leaving the cache over budget.
func (c *Cache[V]) Put(key string, value V, size int) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if size < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if size > c.maxSize {
		return fmt.Errorf("%w: size %d > capacity %d", ErrOversizedItem, size, c.maxSize)
	}

	if _, ok := c.items[key]; ok {
		c.removeItem(key)
	}

	for c.currentSize+size > c.maxSize && len(c.items) > 0 {
		victim, ok := c.policy.Victim(c.resident)
		if !ok {
			return fmt.Errorf("%w: %d items resident", ErrNoVictim, len(c.items))
		}
		c.removeItem(victim)
	}

	c.items[key] = Item[V]{key: key, value: value, size: size}
	c.currentSize += size
	c.policy.OnPut(key)
	return nil
}

// HitRatio returns hits/(hits+misses), or 0 when no lookups have occurred.
func (c *Cache[V]) HitRatio() float64 {
	total := c.hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(c.hits) / float64(total)
}

// Stats returns a snapshot of the hit/miss counters.
func (c *Cache[V]) Stats() Stats {
	return Stats{Hits: c.hits, Misses: c.misses}
}

// Len returns the number of resident items.
func (c *Cache[V]) Len() int { return len(c.items) }

// Size returns the occupied portion of the size budget.
func (c *Cache[V]) Size() int { return c.currentSize }

// MaxSize returns the fixed capacity.
func (c *Cache[V]) MaxSize() int { return c.maxSize }

// PolicyName returns the name of the cache's eviction policy.
func (c *Cache[V]) PolicyName() string { return c.policy.Name() }

// Contains reports residency without touching counters or policy state.
func (c *Cache[V]) Contains(key string) bool {
	_, ok := c.items[key]
	return ok
}

// Keys returns the resident keys in unspecified order.
func (c *Cache[V]) Keys() []string {
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	return keys
}

// resident reports whether key currently maps to an item. Policies use it
// to skip stale order entries during victim selection.
func (c *Cache[V]) resident(key string) bool {
	_, ok := c.items[key]
	return ok
}

func (c *Cache[V]) removeItem(key string) {
	it, ok := c.items[key]
	if !ok {
		return
	}
	c.currentSize -= it.size
	delete(c.items, key)
}

// ValidateKey checks whether key is usable as a cache key.
func ValidateKey(key string) error {
	if key == "" || strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	return nil
}
