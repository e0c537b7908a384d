package cache

// Item is a single cache entry: a key, an opaque payload, and the space the
// entry occupies in the cache's size budget.
//
// Items are immutable once stored. A Put on an existing key removes the old
// item wholesale and inserts a new one.
type Item[V any] struct {
	key   string
	value V
	size  int
}

// Key returns the item's key.
func (it Item[V]) Key() string { return it.key }

// Value returns the stored payload.
func (it Item[V]) Value() V { return it.value }

// Size returns the space the item occupies, in size units.
func (it Item[V]) Size() int { return it.size }
