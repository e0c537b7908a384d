package cache

import "fmt"

// PolicyKind selects one of the built-in eviction policies.
type PolicyKind string

// Built-in policy kinds.
const (
	LIFO PolicyKind = "lifo"
	FIFO PolicyKind = "fifo"
	LRU  PolicyKind = "lru"
)

// Kinds returns every built-in policy kind, in reporting order.
func Kinds() []PolicyKind {
	return []PolicyKind{LIFO, FIFO, LRU}
}

// Policy tracks key ordering for eviction decisions.
//
// A policy stores key identity and order only, never values. The owning
// Cache mutates it in lockstep with every insertion, access, and removal.
//
// Contract:
// - Concurrency: single-owner, like the Cache that holds it.
// - Ownership: the policy never outlives its cache.
// - Victim may discard entries for keys the resident predicate rejects.
type Policy interface {
	// Name returns the policy's kind name for reporting.
	Name() string

	// OnAccess records a successful lookup of key.
	OnAccess(key string)

	// OnPut records an insertion or replacement of key.
	OnPut(key string)

	// Victim returns the next eviction victim among keys for which
	// resident reports true, removing it from the policy's order
	// structure. It reports false when no live key remains.
	Victim(resident func(key string) bool) (string, bool)
}

// NewPolicy constructs the built-in policy for kind.
func NewPolicy(kind PolicyKind) (Policy, error) {
	switch kind {
	case LIFO:
		return NewLIFO(), nil
	case FIFO:
		return NewFIFO(), nil
	case LRU:
		return NewLRU(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, kind)
	}
}

// removeKey deletes the first occurrence of key from order, preserving the
// relative order of the remaining keys.
func removeKey(order []string, key string) []string {
	for i, k := range order {
		if k == key {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
