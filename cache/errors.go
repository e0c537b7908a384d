package cache

import "errors"

// User-facing errors.
var (
	// ErrInvalidCapacity indicates a non-positive capacity was requested.
	ErrInvalidCapacity = errors.New("cache: capacity must be positive")

	// ErrNilPolicy indicates no eviction policy was provided.
	ErrNilPolicy = errors.New("cache: eviction policy is nil")

	// ErrUnknownPolicy indicates an unrecognized policy kind.
	ErrUnknownPolicy = errors.New("cache: unknown eviction policy")

	// ErrInvalidKey indicates an empty or whitespace-only key.
	ErrInvalidKey = errors.New("cache: key is invalid")

	// ErrInvalidSize indicates a negative item size.
	ErrInvalidSize = errors.New("cache: item size must be non-negative")

	// ErrOversizedItem indicates a Put whose size exceeds the cache
	// capacity. The put is rejected atomically: cache state is unchanged.
	ErrOversizedItem = errors.New("cache: item size exceeds capacity")
)

// Internal errors.
var (
	// ErrNoVictim indicates eviction was required but the policy produced
	// no victim while items remain. It signals corrupted policy
	// bookkeeping, not a normal user error.
	ErrNoVictim = errors.New("cache: eviction required but no victim available")
)
