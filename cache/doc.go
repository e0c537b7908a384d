// Package cache provides a size-bounded in-memory cache with pluggable
// eviction policies.
//
// It provides a generic Cache that owns the key→item mapping, the size
// budget, and hit/miss bookkeeping, and a Policy interface that decides
// which key to evict when a Put would exceed the budget. Three policies
// are built in: LIFO (evict the newest insert), FIFO (evict the oldest
// insert), and LRU (evict the least recently touched key).
//
// A Cache is a single-owner data structure: it is not safe for concurrent
// use and performs no I/O.
package cache
