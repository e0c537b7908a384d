// Package sequence generates synthetic cache access sequences.
//
// It provides three distributions (cyclic, uniform-random, and
// locality-windowed) that produce finite, replayable lists of (key, value,
// size) accesses for a configured number of distinct keys. Every sequence
// opens with a warm-up pass that touches each distinct key once.
//
// The random distributions take an explicit *rand.Rand so callers control
// reproducibility.
package sequence
