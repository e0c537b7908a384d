package bench

import (
	"errors"
	"math"
	"testing"

	"github.com/jonwraymond/cachebench/cache"
	"github.com/jonwraymond/cachebench/sequence"
)

func newCache(t *testing.T, capacity int, kind cache.PolicyKind) *cache.Cache[string] {
	t.Helper()
	policy, err := cache.NewPolicy(kind)
	if err != nil {
		t.Fatal(err)
	}
	c, err := cache.New[string](capacity, policy)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// TestRunOnce_CyclicWarmCache pins the end-to-end scenario: capacity 3,
// cyclic sequence over 3 keys of length 9. The 3 warm-up accesses miss, the
// 6 repeats hit, so every policy converges to a hit ratio of exactly 6/9.
func TestRunOnce_CyclicWarmCache(t *testing.T) {
	seq, err := sequence.Cyclic(sequence.Config{Items: 3, Length: 9})
	if err != nil {
		t.Fatal(err)
	}

	for _, kind := range cache.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			c := newCache(t, 3, kind)

			ratio, err := RunOnce(c, seq)
			if err != nil {
				t.Fatal(err)
			}

			stats := c.Stats()
			if stats.Hits != 6 || stats.Misses != 3 {
				t.Errorf("stats = %+v, want {Hits:6 Misses:3}", stats)
			}
			if want := 6.0 / 9.0; math.Abs(ratio-want) > 1e-12 {
				t.Errorf("hit ratio = %v, want %v", ratio, want)
			}
		})
	}
}

// TestRunOnce_HitNeverReinserts verifies the get-or-put replay: a hit must
// not refresh FIFO insertion order, so the hit key is still evicted first.
func TestRunOnce_HitNeverReinserts(t *testing.T) {
	c := newCache(t, 3, cache.FIFO)

	mkAccess := func(key string) sequence.Access {
		return sequence.Access{Key: key, Value: "v-" + key, Size: 1}
	}
	seq := []sequence.Access{
		mkAccess("a"), mkAccess("b"), mkAccess("c"),
		mkAccess("a"), // hit: must not move a to the back of the queue
		mkAccess("d"), // miss: insert evicts a, the oldest insert
	}

	if _, err := RunOnce(c, seq); err != nil {
		t.Fatal(err)
	}
	if c.Contains("a") {
		t.Error("a survived: the replay hit refreshed FIFO order")
	}
	for _, key := range []string{"b", "c", "d"} {
		if !c.Contains(key) {
			t.Errorf("%q missing after replay", key)
		}
	}
}

// TestRunOnce_OversizedAccess verifies replay errors propagate.
func TestRunOnce_OversizedAccess(t *testing.T) {
	c := newCache(t, 3, cache.LRU)

	seq := []sequence.Access{{Key: "big", Value: "v", Size: 5}}
	if _, err := RunOnce(c, seq); !errors.Is(err, cache.ErrOversizedItem) {
		t.Errorf("RunOnce error = %v, want ErrOversizedItem", err)
	}
}

// TestRunOnce_EmptySequence verifies the zero-lookup hit ratio convention.
func TestRunOnce_EmptySequence(t *testing.T) {
	c := newCache(t, 3, cache.LIFO)

	ratio, err := RunOnce(c, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ratio != 0 {
		t.Errorf("hit ratio = %v with no accesses, want 0", ratio)
	}
}
