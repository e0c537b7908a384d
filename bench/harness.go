package bench

import (
	"fmt"

	"github.com/jonwraymond/cachebench/cache"
	"github.com/jonwraymond/cachebench/sequence"
)

// RunOnce replays seq against c with get-or-put semantics: each access looks
// the key up first and inserts only on a miss; a hit never re-inserts. It
// returns the cache's final hit ratio.
func RunOnce(c *cache.Cache[string], seq []sequence.Access) (float64, error) {
	for _, a := range seq {
		if _, ok := c.Get(a.Key); ok {
			continue
		}
		if err := c.Put(a.Key, a.Value, a.Size); err != nil {
			return 0, fmt.Errorf("bench: replay put %q: %w", a.Key, err)
		}
	}
	return c.HitRatio(), nil
}
