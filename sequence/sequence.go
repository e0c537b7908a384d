package sequence

import (
	"fmt"
	"math/rand/v2"
)

// Access is one synthetic cache access: a key, a placeholder value, and the
// size the entry occupies when inserted.
type Access struct {
	Key   string
	Value string
	Size  int
}

// Config shapes a generated sequence.
type Config struct {
	// Items is the number of distinct keys, item_0 .. item_{Items-1}.
	Items int

	// Length is the total number of accesses, warm-up included.
	Length int

	// ItemSize is the uniform size assigned to every access.
	// Zero means the default of 1.
	ItemSize int
}

// DefaultItemSize is the per-access size used when Config.ItemSize is zero.
const DefaultItemSize = 1

// Validate checks the config against the generator contracts.
func (c Config) Validate() error {
	if c.Items <= 0 {
		return fmt.Errorf("%w: %d", ErrNoItems, c.Items)
	}
	if c.Length < c.Items {
		return fmt.Errorf("%w: length %d < items %d", ErrLengthTooShort, c.Length, c.Items)
	}
	if c.ItemSize < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidItemSize, c.ItemSize)
	}
	return nil
}

func (c Config) itemSize() int {
	if c.ItemSize == 0 {
		return DefaultItemSize
	}
	return c.ItemSize
}

// Key returns the synthetic key for index i.
func Key(i int) string { return fmt.Sprintf("item_%d", i) }

// Value returns the distinct placeholder value for sequence position i.
func Value(i int) string { return fmt.Sprintf("value_%d", i) }

// warmup emits each distinct key once, in index order.
func warmup(cfg Config) []Access {
	seq := make([]Access, 0, cfg.Length)
	size := cfg.itemSize()
	for i := 0; i < cfg.Items; i++ {
		seq = append(seq, Access{Key: Key(i), Value: Value(i), Size: size})
	}
	return seq
}

// Cyclic returns a deterministic sequence that repeats the keys in index
// order: item_0, item_1, ..., item_{n-1}, item_0, and so on.
func Cyclic(cfg Config) ([]Access, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seq := warmup(cfg)
	size := cfg.itemSize()
	for i := cfg.Items; i < cfg.Length; i++ {
		seq = append(seq, Access{Key: Key(i % cfg.Items), Value: Value(i), Size: size})
	}
	return seq, nil
}

// Uniform returns the warm-up pass followed by keys drawn uniformly at
// random from the full key set.
func Uniform(cfg Config, rng *rand.Rand) ([]Access, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	seq := warmup(cfg)
	size := cfg.itemSize()
	for i := cfg.Items; i < cfg.Length; i++ {
		seq = append(seq, Access{Key: Key(rng.IntN(cfg.Items)), Value: Value(i), Size: size})
	}
	return seq, nil
}

// HotSetSize caps the number of keys in a locality window's working set.
const HotSetSize = 3

// Locality returns the warm-up pass followed by accesses clustered on a
// small hot set of keys. The hot set is re-sampled (uniformly, without
// replacement) at every window boundary, modeling a shifting working set.
func Locality(cfg Config, window int, rng *rand.Rand) ([]Access, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if window <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	seq := warmup(cfg)
	size := cfg.itemSize()
	var hot []string
	for i := cfg.Items; i < cfg.Length; i++ {
		if i%window == 0 || len(hot) == 0 {
			hot = sampleHotSet(cfg.Items, rng)
		}
		seq = append(seq, Access{Key: hot[rng.IntN(len(hot))], Value: Value(i), Size: size})
	}
	return seq, nil
}

// sampleHotSet draws min(n, HotSetSize) distinct key indices uniformly
// without replacement.
func sampleHotSet(n int, rng *rand.Rand) []string {
	k := min(n, HotSetSize)
	hot := make([]string, 0, k)
	for _, idx := range rng.Perm(n)[:k] {
		hot = append(hot, Key(idx))
	}
	return hot
}
