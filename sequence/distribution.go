package sequence

import (
	"fmt"
	"math/rand/v2"
)

// Distribution selects one of the built-in access patterns.
type Distribution string

// Built-in distributions.
const (
	CyclicDistribution   Distribution = "cyclic"
	UniformDistribution  Distribution = "uniform"
	LocalityDistribution Distribution = "locality"
)

// Distributions returns every built-in distribution, in reporting order.
func Distributions() []Distribution {
	return []Distribution{CyclicDistribution, UniformDistribution, LocalityDistribution}
}

// Generate dispatches to the generator for d.
//
// The window applies only to the locality distribution; rng may be nil for
// the cyclic distribution, which is deterministic and ignores it.
func Generate(d Distribution, cfg Config, window int, rng *rand.Rand) ([]Access, error) {
	switch d {
	case CyclicDistribution:
		return Cyclic(cfg)
	case UniformDistribution:
		return Uniform(cfg, rng)
	case LocalityDistribution:
		return Locality(cfg, window, rng)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, d)
	}
}
