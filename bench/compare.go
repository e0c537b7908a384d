package bench

import (
	"context"

	"github.com/jonwraymond/cachebench/cache"
	"github.com/jonwraymond/cachebench/sequence"
)

// Comparison holds the mean hit ratio for one (policy, distribution) pair.
type Comparison struct {
	Policy       cache.PolicyKind
	Distribution sequence.Distribution
	Mean         float64
}

// Compare runs base across every (policy, distribution) pair and returns
// one Comparison per pair, grouped by distribution in reporting order.
//
// Every pair sees the same items, length, trials, capacity, and seed, so
// the results are directly comparable.
func Compare(ctx context.Context, base Config, opts ...Option) ([]Comparison, error) {
	results := make([]Comparison, 0, len(sequence.Distributions())*len(cache.Kinds()))

	for _, dist := range sequence.Distributions() {
		for _, kind := range cache.Kinds() {
			cfg := base
			cfg.Policy = kind
			cfg.Distribution = dist

			runner, err := NewRunner(cfg, opts...)
			if err != nil {
				return nil, err
			}
			res, err := runner.Run(ctx)
			if err != nil {
				return nil, err
			}
			results = append(results, Comparison{
				Policy:       kind,
				Distribution: dist,
				Mean:         res.Mean,
			})
		}
	}
	return results, nil
}
