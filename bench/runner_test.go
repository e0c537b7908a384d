package bench

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/jonwraymond/cachebench/cache"
	"github.com/jonwraymond/cachebench/observe"
	"github.com/jonwraymond/cachebench/sequence"
)

func validConfig() Config {
	return Config{
		Policy:       cache.LRU,
		Distribution: sequence.CyclicDistribution,
		Items:        3,
		Length:       9,
		Trials:       4,
		Capacity:     3,
		Seed:         1,
	}
}

// TestConfig_Validate rejects broken configurations before any trial runs.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"unknown policy", func(c *Config) { c.Policy = "clock" }, cache.ErrUnknownPolicy},
		{"unknown distribution", func(c *Config) { c.Distribution = "zipf" }, sequence.ErrUnknownDistribution},
		{"zero trials", func(c *Config) { c.Trials = 0 }, ErrInvalidTrials},
		{"zero capacity", func(c *Config) { c.Capacity = 0 }, cache.ErrInvalidCapacity},
		{"capacity below item size", func(c *Config) { c.Capacity = 1; c.ItemSize = 2 }, ErrCapacityTooSmall},
		{"length below warm-up", func(c *Config) { c.Length = 2 }, sequence.ErrLengthTooShort},
		{"negative window", func(c *Config) { c.Window = -1 }, ErrInvalidWindow},
		{"negative parallelism", func(c *Config) { c.Parallelism = -2 }, ErrInvalidParallelism},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestRunner_CyclicMean verifies every trial of the deterministic cyclic
// pattern produces exactly 6 hits over 9 lookups.
func TestRunner_CyclicMean(t *testing.T) {
	runner, err := NewRunner(validConfig())
	if err != nil {
		t.Fatal(err)
	}

	res, err := runner.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := 6.0 / 9.0
	if math.Abs(res.Mean-want) > 1e-12 {
		t.Errorf("Mean = %v, want %v", res.Mean, want)
	}
	if len(res.Ratios) != 4 {
		t.Fatalf("got %d ratios, want 4", len(res.Ratios))
	}
	for i, r := range res.Ratios {
		if r != want {
			t.Errorf("Ratios[%d] = %v, want %v", i, r, want)
		}
	}
}

// TestRunner_SeededDeterminism verifies identical config and seed reproduce
// identical results for the random distributions.
func TestRunner_SeededDeterminism(t *testing.T) {
	for _, dist := range []sequence.Distribution{sequence.UniformDistribution, sequence.LocalityDistribution} {
		t.Run(string(dist), func(t *testing.T) {
			cfg := Config{
				Policy:       cache.FIFO,
				Distribution: dist,
				Items:        6,
				Length:       40,
				Trials:       8,
				Capacity:     3,
				Seed:         99,
			}

			run := func() Result {
				runner, err := NewRunner(cfg)
				if err != nil {
					t.Fatal(err)
				}
				res, err := runner.Run(context.Background())
				if err != nil {
					t.Fatal(err)
				}
				return res
			}

			a, b := run(), run()
			if a.Mean != b.Mean {
				t.Errorf("means diverged: %v vs %v", a.Mean, b.Mean)
			}
			for i := range a.Ratios {
				if a.Ratios[i] != b.Ratios[i] {
					t.Errorf("trial %d diverged: %v vs %v", i, a.Ratios[i], b.Ratios[i])
				}
			}
		})
	}
}

// TestRunner_ParallelMatchesSerial verifies per-trial seeding makes results
// independent of the parallelism bound.
func TestRunner_ParallelMatchesSerial(t *testing.T) {
	cfg := Config{
		Policy:       cache.LRU,
		Distribution: sequence.LocalityDistribution,
		Items:        8,
		Length:       60,
		Trials:       12,
		Capacity:     3,
		Seed:         7,
	}

	run := func(parallelism int) Result {
		c := cfg
		c.Parallelism = parallelism
		runner, err := NewRunner(c)
		if err != nil {
			t.Fatal(err)
		}
		res, err := runner.Run(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	serial, parallel := run(1), run(4)
	for i := range serial.Ratios {
		if serial.Ratios[i] != parallel.Ratios[i] {
			t.Errorf("trial %d: serial %v, parallel %v", i, serial.Ratios[i], parallel.Ratios[i])
		}
	}
	if serial.Mean != parallel.Mean {
		t.Errorf("means diverged: serial %v, parallel %v", serial.Mean, parallel.Mean)
	}
}

// TestRunner_VarianceShrinksWithTrials verifies the statistical property
// that averaging more trials tightens the reported mean.
func TestRunner_VarianceShrinksWithTrials(t *testing.T) {
	const groups = 24

	meansFor := func(trials int) []float64 {
		means := make([]float64, 0, groups)
		for g := 0; g < groups; g++ {
			cfg := Config{
				Policy:       cache.LRU,
				Distribution: sequence.UniformDistribution,
				Items:        8,
				Length:       64,
				Trials:       trials,
				Capacity:     3,
				Seed:         uint64(1000 + g),
			}
			runner, err := NewRunner(cfg)
			if err != nil {
				t.Fatal(err)
			}
			res, err := runner.Run(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			means = append(means, res.Mean)
		}
		return means
	}

	variance := func(xs []float64) float64 {
		m := mean(xs)
		sum := 0.0
		for _, x := range xs {
			sum += (x - m) * (x - m)
		}
		return sum / float64(len(xs)-1)
	}

	single := variance(meansFor(1))
	averaged := variance(meansFor(64))

	if single <= 0 {
		t.Fatal("single-trial means show no variance; test inputs too uniform")
	}
	if averaged >= single {
		t.Errorf("variance did not shrink: trials=64 %v >= trials=1 %v", averaged, single)
	}
}

// TestRunner_WithObserver verifies telemetry wiring does not disturb
// results.
func TestRunner_WithObserver(t *testing.T) {
	runner, err := NewRunner(validConfig(), WithObserver(observe.NewNoopObserver()))
	if err != nil {
		t.Fatal(err)
	}
	res, err := runner.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if want := 6.0 / 9.0; math.Abs(res.Mean-want) > 1e-12 {
		t.Errorf("Mean = %v, want %v", res.Mean, want)
	}
}

// TestCompare_Grid verifies the full policy × distribution grid.
func TestCompare_Grid(t *testing.T) {
	base := Config{
		Items:    3,
		Length:   9,
		Trials:   2,
		Capacity: 3,
		Seed:     5,
	}

	results, err := Compare(context.Background(), base)
	if err != nil {
		t.Fatal(err)
	}

	wantPairs := len(cache.Kinds()) * len(sequence.Distributions())
	if len(results) != wantPairs {
		t.Fatalf("got %d results, want %d", len(results), wantPairs)
	}

	for _, r := range results {
		if r.Mean < 0 || r.Mean > 1 {
			t.Errorf("%s/%s mean = %v, outside [0,1]", r.Policy, r.Distribution, r.Mean)
		}
		// A capacity that fits the whole key set makes the cyclic
		// pattern policy-independent.
		if r.Distribution == sequence.CyclicDistribution {
			if want := 6.0 / 9.0; math.Abs(r.Mean-want) > 1e-12 {
				t.Errorf("%s/cyclic mean = %v, want %v", r.Policy, r.Mean, want)
			}
		}
	}
}
