// Command cachebench compares cache eviction policies against synthetic
// access patterns and prints a grid of mean hit ratios.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/jonwraymond/cachebench/bench"
	"github.com/jonwraymond/cachebench/cache"
	"github.com/jonwraymond/cachebench/observe"
	"github.com/jonwraymond/cachebench/sequence"
)

var version = "dev"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "cachebench:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("cachebench", flag.ContinueOnError)
	fs.SetOutput(out)

	policy := fs.String("policy", "all", "eviction policy: lifo|fifo|lru|all")
	dist := fs.String("distribution", "all", "access pattern: cyclic|uniform|locality|all")
	items := fs.Int("items", 6, "number of distinct keys per sequence")
	length := fs.Int("length", 20, "total accesses per sequence")
	trials := fs.Int("trials", 10, "independent repetitions per pair")
	capacity := fs.Int("capacity", 3, "cache capacity, in size units")
	itemSize := fs.Int("item-size", 1, "uniform size of every cached item")
	window := fs.Int("window", bench.DefaultWindow, "locality window length")
	seed := fs.Uint64("seed", 1, "base seed for the random distributions")
	parallelism := fs.Int("parallelism", 1, "max concurrent trials per run")
	logLevel := fs.String("log-level", "", "log level: debug|info|warn|error (empty disables logging)")
	metricsExporter := fs.String("metrics-exporter", "", "metrics exporter: otlp|prometheus|stdout|none (empty disables)")
	traceExporter := fs.String("trace-exporter", "", "tracing exporter: otlp|stdout|none (empty disables)")
	traceSample := fs.Float64("trace-sample", 1.0, "tracing sample fraction in [0,1]")

	if err := fs.Parse(args); err != nil {
		return err
	}

	obs, err := observe.NewObserver(ctx, observe.Config{
		ServiceName: "cachebench",
		Version:     version,
		Tracing: observe.TracingConfig{
			Enabled:   *traceExporter != "",
			Exporter:  *traceExporter,
			SamplePct: *traceSample,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  *metricsExporter != "",
			Exporter: *metricsExporter,
		},
		Logging: observe.LoggingConfig{
			Enabled: *logLevel != "",
			Level:   *logLevel,
		},
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = obs.Shutdown(ctx)
	}()

	policies, err := selectPolicies(*policy)
	if err != nil {
		return err
	}
	distributions, err := selectDistributions(*dist)
	if err != nil {
		return err
	}

	base := bench.Config{
		Items:       *items,
		Length:      *length,
		Trials:      *trials,
		Capacity:    *capacity,
		ItemSize:    *itemSize,
		Window:      *window,
		Seed:        *seed,
		Parallelism: *parallelism,
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DISTRIBUTION\tPOLICY\tMEAN HIT RATIO")
	for _, d := range distributions {
		for _, p := range policies {
			cfg := base
			cfg.Policy = p
			cfg.Distribution = d

			runner, err := bench.NewRunner(cfg, bench.WithObserver(obs))
			if err != nil {
				return err
			}
			res, err := runner.Run(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%.2f%%\n", d, p, res.Mean*100)
		}
	}
	return w.Flush()
}

func selectPolicies(name string) ([]cache.PolicyKind, error) {
	if name == "all" {
		return cache.Kinds(), nil
	}
	kind := cache.PolicyKind(name)
	if _, err := cache.NewPolicy(kind); err != nil {
		return nil, err
	}
	return []cache.PolicyKind{kind}, nil
}

func selectDistributions(name string) ([]sequence.Distribution, error) {
	if name == "all" {
		return sequence.Distributions(), nil
	}
	d := sequence.Distribution(name)
	for _, known := range sequence.Distributions() {
		if d == known {
			return []sequence.Distribution{d}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", sequence.ErrUnknownDistribution, d)
}
