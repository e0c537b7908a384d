package bench

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/cachebench/cache"
	"github.com/jonwraymond/cachebench/observe"
	"github.com/jonwraymond/cachebench/sequence"
)

// Defaults applied by Config.withDefaults.
const (
	// DefaultWindow is the locality window length when Config.Window is
	// zero.
	DefaultWindow = 4

	// DefaultParallelism is the trial concurrency when Config.Parallelism
	// is zero.
	DefaultParallelism = 1
)

// Config describes one benchmark run: a policy, a distribution, and the
// four integers that shape it.
type Config struct {
	// Policy selects the eviction policy under test.
	Policy cache.PolicyKind

	// Distribution selects the synthetic access pattern.
	Distribution sequence.Distribution

	// Items is the number of distinct keys in each generated sequence.
	Items int

	// Length is the total number of accesses per sequence.
	Length int

	// Trials is the number of independent (sequence, cache) repetitions.
	Trials int

	// Capacity is the cache size budget, in size units.
	Capacity int

	// ItemSize is the uniform per-access size. Zero means 1.
	ItemSize int

	// Window is the locality window length. Zero means DefaultWindow;
	// it is ignored by the cyclic and uniform distributions.
	Window int

	// Seed is the base seed for the random distributions. Each trial
	// derives its own random source from (Seed, trial index), so a fixed
	// config reproduces identical results.
	Seed uint64

	// Parallelism bounds how many trials run concurrently. Zero means
	// DefaultParallelism.
	Parallelism int
}

// Validate rejects configurations that could not complete a run. It runs
// before any trial, so invalid configs are never discovered mid-run.
func (c Config) Validate() error {
	if _, err := cache.NewPolicy(c.Policy); err != nil {
		return err
	}
	known := false
	for _, d := range sequence.Distributions() {
		if c.Distribution == d {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", sequence.ErrUnknownDistribution, c.Distribution)
	}
	if err := c.sequenceConfig().Validate(); err != nil {
		return err
	}
	if c.Trials <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTrials, c.Trials)
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: %d", cache.ErrInvalidCapacity, c.Capacity)
	}
	if size := c.effectiveItemSize(); c.Capacity < size {
		return fmt.Errorf("%w: capacity %d < item size %d", ErrCapacityTooSmall, c.Capacity, size)
	}
	if c.Window < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWindow, c.Window)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidParallelism, c.Parallelism)
	}
	return nil
}

func (c Config) sequenceConfig() sequence.Config {
	return sequence.Config{Items: c.Items, Length: c.Length, ItemSize: c.ItemSize}
}

func (c Config) effectiveItemSize() int {
	if c.ItemSize == 0 {
		return sequence.DefaultItemSize
	}
	return c.ItemSize
}

func (c Config) withDefaults() Config {
	if c.Window == 0 {
		c.Window = DefaultWindow
	}
	if c.Parallelism == 0 {
		c.Parallelism = DefaultParallelism
	}
	return c
}

// Result is the outcome of a multi-trial run.
type Result struct {
	// Mean is the arithmetic mean hit ratio across trials.
	Mean float64

	// Ratios holds the per-trial hit ratios, in trial order.
	Ratios []float64
}

// Runner repeats a benchmark configuration over independent trials.
//
// Each trial constructs a fresh cache and generates a fresh sequence, so no
// state is shared between trials beyond the read-only config.
type Runner struct {
	cfg        Config
	logger     observe.Logger
	tracer     observe.Tracer
	middleware *observe.Middleware
}

// Option configures a Runner.
type Option func(*options)

type options struct {
	observer observe.Observer
	logger   observe.Logger
	metrics  observe.Metrics
	tracer   observe.Tracer
}

// WithObserver wires the runner's logger, metrics, and tracer from one
// Observer.
func WithObserver(obs observe.Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithLogger overrides the runner's logger.
func WithLogger(l observe.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics overrides the runner's metrics sink.
func WithMetrics(m observe.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTracer overrides the runner's tracer.
func WithTracer(t observe.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// NewRunner validates cfg and constructs a Runner. Telemetry defaults to
// noop implementations unless options provide otherwise.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := observe.Logger(nil)
	metrics := observe.Metrics(nil)
	tracer := observe.Tracer(nil)

	if o.observer != nil {
		m, err := observe.NewMetrics(o.observer.Meter())
		if err != nil {
			return nil, err
		}
		logger = o.observer.Logger()
		metrics = m
		tracer = observe.NewTracer(o.observer.Tracer())
	}
	if o.logger != nil {
		logger = o.logger
	}
	if o.metrics != nil {
		metrics = o.metrics
	}
	if o.tracer != nil {
		tracer = o.tracer
	}
	if logger == nil {
		logger = observe.NewNoopObserver().Logger()
	}
	if metrics == nil {
		metrics = observe.NewNoopMetrics()
	}
	if tracer == nil {
		tracer = observe.NewNoopTracer()
	}

	return &Runner{
		cfg:        cfg.withDefaults(),
		logger:     logger,
		tracer:     tracer,
		middleware: observe.NewMiddleware(tracer, metrics, logger),
	}, nil
}

// Run executes every trial and returns the mean hit ratio.
//
// Trials run with at most Config.Parallelism goroutines; each owns a
// private cache and a private random source derived from (Seed, trial), so
// the result is identical regardless of parallelism.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	meta := observe.RunMeta{
		Policy:       string(r.cfg.Policy),
		Distribution: string(r.cfg.Distribution),
		Trial:        -1,
	}

	ctx, span := r.tracer.StartSpan(ctx, meta)
	logger := r.logger.WithRun(meta)
	logger.Info(ctx, "benchmark run starting",
		observe.Field{Key: "items", Value: r.cfg.Items},
		observe.Field{Key: "length", Value: r.cfg.Length},
		observe.Field{Key: "trials", Value: r.cfg.Trials},
		observe.Field{Key: "capacity", Value: r.cfg.Capacity},
	)

	trial := r.middleware.Wrap(r.runTrial)
	ratios := make([]float64, r.cfg.Trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)
	for i := 0; i < r.cfg.Trials; i++ {
		g.Go(func() error {
			ratio, err := trial(gctx, meta.WithTrial(i))
			if err != nil {
				return err
			}
			ratios[i] = ratio
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.tracer.EndSpan(span, err)
		logger.Error(ctx, "benchmark run failed", observe.Field{Key: "error", Value: err.Error()})
		return Result{}, err
	}
	r.tracer.EndSpan(span, nil)

	result := Result{Mean: mean(ratios), Ratios: ratios}
	logger.Info(ctx, "benchmark run complete",
		observe.Field{Key: "mean_hit_ratio", Value: result.Mean},
	)
	return result, nil
}

// runTrial generates one fresh sequence and replays it against one fresh
// cache.
func (r *Runner) runTrial(_ context.Context, meta observe.RunMeta) (float64, error) {
	rng := rand.New(rand.NewPCG(r.cfg.Seed, uint64(meta.Trial)))

	seq, err := sequence.Generate(r.cfg.Distribution, r.cfg.sequenceConfig(), r.cfg.Window, rng)
	if err != nil {
		return 0, err
	}
	policy, err := cache.NewPolicy(r.cfg.Policy)
	if err != nil {
		return 0, err
	}
	c, err := cache.New[string](r.cfg.Capacity, policy)
	if err != nil {
		return 0, err
	}
	return RunOnce(c, seq)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
