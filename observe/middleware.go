package observe

import (
	"context"
	"time"
)

// TrialFunc is the signature for a single benchmark trial: it replays one
// sequence against one cache and returns the resulting hit ratio.
type TrialFunc func(ctx context.Context, meta RunMeta) (float64, error)

// Middleware wraps trial execution with observability (tracing, metrics,
// logging).
//
// Contract:
//   - Concurrency: Wrap() returns a TrialFunc safe for concurrent use where
//     the wrapped function is.
//   - Errors: errors from the wrapped function are recorded and propagated
//     unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability
// components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps a TrialFunc with tracing, metrics, and logging.
func (m *Middleware) Wrap(fn TrialFunc) TrialFunc {
	return func(ctx context.Context, meta RunMeta) (float64, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)

		start := time.Now()
		ratio, err := fn(ctx, meta)
		duration := time.Since(start)

		m.tracer.EndSpan(span, err)
		m.metrics.RecordTrial(ctx, meta, ratio, duration, err)

		runLogger := m.logger.WithRun(meta)
		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			runLogger.Error(ctx, "trial failed", fields...)
		} else {
			fields = append(fields, Field{Key: "hit_ratio", Value: ratio})
			runLogger.Debug(ctx, "trial completed", fields...)
		}

		return ratio, err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
// This is a convenience function for common use cases.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
