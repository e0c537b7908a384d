package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records benchmark trial measurements.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordTrial records one completed trial with its hit ratio,
	// duration, and error status.
	RecordTrial(ctx context.Context, meta RunMeta, hitRatio float64, duration time.Duration, err error)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	hitRatioHist metric.Float64Histogram
	durationHist metric.Float64Histogram
}

// NewMetrics creates a Metrics instance with the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	totalCount, err := meter.Int64Counter(
		"bench.trials.total",
		metric.WithDescription("Total number of benchmark trials"),
		metric.WithUnit("{trial}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"bench.trials.errors",
		metric.WithDescription("Total number of failed benchmark trials"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	hitRatioHist, err := meter.Float64Histogram(
		"bench.trial.hit_ratio",
		metric.WithDescription("Per-trial cache hit ratio"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"bench.trial.duration_ms",
		metric.WithDescription("Per-trial replay duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		totalCount:   totalCount,
		errorCount:   errorCount,
		hitRatioHist: hitRatioHist,
		durationHist: durationHist,
	}, nil
}

// RecordTrial records metrics for one benchmark trial.
func (m *metricsImpl) RecordTrial(ctx context.Context, meta RunMeta, hitRatio float64, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("bench.policy", meta.Policy),
		attribute.String("bench.distribution", meta.Distribution),
	}
	opt := metric.WithAttributes(attrs...)

	m.totalCount.Add(ctx, 1, opt)

	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
		return
	}

	m.hitRatioHist.Record(ctx, hitRatio, opt)
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

// NewNoopMetrics creates a no-op Metrics.
func NewNoopMetrics() Metrics {
	return &noopMetrics{}
}

func (m *noopMetrics) RecordTrial(ctx context.Context, meta RunMeta, hitRatio float64, duration time.Duration, err error) {
}
