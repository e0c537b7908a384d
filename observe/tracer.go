package observe

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// RunMeta identifies a benchmark run for telemetry purposes.
type RunMeta struct {
	Policy       string // eviction policy name (required)
	Distribution string // access-pattern distribution name (required)
	Trial        int    // trial index within the run; < 0 for run-level telemetry
}

// SpanName returns the deterministic span name for this run.
// Format: bench.run.<policy>.<distribution>
func (m RunMeta) SpanName() string {
	return "bench.run." + m.Policy + "." + m.Distribution
}

// RunID returns the run identifier: <policy>/<distribution>, with the trial
// index appended for trial-level telemetry.
func (m RunMeta) RunID() string {
	id := m.Policy + "/" + m.Distribution
	if m.Trial >= 0 {
		id += "#" + strconv.Itoa(m.Trial)
	}
	return id
}

// WithTrial returns a copy of the meta scoped to one trial.
func (m RunMeta) WithTrial(trial int) RunMeta {
	m.Trial = trial
	return m
}

// Validate checks that the required metadata fields are set.
func (m RunMeta) Validate() error {
	if m.Policy == "" {
		return ErrMissingPolicy
	}
	if m.Distribution == "" {
		return ErrMissingDistribution
	}
	return nil
}

// Tracer wraps OpenTelemetry tracing with run-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a benchmark run or trial.
	StartSpan(ctx context.Context, meta RunMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with run metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta RunMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("bench.policy", meta.Policy),
		attribute.String("bench.distribution", meta.Distribution),
	}
	if meta.Trial >= 0 {
		attrs = append(attrs, attribute.Int("bench.trial", meta.Trial))
	}

	ctx, span := t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	return ctx, span
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// NewNoopTracer creates a no-op tracer.
func NewNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta RunMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
