package observe

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

// recordingMetrics captures RecordTrial calls for assertions.
type recordingMetrics struct {
	calls []recordedTrial
}

type recordedTrial struct {
	meta     RunMeta
	hitRatio float64
	err      error
}

func (m *recordingMetrics) RecordTrial(_ context.Context, meta RunMeta, hitRatio float64, _ time.Duration, err error) {
	m.calls = append(m.calls, recordedTrial{meta: meta, hitRatio: hitRatio, err: err})
}

// TestMiddleware_WrapSuccess verifies a successful trial is traced, measured
// and logged at debug level.
func TestMiddleware_WrapSuccess(t *testing.T) {
	metrics := &recordingMetrics{}
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("debug", &buf)
	mw := NewMiddleware(NewNoopTracer(), metrics, logger)

	fn := mw.Wrap(func(ctx context.Context, meta RunMeta) (float64, error) {
		return 0.8, nil
	})

	meta := RunMeta{Policy: "lru", Distribution: "uniform", Trial: 1}
	ratio, err := fn(context.Background(), meta)
	if err != nil {
		t.Fatalf("wrapped fn: %v", err)
	}
	if ratio != 0.8 {
		t.Errorf("ratio = %v, want 0.8", ratio)
	}

	if len(metrics.calls) != 1 {
		t.Fatalf("got %d metric records, want 1", len(metrics.calls))
	}
	if metrics.calls[0].hitRatio != 0.8 || metrics.calls[0].err != nil {
		t.Errorf("recorded trial = %+v", metrics.calls[0])
	}
	if buf.Len() == 0 {
		t.Error("successful trial logged nothing")
	}
}

// TestMiddleware_WrapFailure verifies errors propagate unchanged and are
// recorded.
func TestMiddleware_WrapFailure(t *testing.T) {
	metrics := &recordingMetrics{}
	mw := NewMiddleware(NewNoopTracer(), metrics, &noopLogger{})

	sentinel := errors.New("replay failed")
	fn := mw.Wrap(func(ctx context.Context, meta RunMeta) (float64, error) {
		return 0, sentinel
	})

	_, err := fn(context.Background(), RunMeta{Policy: "fifo", Distribution: "cyclic"})
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}
	if len(metrics.calls) != 1 || metrics.calls[0].err == nil {
		t.Errorf("failed trial not recorded: %+v", metrics.calls)
	}
}

// TestMiddlewareFromObserver covers the convenience constructor.
func TestMiddlewareFromObserver(t *testing.T) {
	if _, err := MiddlewareFromObserver(nil); !errors.Is(err, ErrNilObserver) {
		t.Errorf("MiddlewareFromObserver(nil) = %v, want ErrNilObserver", err)
	}

	mw, err := MiddlewareFromObserver(NewNoopObserver())
	if err != nil {
		t.Fatalf("MiddlewareFromObserver: %v", err)
	}
	if mw == nil {
		t.Fatal("nil middleware")
	}
}
