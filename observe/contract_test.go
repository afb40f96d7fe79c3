package observe

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestObserverContract_Noops(t *testing.T) {
	cfg := Config{
		ServiceName: "observe-test",
		Tracing: TracingConfig{
			Enabled:  false,
			Exporter: "none",
		},
		Metrics: MetricsConfig{
			Enabled:  false,
			Exporter: "none",
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}

	obs, err := NewObserver(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewObserver failed: %v", err)
	}

	if obs.Tracer() == nil {
		t.Fatalf("expected non-nil tracer")
	}
	if obs.Meter() == nil {
		t.Fatalf("expected non-nil meter")
	}
	if obs.Logger() == nil {
		t.Fatalf("expected non-nil logger")
	}
}

func TestLoggerContract_WithCall(t *testing.T) {
	logger := &noopLogger{}
	if logger.WithCall(CallMeta{Function: "noop"}) == nil {
		t.Fatalf("WithCall should return non-nil logger")
	}
}

func TestMetricsContract_NoPanic(t *testing.T) {
	metrics := NewNoopMetrics()
	metrics.RecordCall(context.Background(), CallMeta{Function: "noop"}, 10*time.Millisecond, false, nil)
	metrics.RecordWriteError(context.Background(), CallMeta{Function: "noop"})
}

func TestTracerContract_NoPanic(t *testing.T) {
	tracer := NewNoopTracer()
	ctx := context.Background()
	_, span := tracer.StartSpan(ctx, CallMeta{Function: "noop"})
	tracer.EndSpan(span, false, nil)
}

func TestInstruments_FromObserver(t *testing.T) {
	obs, err := NewObserver(context.Background(), Config{ServiceName: "observe-test"})
	if err != nil {
		t.Fatalf("NewObserver failed: %v", err)
	}

	inst, err := InstrumentsFromObserver(obs)
	if err != nil {
		t.Fatalf("InstrumentsFromObserver failed: %v", err)
	}
	if inst.Tracer == nil || inst.Metrics == nil || inst.Logger == nil {
		t.Fatalf("expected fully populated instruments, got %+v", inst)
	}
}

func TestInstruments_NilObserver(t *testing.T) {
	if _, err := InstrumentsFromObserver(nil); !errors.Is(err, ErrNilObserver) {
		t.Errorf("expected ErrNilObserver, got %v", err)
	}
}

func TestInstruments_Noop(t *testing.T) {
	inst := NoopInstruments()
	if inst.Tracer == nil || inst.Metrics == nil || inst.Logger == nil {
		t.Fatalf("expected fully populated noop instruments, got %+v", inst)
	}
}
