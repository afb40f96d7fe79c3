package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records execution metrics for memoized calls.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordCall records one invocation with its duration, cache-hit status,
	// and error status.
	RecordCall(ctx context.Context, meta CallMeta, duration time.Duration, hit bool, err error)

	// RecordWriteError records a failed cache persist for a call whose result
	// was still returned to the caller.
	RecordWriteError(ctx context.Context, meta CallMeta)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	hitCount     metric.Int64Counter
	errorCount   metric.Int64Counter
	writeErrors  metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewMetrics creates a Metrics instance with the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	totalCount, err := meter.Int64Counter(
		"memo.call.total",
		metric.WithDescription("Total number of memoized invocations"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	hitCount, err := meter.Int64Counter(
		"memo.cache.hits",
		metric.WithDescription("Invocations served from a persisted cache entry"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"memo.call.errors",
		metric.WithDescription("Invocations whose wrapped function failed"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	writeErrors, err := meter.Int64Counter(
		"memo.cache.write_errors",
		metric.WithDescription("Cache persists that failed after a successful invocation"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"memo.call.duration_ms",
		metric.WithDescription("Memoized invocation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		totalCount:   totalCount,
		hitCount:     hitCount,
		errorCount:   errorCount,
		writeErrors:  writeErrors,
		durationHist: durationHist,
	}, nil
}

// RecordCall records metrics for one memoized invocation.
func (m *metricsImpl) RecordCall(ctx context.Context, meta CallMeta, duration time.Duration, hit bool, err error) {
	opt := metric.WithAttributes(m.attrs(meta)...)

	m.totalCount.Add(ctx, 1, opt)

	if hit {
		m.hitCount.Add(ctx, 1, opt)
	}
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}

	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// RecordWriteError records a failed best-effort cache persist.
func (m *metricsImpl) RecordWriteError(ctx context.Context, meta CallMeta) {
	m.writeErrors.Add(ctx, 1, metric.WithAttributes(m.attrs(meta)...))
}

func (m *metricsImpl) attrs(meta CallMeta) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("memo.function", meta.Function),
	}
	if meta.Subfolder != "" {
		attrs = append(attrs, attribute.String("memo.subfolder", meta.Subfolder))
	}
	return attrs
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

// NewNoopMetrics returns a Metrics that records nothing.
func NewNoopMetrics() Metrics {
	return &noopMetrics{}
}

func (m *noopMetrics) RecordCall(ctx context.Context, meta CallMeta, duration time.Duration, hit bool, err error) {
}

func (m *noopMetrics) RecordWriteError(ctx context.Context, meta CallMeta) {}
