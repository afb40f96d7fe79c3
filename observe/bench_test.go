package observe

import (
	"context"
	"io"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	callLogger := logger.WithCall(CallMeta{Function: "apiCache", Subfolder: "123"})
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		callLogger.Info(ctx, "memoized call completed",
			Field{Key: "duration_ms", Value: 12.0},
			Field{Key: "cache_hit", Value: true},
		)
	}
}

func BenchmarkLogger_FilteredDebug(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Debug(ctx, "dropped")
	}
}

func BenchmarkMetrics_RecordCall(b *testing.B) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := NewMetrics(mp.Meter("bench"))
	if err != nil {
		b.Fatalf("failed to create metrics: %v", err)
	}

	meta := CallMeta{Function: "apiCache", Subfolder: "123"}
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.RecordCall(ctx, meta, 5*time.Millisecond, i%2 == 0, nil)
	}
}
