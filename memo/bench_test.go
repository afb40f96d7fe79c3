package memo

import (
	"context"
	"path/filepath"
	"testing"
)

func BenchmarkSanitizeSegment(b *testing.B) {
	in := `users/2026-01:archive*"v2"`
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sanitizeSegment(in)
	}
}

func BenchmarkResolve(b *testing.B) {
	base := ReadWrite()
	override := WriteOnly()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Resolve(base, Override(override), ProductionSwitch(false))
	}
}

func BenchmarkDo_CacheHit(b *testing.B) {
	m := New(
		Config{Root: filepath.Join(b.TempDir(), "cache"), Base: ReadWrite()},
		WithReporter(NewNoopReporter()),
	)
	reg := Registration{Name: "benchCache", Cacheable: true}
	fn := func(_ context.Context, _ ...any) (any, error) {
		return map[string]any{"id": "123"}, nil
	}
	ctx := context.Background()

	// Seed the entry so every iteration is a hit.
	if _, err := m.Do(ctx, reg, fn, "123"); err != nil {
		b.Fatalf("seed call failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Do(ctx, reg, fn, "123"); err != nil {
			b.Fatalf("call failed: %v", err)
		}
	}
}

func BenchmarkDo_Uncached(b *testing.B) {
	m := New(
		Config{Root: filepath.Join(b.TempDir(), "cache")},
		WithReporter(NewNoopReporter()),
	)
	reg := Registration{Name: "benchCache", Cacheable: true}
	fn := func(_ context.Context, _ ...any) (any, error) {
		return "ok", nil
	}
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := m.Do(ctx, reg, fn, "123"); err != nil {
			b.Fatalf("call failed: %v", err)
		}
	}
}
