package memo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/jcache/observe"
)

// Memoizer orchestrates memoized invocations: it resolves the effective
// policy and entry path, attempts a cache read, otherwise executes the
// wrapped function and optionally persists the result.
type Memoizer struct {
	cfg      Config
	store    Store
	reporter Reporter
	inst     observe.Instruments
}

// Option configures a Memoizer.
type Option func(*Memoizer)

// WithStore replaces the filesystem store. Useful for tests.
func WithStore(s Store) Option {
	return func(m *Memoizer) {
		m.store = s
	}
}

// WithReporter replaces the diagnostic line sink.
func WithReporter(r Reporter) Option {
	return func(m *Memoizer) {
		m.reporter = r
	}
}

// WithInstruments wires telemetry (tracing, metrics, structured logging).
func WithInstruments(inst observe.Instruments) Option {
	return func(m *Memoizer) {
		m.inst = inst
	}
}

// New creates a Memoizer. Defaults: FileStore, console diagnostics on
// stdout, no telemetry.
func New(cfg Config, opts ...Option) *Memoizer {
	m := &Memoizer{
		cfg:      cfg.withDefaults(),
		store:    NewFileStore(),
		reporter: NewConsoleReporter(os.Stdout),
		inst:     observe.NoopInstruments(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Wrap returns a memoized closure around fn.
func (m *Memoizer) Wrap(reg Registration, fn Func) Func {
	return func(ctx context.Context, args ...any) (any, error) {
		return m.Do(ctx, reg, fn, args...)
	}
}

// Do runs one memoized invocation.
//
// With reads permitted and an entry present, the persisted result is
// returned without executing fn and the entry's modification time is
// refreshed. Otherwise fn runs with the original arguments; on success the
// result is persisted when writes are permitted. Errors from fn are
// returned unchanged. A nil final result fails with ErrNoResult rather than
// silently returning nothing.
func (m *Memoizer) Do(ctx context.Context, reg Registration, fn Func, args ...any) (any, error) {
	if err := reg.validate(); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, ErrNilFunc
	}

	start := time.Now()
	policy := m.effectivePolicy(reg)
	subfolder, dir, path := m.resolvePath(reg, args)

	meta := observe.CallMeta{
		Function:  reg.Name,
		Subfolder: subfolder,
		Cacheable: reg.Cacheable,
	}
	ctx, span := m.inst.Tracer.StartSpan(ctx, meta)
	logger := m.inst.Logger.WithCall(meta)

	var (
		result any
		hit    bool
	)

	if policy.Read && reg.Cacheable && m.store.Exists(path) {
		result, hit = m.readEntry(ctx, logger, path)
	}

	if !hit {
		var err error
		result, err = fn(ctx, args...)
		if err != nil {
			logger.Error(ctx, "wrapped function failed",
				observe.Field{Key: "error", Value: err.Error()})
			m.finish(ctx, span, logger, meta, start, false, err)
			return nil, err
		}
	}

	// Guard before persisting so a nil value never poisons the cache.
	if result == nil {
		err := fmt.Errorf("%w: function %q produced no value", ErrNoResult, reg.Name)
		m.finish(ctx, span, logger, meta, start, hit, err)
		return nil, err
	}

	if !hit && policy.Write {
		if err := m.persist(ctx, logger, meta, dir, path, result); err != nil {
			m.finish(ctx, span, logger, meta, start, false, err)
			return nil, err
		}
	}

	m.finish(ctx, span, logger, meta, start, hit, nil)
	return result, nil
}

// effectivePolicy layers the policy sources for one call: base, environment
// (when enabled), per-registration override, and the production kill switch
// last.
func (m *Memoizer) effectivePolicy(reg Registration) Policy {
	var sources []Source
	if m.cfg.UseEnv {
		sources = append(sources, EnvSource())
	}
	if reg.Policy != nil {
		sources = append(sources, Override(*reg.Policy))
	}
	sources = append(sources, ProductionSwitch(m.cfg.Production))
	return Resolve(m.cfg.Base, sources...)
}

// readEntry deserializes the entry at path. A corrupt entry is treated as a
// miss so the wrapped function recomputes it. On a hit the entry's
// modification time is refreshed; a failed touch is logged, not fatal.
func (m *Memoizer) readEntry(ctx context.Context, logger observe.Logger, path string) (any, bool) {
	data, err := m.store.Read(path)
	if err != nil {
		logger.Warn(ctx, "cache read failed",
			observe.Field{Key: "error", Value: err.Error()})
		return nil, false
	}

	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		logger.Warn(ctx, "cache entry is not valid JSON, recomputing",
			observe.Field{Key: "error", Value: err.Error()})
		return nil, false
	}

	if err := m.store.Touch(path); err != nil {
		logger.Warn(ctx, "cache touch failed",
			observe.Field{Key: "error", Value: err.Error()})
	}
	return result, true
}

// persist serializes the result with human-readable indentation and writes
// the entry. Failures are swallowed (logged and counted) unless
// Config.StrictWrites propagates them.
func (m *Memoizer) persist(ctx context.Context, logger observe.Logger, meta observe.CallMeta, dir, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		err = fmt.Errorf("memo: encode result: %w", err)
		if m.cfg.StrictWrites {
			return err
		}
		logger.Warn(ctx, "cache encode failed",
			observe.Field{Key: "error", Value: err.Error()})
		m.inst.Metrics.RecordWriteError(ctx, meta)
		return nil
	}

	if err := m.store.Write(dir, path, data); err != nil {
		if m.cfg.StrictWrites {
			return err
		}
		logger.Warn(ctx, "cache write failed",
			observe.Field{Key: "error", Value: err.Error()})
		m.inst.Metrics.RecordWriteError(ctx, meta)
		return nil
	}
	return nil
}

// finish closes out one invocation: span, metrics, diagnostic line, and a
// structured log record.
func (m *Memoizer) finish(ctx context.Context, span trace.Span, logger observe.Logger, meta observe.CallMeta, start time.Time, hit bool, err error) {
	elapsed := time.Since(start)

	m.inst.Tracer.EndSpan(span, hit, err)
	m.inst.Metrics.RecordCall(ctx, meta, elapsed, hit, err)

	m.reporter.Report(Report{
		Subfolder: meta.Subfolder,
		Function:  meta.Function,
		Elapsed:   elapsed,
		Hit:       hit,
		Cacheable: meta.Cacheable,
	})

	fields := []observe.Field{
		{Key: "duration_ms", Value: float64(elapsed.Milliseconds())},
		{Key: "cache_hit", Value: hit},
	}
	if err != nil {
		fields = append(fields, observe.Field{Key: "error", Value: err.Error()})
		logger.Error(ctx, "memoized call failed", fields...)
	} else {
		logger.Info(ctx, "memoized call completed", fields...)
	}
}

// Call invokes fn through m and decodes the result into T via a JSON
// round-trip, so cache hits and fresh executions yield the same shape.
func Call[T any](ctx context.Context, m *Memoizer, reg Registration, fn Func, args ...any) (T, error) {
	var zero T

	v, err := m.Do(ctx, reg, fn, args...)
	if err != nil {
		return zero, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return zero, fmt.Errorf("memo: encode result: %w", err)
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, fmt.Errorf("memo: decode result: %w", err)
	}
	return out, nil
}
