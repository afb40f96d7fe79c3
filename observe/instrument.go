package observe

// Instruments bundles the telemetry primitives consumed by callers that
// instrument memoized invocations.
//
// Contract:
//   - Concurrency: all members are safe for concurrent use.
//   - Errors: members are best-effort; none of them fail an invocation.
type Instruments struct {
	Tracer  Tracer
	Metrics Metrics
	Logger  Logger
}

// NoopInstruments returns an Instruments bundle that records nothing.
func NoopInstruments() Instruments {
	return Instruments{
		Tracer:  NewNoopTracer(),
		Metrics: NewNoopMetrics(),
		Logger:  NewNoopLogger(),
	}
}

// InstrumentsFromObserver creates an Instruments bundle from an Observer.
// This is a convenience function for common use cases.
func InstrumentsFromObserver(obs Observer) (Instruments, error) {
	if obs == nil {
		return Instruments{}, ErrNilObserver
	}

	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return Instruments{}, err
	}

	return Instruments{
		Tracer:  NewTracer(obs.Tracer()),
		Metrics: metrics,
		Logger:  obs.Logger(),
	}, nil
}
