// Package observe provides telemetry for memoized invocations.
//
// It provides a structured JSON logger, OpenTelemetry tracing and metrics
// wrappers keyed on call metadata, and an Observer composition root with
// pluggable exporters.
package observe
