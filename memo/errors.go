package memo

import "errors"

// Sentinel errors for memoized invocations.
var (
	// ErrMissingName indicates a registration with an empty function name.
	// The name is the primary cache-file discriminator and must be stable.
	ErrMissingName = errors.New("memo: registration name is required")

	// ErrNilFunc indicates a nil wrapped function.
	ErrNilFunc = errors.New("memo: function is nil")

	// ErrNoResult indicates that neither the cache nor the wrapped function
	// produced a usable value.
	ErrNoResult = errors.New("memo: no result")
)
