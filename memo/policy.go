package memo

import "os"

// Environment variables consulted by EnvSource. A toggle enables its
// behavior only when set to exactly "true"; absent or any other value
// disables it.
const (
	EnvRead  = "JCACHE_READ"
	EnvWrite = "JCACHE_WRITE"
)

// Policy is the effective read/write permission for one invocation.
// It is resolved once per call and immutable for the call's duration.
type Policy struct {
	// Read permits serving a persisted entry instead of executing.
	Read bool

	// Write permits persisting a freshly computed result.
	Write bool
}

// ReadWrite returns a policy with both reads and writes enabled.
func ReadWrite() Policy {
	return Policy{Read: true, Write: true}
}

// WriteOnly returns a policy that never reads but always attempts to
// persist. Useful for refreshing entries while still exercising the real
// implementation.
func WriteOnly() Policy {
	return Policy{Read: false, Write: true}
}

// Disabled returns a policy with all caching off.
func Disabled() Policy {
	return Policy{}
}

// Source is one layer of policy resolution. Sources are pure: they receive
// the policy resolved so far and return the next one.
type Source func(Policy) Policy

// Resolve composes a base policy with layered sources, highest precedence
// last.
func Resolve(base Policy, sources ...Source) Policy {
	p := base
	for _, s := range sources {
		p = s(p)
	}
	return p
}

// EnvSource resolves the policy from the JCACHE_READ and JCACHE_WRITE
// environment variables, replacing whatever was resolved before it.
func EnvSource() Source {
	return func(Policy) Policy {
		return Policy{
			Read:  os.Getenv(EnvRead) == "true",
			Write: os.Getenv(EnvWrite) == "true",
		}
	}
}

// Override resolves to the given policy unconditionally.
func Override(p Policy) Source {
	return func(Policy) Policy {
		return p
	}
}

// ProductionSwitch is the kill switch: when enabled it forces all caching
// off regardless of what earlier layers resolved. It must compose last.
func ProductionSwitch(enabled bool) Source {
	return func(p Policy) Policy {
		if enabled {
			return Policy{}
		}
		return p
	}
}
