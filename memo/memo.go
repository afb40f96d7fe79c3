package memo

import "context"

// Defaults for Config.
const (
	// DefaultRoot is the cache directory created under the working directory.
	DefaultRoot = "cache"

	// DefaultExtension is the cache file extension.
	DefaultExtension = "json"
)

// Func is the signature of a wrapped function: asynchronous work that may
// fail. The first positional argument selects the cache subfolder when the
// registration derives subfolders from arguments.
type Func func(ctx context.Context, args ...any) (any, error)

// SubfolderMode selects how the cache subfolder is chosen for a
// registration.
type SubfolderMode int

const (
	// SubfolderFromArg derives the subfolder from the call's first argument:
	// a non-empty string is used as-is, the empty string maps to "empty",
	// and any other type maps to "global".
	SubfolderFromArg SubfolderMode = iota

	// SubfolderExplicit uses Registration.Subfolder; when that is empty the
	// entry lives directly under the cache root.
	SubfolderExplicit
)

// Registration describes one wrapped function.
type Registration struct {
	// Name identifies the function and names its cache file. Required,
	// and must be stable across calls.
	Name string

	// Cacheable permits serving results from cache. Registrations without
	// it never read an entry, though they may still write one.
	Cacheable bool

	// Mode selects subfolder derivation. Zero value derives from the first
	// call argument.
	Mode SubfolderMode

	// Subfolder is the explicit subfolder used when Mode is
	// SubfolderExplicit.
	Subfolder string

	// Policy, when set, overrides the memoizer's base and environment
	// policy for this registration. The production kill switch still wins.
	Policy *Policy
}

func (r Registration) validate() error {
	if r.Name == "" {
		return ErrMissingName
	}
	return nil
}

// Config configures a Memoizer. It is an explicit value handed to New, not
// ambient process state; set it once at startup.
type Config struct {
	// Production forces all caching off regardless of any other setting.
	Production bool

	// Root is the cache root directory. Defaults to DefaultRoot.
	Root string

	// Extension is the cache file extension. Defaults to DefaultExtension.
	Extension string

	// Base is the policy used before environment and per-registration
	// layers apply. Zero value disables caching.
	Base Policy

	// UseEnv consults JCACHE_READ/JCACHE_WRITE on every call, replacing
	// Base.
	UseEnv bool

	// StrictWrites propagates cache persist failures to the caller.
	// When false (the default) a failed persist is logged and the freshly
	// computed result is still returned.
	StrictWrites bool
}

// DefaultConfig returns a Config with default root and extension and
// caching disabled.
func DefaultConfig() Config {
	return Config{
		Root:      DefaultRoot,
		Extension: DefaultExtension,
		Base:      Disabled(),
	}
}

func (c Config) withDefaults() Config {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	return c
}
