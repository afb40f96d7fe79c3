// Package memo memoizes the results of slow, side-effecting functions to
// per-function files on local disk, so repeated invocations during
// development return instantly instead of re-hitting external services.
//
// Each wrapped function persists its JSON-encoded result under
// <root>/<subfolder>/<name>.<ext>. The subfolder is derived from the first
// call argument (or declared explicitly per registration); the file name is
// the registration name alone. The entry path therefore depends on the
// subfolder and function name only, NOT on the full argument list: two calls
// that differ only in later arguments share one cache entry. That folding is
// intentional and pinned by tests; callers that need per-argument entries
// must encode the distinguishing argument first.
//
// Read and write behavior is resolved per call from a layered policy (base
// policy, JCACHE_READ/JCACHE_WRITE environment toggles, per-registration
// override), with a production kill switch that disables all caching last.
// Entries are best-effort: there is no TTL, no eviction, no locking, and no
// multi-process coordination. A cache hit refreshes the entry's modification
// time so stale entries can be pruned by age externally.
package memo
