package memo

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"sync"
	"time"
)

// Report summarizes one memoized invocation for the diagnostic sink.
type Report struct {
	Subfolder string
	Function  string
	Elapsed   time.Duration
	Hit       bool
	Cacheable bool
}

// Reporter receives one Report per invocation.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: reporting is best-effort and must not panic.
type Reporter interface {
	Report(r Report)
}

// consoleReporter writes one fixed-width line per invocation.
type consoleReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleReporter creates a Reporter writing padded single-line
// diagnostics to w. The output is for humans, not machines.
func NewConsoleReporter(w io.Writer) Reporter {
	return &consoleReporter{w: w}
}

// Report writes subfolder, function name, elapsed time, and, for cacheable
// registrations, whether the result came from cache.
func (c *consoleReporter) Report(r Report) {
	annotation := ""
	if r.Cacheable {
		if r.Hit {
			annotation = "(cache)"
		} else {
			annotation = "(fresh)"
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "%-20s %-32s %6s %s\n", r.Subfolder, r.Function, formatElapsed(r.Elapsed), annotation)
}

// formatElapsed renders wall time rounded to one decimal second, or "-"
// when it rounds to zero.
func formatElapsed(d time.Duration) string {
	secs := math.Round(d.Seconds()*10) / 10
	if secs == 0 {
		return "-"
	}
	return strconv.FormatFloat(secs, 'f', 1, 64) + "s"
}

// noopReporter discards reports.
type noopReporter struct{}

// NewNoopReporter returns a Reporter that discards everything.
func NewNoopReporter() Reporter {
	return &noopReporter{}
}

func (noopReporter) Report(Report) {}

// Ensure both reporters implement Reporter
var (
	_ Reporter = (*consoleReporter)(nil)
	_ Reporter = noopReporter{}
)
