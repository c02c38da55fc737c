package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Timings accumulates wall-clock durations per named phase.
// A nil *Timings is valid and records nothing.
type Timings struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	order  []string
}

// New creates an empty Timings
func New() *Timings {
	return &Timings{totals: make(map[string]time.Duration)}
}

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer timings.Track("meshing.Hexaflake")()
func (t *Timings) Track(name string) func() {
	if t == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		t.Add(name, time.Since(start))
	}
}

// Add records d under name
func (t *Timings) Add(name string, d time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	if _, ok := t.totals[name]; !ok {
		t.order = append(t.order, name)
	}
	t.totals[name] += d
	t.mu.Unlock()
}

// Snapshot returns a copy of the recorded totals
func (t *Timings) Snapshot() map[string]time.Duration {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]time.Duration, len(t.totals))
	for k, v := range t.totals {
		out[k] = v
	}
	return out
}

// Total sums every recorded phase
func (t *Timings) Total() time.Duration {
	var sum time.Duration
	for _, d := range t.Snapshot() {
		sum += d
	}
	return sum
}

// TopN formats the n longest phases, longest first.
// Example: "meshing.Hexaflake:4.2ms, flake.Upload:0.3ms"
func (t *Timings) TopN(n int) string {
	if t == nil {
		return ""
	}
	t.mu.Lock()
	names := append([]string(nil), t.order...)
	totals := make(map[string]time.Duration, len(t.totals))
	for k, v := range t.totals {
		totals[k] = v
	}
	t.mu.Unlock()

	// stable so that equal durations keep recording order
	sort.SliceStable(names, func(i, j int) bool { return totals[names[i]] > totals[names[j]] })
	n = max(0, min(n, len(names)))
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		parts = append(parts, name+":"+formatMs(totals[name]))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
