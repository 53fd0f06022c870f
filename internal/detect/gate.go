package detect

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultWindow is the minimum wall-clock interval enforced between two
// consecutive fired alerts.
const DefaultWindow = 2000 * time.Millisecond

// Decision is the gate's conclusion for one candidate failure event.
type Decision int

const (
	// Suppress drops the candidate event. Final: suppressed events are
	// never queued or replayed.
	Suppress Decision = iota
	// Fire lets the candidate event raise a notification.
	Fire
)

// String returns a human-readable name for the decision.
func (d Decision) String() string {
	if d == Fire {
		return "fire"
	}
	return "suppress"
}

// Gate coalesces candidate failure events into at most one Fire per window.
// Both the pattern path and the exit-code path share a single Gate, so a
// burst of error lines followed by a nonzero exit still rings once.
// Safe for concurrent use: the mutex is the serialization boundary that
// keeps two near-simultaneous candidates from both reading a stale
// lastFired and both firing.
type Gate struct {
	mu        sync.Mutex
	clk       clock.Clock
	window    time.Duration
	enabled   bool
	lastFired time.Time // zero until the first Fire
}

// NewGate creates a Gate. A window <= 0 falls back to DefaultWindow; a nil
// clk falls back to the real clock.
func NewGate(window time.Duration, enabled bool, clk clock.Clock) *Gate {
	if window <= 0 {
		window = DefaultWindow
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Gate{clk: clk, window: window, enabled: enabled}
}

// Offer evaluates one candidate failure event. Disabled gates always
// suppress without touching lastFired.
func (g *Gate) Offer() Decision {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.enabled {
		return Suppress
	}

	now := g.clk.Now()
	// Strict >: an event landing exactly on the window edge is suppressed.
	if g.lastFired.IsZero() || now.Sub(g.lastFired) > g.window {
		g.lastFired = now
		return Fire
	}
	return Suppress
}

// SetEnabled toggles detection. Takes effect for all subsequent candidates.
func (g *Gate) SetEnabled(v bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enabled = v
}

// Enabled reports whether the gate lets candidates through.
func (g *Gate) Enabled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.enabled
}

// LastFired returns the timestamp of the most recent Fire, or the zero
// time if nothing has fired yet.
func (g *Gate) LastFired() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastFired
}

// Window returns the configured debounce window.
func (g *Gate) Window() time.Duration {
	return g.window
}
