// Package timing decouples the logic tick from the render frame rate.
package timing

import "time"

// Gate fires at most once per interval. The render loop asks it every frame
// and only advances game logic when it returns true.
type Gate struct {
	clock    Clock
	interval time.Duration
	last     time.Time
}

// NewGate creates a gate whose first tick is due one interval after creation.
func NewGate(clock Clock, interval time.Duration) *Gate {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Gate{
		clock:    clock,
		interval: interval,
		last:     clock.Now(),
	}
}

// ShouldTick reports whether an interval has elapsed since the last true
// return, and if so restarts the interval from now.
func (g *Gate) ShouldTick() bool {
	now := g.clock.Now()
	if now.Sub(g.last) >= g.interval {
		g.last = now
		return true
	}
	return false
}

// Reset restarts the current interval from now.
func (g *Gate) Reset() {
	g.last = g.clock.Now()
}

// Interval returns the configured tick interval.
func (g *Gate) Interval() time.Duration {
	return g.interval
}
