package timing

import (
	"testing"
	"time"
)

func TestGateFiresOncePerInterval(t *testing.T) {
	clock := NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	gate := NewGate(clock, 150*time.Millisecond)

	if gate.ShouldTick() {
		t.Fatal("Expected no tick before the first interval elapsed")
	}

	clock.Advance(100 * time.Millisecond)
	if gate.ShouldTick() {
		t.Error("Expected no tick at 100ms")
	}

	clock.Advance(50 * time.Millisecond)
	if !gate.ShouldTick() {
		t.Fatal("Expected tick at exactly one interval")
	}
	if gate.ShouldTick() {
		t.Error("Expected a second call in the same instant to return false")
	}

	// Frames render every ~16ms; only one tick per 150ms should pass.
	ticks := 0
	for i := 0; i < 60; i++ {
		clock.Advance(16 * time.Millisecond)
		if gate.ShouldTick() {
			ticks++
		}
	}
	if ticks != 6 {
		t.Errorf("Expected 6 ticks over 960ms of frames, got %d", ticks)
	}
}

func TestGateLongPauseFiresOnce(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	gate := NewGate(clock, 150*time.Millisecond)

	clock.Advance(2 * time.Second)
	if !gate.ShouldTick() {
		t.Fatal("Expected tick after a long pause")
	}
	if gate.ShouldTick() {
		t.Error("Expected missed intervals not to be replayed")
	}
}

func TestGateReset(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	gate := NewGate(clock, 100*time.Millisecond)

	clock.Advance(90 * time.Millisecond)
	gate.Reset()
	clock.Advance(20 * time.Millisecond)
	if gate.ShouldTick() {
		t.Error("Expected Reset to restart the interval")
	}
	clock.Advance(80 * time.Millisecond)
	if !gate.ShouldTick() {
		t.Error("Expected tick one interval after Reset")
	}
	if gate.Interval() != 100*time.Millisecond {
		t.Errorf("Expected interval 100ms, got %v", gate.Interval())
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	var c SystemClock
	t1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := c.Now()
	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}
