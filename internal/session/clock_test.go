package session

import (
	"math"
	"testing"

	"github.com/akyairhashvil/meditimer/internal/config"
)

func newTestClock() *Clock {
	c := NewClock()
	n := 0
	c.newID = func() string {
		n++
		return "session-" + string(rune('a'+n-1))
	}
	return c
}

func TestStartTickToCompletion(t *testing.T) {
	for d := config.MinMinutes; d <= config.MaxMinutes; d++ {
		c := newTestClock()
		if !c.Start(d) {
			t.Fatalf("Start(%d) returned false", d)
		}
		total := d * 60
		var res TickResult
		for i := 0; i < total; i++ {
			if c.State() != Running {
				t.Fatalf("d=%d: state %v before tick %d", d, c.State(), i)
			}
			res = c.Tick()
		}
		if !res.Completed {
			t.Fatalf("d=%d: expected completion on final tick", d)
		}
		if c.Remaining() != 0 || c.State() != Completed {
			t.Fatalf("d=%d: remaining=%d state=%v", d, c.Remaining(), c.State())
		}
	}
}

func TestProgressFractionMonotonic(t *testing.T) {
	c := newTestClock()
	c.Start(3)
	prev := c.ProgressFraction()
	if prev != 0 {
		t.Fatalf("expected 0 at start, got %v", prev)
	}
	for c.State() == Running {
		c.Tick()
		f := c.ProgressFraction()
		if f < prev {
			t.Fatalf("fraction decreased: %v -> %v", prev, f)
		}
		if f < 0 || f > 1 {
			t.Fatalf("fraction out of range: %v", f)
		}
		prev = f
	}
	if prev != 1 {
		t.Fatalf("expected 1 at completion, got %v", prev)
	}
}

func TestFiveMinuteExample(t *testing.T) {
	c := newTestClock()
	c.Start(5)
	if c.Duration() != 300 {
		t.Fatalf("expected 300 seconds, got %d", c.Duration())
	}
	for i := 0; i < 150; i++ {
		c.Tick()
	}
	if got := c.ProgressFraction(); got != 0.5 {
		t.Fatalf("expected 0.5 after 150 ticks, got %v", got)
	}
	for i := 0; i < 150; i++ {
		c.Tick()
	}
	if c.State() != Completed || c.Remaining() != 0 {
		t.Fatalf("expected Completed with 0 remaining, got %v/%d", c.State(), c.Remaining())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	c := newTestClock()
	c.Start(2)
	for i := 0; i < 17; i++ {
		c.Tick()
	}
	if !c.Stop() {
		t.Fatalf("first Stop should report a change")
	}
	if c.Remaining() != 0 || c.State() != Idle || c.Snapshot().Active() {
		t.Fatalf("expected idle with zero remaining, got %+v", c.Snapshot())
	}
	before := c.Snapshot()
	if c.Stop() {
		t.Fatalf("second Stop should be a no-op")
	}
	if c.Snapshot() != before {
		t.Fatalf("second Stop changed state: %+v -> %+v", before, c.Snapshot())
	}
}

func TestDurationClamping(t *testing.T) {
	low := newTestClock()
	low.Start(0)
	if low.Minutes() != 1 || low.Duration() != 60 {
		t.Fatalf("Start(0) should behave as Start(1), got %d min", low.Minutes())
	}
	high := newTestClock()
	high.Start(90)
	if high.Minutes() != 60 || high.Duration() != 3600 {
		t.Fatalf("Start(90) should behave as Start(60), got %d min", high.Minutes())
	}
}

func TestDoubleStartIgnored(t *testing.T) {
	c := newTestClock()
	c.Start(10)
	c.Tick()
	id := c.ID()
	if c.Start(20) {
		t.Fatalf("Start while running should be ignored")
	}
	if c.Minutes() != 10 || c.Remaining() != 599 || c.ID() != id {
		t.Fatalf("running session was modified: %+v", c.Snapshot())
	}
	c.Pause()
	if c.Start(20) {
		t.Fatalf("Start while paused should be ignored")
	}
}

func TestPauseResume(t *testing.T) {
	c := newTestClock()
	if c.Pause() || c.Resume() {
		t.Fatalf("pause/resume should be no-ops while idle")
	}
	c.Start(1)
	c.Tick()
	if !c.Pause() {
		t.Fatalf("Pause should succeed while running")
	}
	res := c.Tick()
	if res.Remaining != 59 || c.Remaining() != 59 {
		t.Fatalf("tick while paused changed remaining to %d", c.Remaining())
	}
	if c.Pause() {
		t.Fatalf("second Pause should be a no-op")
	}
	if !c.Resume() {
		t.Fatalf("Resume should succeed while paused")
	}
	c.Tick()
	if c.Remaining() != 58 {
		t.Fatalf("expected 58 after resume tick, got %d", c.Remaining())
	}
}

func TestCompletedThenStartAgain(t *testing.T) {
	c := newTestClock()
	c.Start(1)
	for i := 0; i < 60; i++ {
		c.Tick()
	}
	if c.State() != Completed {
		t.Fatalf("expected Completed, got %v", c.State())
	}
	res := c.Tick()
	if res.Completed {
		t.Fatalf("tick after completion must not signal again")
	}
	if !c.Start(2) {
		t.Fatalf("Start from Completed should succeed")
	}
	if c.ID() == "session-a" {
		t.Fatalf("expected a fresh session id")
	}
}

func TestAngleOrientations(t *testing.T) {
	c := newTestClock()
	if c.Angle(Fill) != 0 || c.Angle(Drain) != 0 {
		t.Fatalf("idle angles should be zero")
	}
	c.Start(1)
	if c.Angle(Fill) != 0 || c.Angle(Drain) != 360 {
		t.Fatalf("start angles: fill=%v drain=%v", c.Angle(Fill), c.Angle(Drain))
	}
	for i := 0; i < 15; i++ {
		c.Tick()
	}
	if math.Abs(c.Angle(Fill)-90) > 1e-9 {
		t.Fatalf("fill angle after quarter = %v", c.Angle(Fill))
	}
	if math.Abs(c.Angle(Drain)-270) > 1e-9 {
		t.Fatalf("drain angle after quarter = %v", c.Angle(Drain))
	}
}

func TestParseOrientation(t *testing.T) {
	if o, err := ParseOrientation("drain"); err != nil || o != Drain {
		t.Fatalf("ParseOrientation(drain) = %v, %v", o, err)
	}
	if o, err := ParseOrientation(""); err != nil || o != Fill {
		t.Fatalf("ParseOrientation(\"\") = %v, %v", o, err)
	}
	if _, err := ParseOrientation("spiral"); err == nil {
		t.Fatalf("expected error for unknown orientation")
	}
}

func TestStateString(t *testing.T) {
	if Running.String() != "running" || Completed.String() != "completed" {
		t.Fatalf("unexpected state names")
	}
}
