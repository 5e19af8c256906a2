// Package session owns the countdown for a single meditation run and the
// derived values presenters draw from it.
package session

import (
	"fmt"

	"github.com/akyairhashvil/meditimer/internal/config"
	"github.com/akyairhashvil/meditimer/internal/util"
	"github.com/google/uuid"
)

// State is the lifecycle position of a session.
type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Orientation selects how progress maps onto the ring.
type Orientation int

const (
	// Fill grows clockwise from empty.
	Fill Orientation = iota
	// Drain shrinks from a full ring.
	Drain
)

func (o Orientation) String() string {
	if o == Drain {
		return config.OrientationDrain
	}
	return config.OrientationFill
}

// ParseOrientation maps a config name onto an Orientation.
func ParseOrientation(name string) (Orientation, error) {
	switch name {
	case "", config.OrientationFill:
		return Fill, nil
	case config.OrientationDrain:
		return Drain, nil
	}
	return Fill, fmt.Errorf("unknown orientation %q", name)
}

// TickResult reports the outcome of one elapsed second.
type TickResult struct {
	Remaining int
	Completed bool
}

// Snapshot is a read-only view for presenters.
type Snapshot struct {
	ID        string
	State     State
	Minutes   int
	Duration  int
	Remaining int
	Fraction  float64
}

// Active reports whether the session is running or paused.
func (s Snapshot) Active() bool { return s.State == Running || s.State == Paused }

// Paused reports whether the countdown is held.
func (s Snapshot) Paused() bool { return s.State == Paused }

// Clock counts a session down one second per Tick.
// It is not safe for concurrent use; callers serialize access.
type Clock struct {
	id        string
	minutes   int
	duration  int
	remaining int
	state     State
	newID     func() string
}

func NewClock() *Clock {
	return &Clock{newID: uuid.NewString}
}

// ClampMinutes applies the session bounds. Out-of-range requests are clamped, never rejected.
func ClampMinutes(minutes int) int {
	return util.Clamp(minutes, config.MinMinutes, config.MaxMinutes)
}

// Start begins a session of the given length in minutes.
// It returns false and changes nothing while a session is running or paused.
func (c *Clock) Start(minutes int) bool {
	if c.state == Running || c.state == Paused {
		return false
	}
	c.minutes = ClampMinutes(minutes)
	c.duration = c.minutes * 60
	c.remaining = c.duration
	c.state = Running
	c.id = c.newID()
	return true
}

// Tick advances one second. It is a no-op unless Running.
func (c *Clock) Tick() TickResult {
	if c.state != Running {
		return TickResult{Remaining: c.remaining}
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.state = Completed
		return TickResult{Remaining: 0, Completed: true}
	}
	return TickResult{Remaining: c.remaining}
}

// Pause holds the countdown without touching the remaining time.
func (c *Clock) Pause() bool {
	if c.state != Running {
		return false
	}
	c.state = Paused
	return true
}

// Resume continues a paused countdown.
func (c *Clock) Resume() bool {
	if c.state != Paused {
		return false
	}
	c.state = Running
	return true
}

// Stop returns the clock to Idle and clears the countdown. A second call is a no-op.
func (c *Clock) Stop() bool {
	if c.state == Idle {
		return false
	}
	c.state = Idle
	c.remaining = 0
	c.duration = 0
	c.minutes = 0
	c.id = ""
	return true
}

// ProgressFraction is elapsed/duration in [0,1]; zero while Idle.
func (c *Clock) ProgressFraction() float64 {
	if c.state == Idle || c.duration <= 0 {
		return 0
	}
	f := float64(c.duration-c.remaining) / float64(c.duration)
	return util.ClampFloat(f, 0, 1)
}

// Angle converts progress into ring degrees for the given orientation.
func (c *Clock) Angle(o Orientation) float64 {
	if c.state == Idle || c.duration <= 0 {
		return 0
	}
	if o == Drain {
		return 360 * float64(c.remaining) / float64(c.duration)
	}
	return c.ProgressFraction() * 360
}

func (c *Clock) State() State { return c.state }
func (c *Clock) Remaining() int { return c.remaining }
func (c *Clock) Duration() int { return c.duration }
func (c *Clock) Minutes() int { return c.minutes }
func (c *Clock) ID() string { return c.id }

// Snapshot copies the current state.
func (c *Clock) Snapshot() Snapshot {
	return Snapshot{
		ID:        c.id,
		State:     c.state,
		Minutes:   c.minutes,
		Duration:  c.duration,
		Remaining: c.remaining,
		Fraction:  c.ProgressFraction(),
	}
}
