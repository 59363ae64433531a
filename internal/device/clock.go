package device

import (
	"sync"
	"time"
)

// FrameClock records the instant of the latest game update. It stays
// uninitialized until the first Advance.
type FrameClock struct {
	mu   sync.RWMutex
	now  func() time.Time
	last time.Time
}

// NewFrameClock creates a clock reading wall time.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// NewFrameClockFunc creates a clock reading time from now. Used for replays
// and fixed-step simulations.
func NewFrameClockFunc(now func() time.Time) *FrameClock {
	return &FrameClock{now: now}
}

// Advance stamps the current update. Instants never go backwards.
func (c *FrameClock) Advance() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t := c.now(); t.After(c.last) {
		c.last = t
	}
	return c.last
}

// LastUpdate returns the instant of the latest Advance, or false if the clock
// was never advanced.
func (c *FrameClock) LastUpdate() (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last, !c.last.IsZero()
}

// StepClock is a deterministic time source advancing by a fixed step, such as
// one ebiten tick.
type StepClock struct {
	t    time.Time
	step time.Duration
}

// NewStepClock starts at start and moves by step on every call.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{t: start.Add(-step), step: step}
}

// Now returns the next instant. It is meant to be passed to NewFrameClockFunc.
func (s *StepClock) Now() time.Time {
	s.t = s.t.Add(s.step)
	return s.t
}
