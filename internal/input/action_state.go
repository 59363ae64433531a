package input

import (
	"fmt"
	"time"
)

// ButtonState is the state of a single action for the current tick.
type ButtonState int

const (
	Released ButtonState = iota
	JustPressed
	Held
	JustReleased
)

func (s ButtonState) String() string {
	switch s {
	case Released:
		return "released"
	case JustPressed:
		return "just_pressed"
	case Held:
		return "held"
	case JustReleased:
		return "just_released"
	default:
		return fmt.Sprintf("ButtonState(%d)", int(s))
	}
}

type timing struct {
	since    time.Time     // instant of the last transition
	previous time.Duration // length of the state before it
}

type actionData struct {
	pressed      bool
	justPressed  bool
	justReleased bool

	// pressedThisTick is OR-ed by every source during a tick and cleared by Tick.
	pressedThisTick bool
	// forcedRelease marks a release made through Release; it is never undone
	// by a later press in the same tick.
	forcedRelease bool

	timing timing
	undo   timing
}

// ActionState tracks the pressed state and edges of every action of one actor.
//
// Per tick the owner calls Tick exactly once, followed by any number of Update,
// Press and Release calls coming from different sources. An action stays
// pressed for the tick if any source asserted it, and is only released when
// no source asserted it at all. Readers see the result after all sources ran.
//
// ActionState is not safe for concurrent use; different actors may be
// updated concurrently.
type ActionState[A comparable] struct {
	actions []A
	data    map[A]*actionData
	now     time.Time
}

// NewActionState creates a state with every given action released.
func NewActionState[A comparable](actions ...A) *ActionState[A] {
	s := &ActionState[A]{
		data: make(map[A]*actionData, len(actions)),
	}
	for _, action := range actions {
		s.entry(action)
	}
	return s
}

func (s *ActionState[A]) entry(action A) *actionData {
	d, ok := s.data[action]
	if !ok {
		d = &actionData{timing: timing{since: s.now}}
		s.data[action] = d
		s.actions = append(s.actions, action)
	}
	return d
}

// Tick starts a new tick at now: edge flags and the per-tick accumulator are
// cleared for every action. now must not be zero and must not go backwards.
func (s *ActionState[A]) Tick(now time.Time) error {
	if now.IsZero() {
		return ErrClockNotInitialized
	}
	if now.Before(s.now) {
		return fmt.Errorf("%w: %s is before %s", ErrTimeWentBackwards,
			now.Format(time.RFC3339Nano), s.now.Format(time.RFC3339Nano))
	}
	s.now = now
	for _, d := range s.data {
		d.justPressed = false
		d.justReleased = false
		d.pressedThisTick = false
		d.forcedRelease = false
		if d.timing.since.IsZero() {
			d.timing.since = now
		}
	}
	return nil
}

// Update applies the set of actions one source currently considers active.
// Actions in the set are pressed. Every other action is released, unless some
// source already asserted it during this tick.
func (s *ActionState[A]) Update(active Set[A]) {
	for action := range active {
		s.Press(action)
	}
	for _, action := range s.actions {
		if active.Contains(action) {
			continue
		}
		s.releaseUnasserted(s.data[action])
	}
}

// Press asserts action for the current tick.
//
// If an earlier Update of the same tick released the action because its
// source did not assert it, the press undoes that release: the action stays
// held and no edge is reported.
func (s *ActionState[A]) Press(action A) {
	d := s.entry(action)
	d.pressedThisTick = true
	if d.pressed {
		return
	}
	if d.justReleased && !d.forcedRelease {
		d.pressed = true
		d.justReleased = false
		d.timing = d.undo
		return
	}
	d.pressed = true
	d.justPressed = true
	s.transition(d)
}

// Release forces action to released immediately, regardless of what other
// sources asserted during this tick.
func (s *ActionState[A]) Release(action A) {
	d := s.entry(action)
	d.pressedThisTick = false
	if !d.pressed {
		if d.justReleased {
			d.forcedRelease = true
		}
		return
	}
	d.pressed = false
	d.justReleased = true
	d.forcedRelease = true
	s.transition(d)
}

// ReleaseAll forces every known action to released.
func (s *ActionState[A]) ReleaseAll() {
	for _, action := range s.actions {
		s.Release(action)
	}
}

func (s *ActionState[A]) releaseUnasserted(d *actionData) {
	if d.pressedThisTick || !d.pressed {
		return
	}
	d.pressed = false
	d.justReleased = true
	s.transition(d)
}

func (s *ActionState[A]) transition(d *actionData) {
	d.undo = d.timing
	d.timing.previous = s.elapsed(d)
	d.timing.since = s.now
}

func (s *ActionState[A]) elapsed(d *actionData) time.Duration {
	if d.timing.since.IsZero() || s.now.IsZero() {
		return 0
	}
	return s.now.Sub(d.timing.since)
}

// Pressed reports whether action is currently pressed.
func (s *ActionState[A]) Pressed(action A) bool {
	d, ok := s.data[action]
	return ok && d.pressed
}

// Released reports whether action is currently released.
func (s *ActionState[A]) Released(action A) bool {
	return !s.Pressed(action)
}

// JustPressed reports whether action became pressed during this tick.
func (s *ActionState[A]) JustPressed(action A) bool {
	d, ok := s.data[action]
	return ok && d.justPressed
}

// JustReleased reports whether action became released during this tick.
func (s *ActionState[A]) JustReleased(action A) bool {
	d, ok := s.data[action]
	return ok && d.justReleased
}

// State collapses the flags of action into a single ButtonState.
func (s *ActionState[A]) State(action A) ButtonState {
	d, ok := s.data[action]
	switch {
	case !ok:
		return Released
	case d.justPressed && d.pressed:
		return JustPressed
	case d.pressed:
		return Held
	case d.justReleased:
		return JustReleased
	default:
		return Released
	}
}

// CurrentDuration returns how long action has been in its current state, as
// of the latest tick.
func (s *ActionState[A]) CurrentDuration(action A) time.Duration {
	d, ok := s.data[action]
	if !ok {
		return 0
	}
	return s.elapsed(d)
}

// PreviousDuration returns how long action stayed in its previous state.
// For a just released action this is how long it was held.
func (s *ActionState[A]) PreviousDuration(action A) time.Duration {
	d, ok := s.data[action]
	if !ok {
		return 0
	}
	return d.timing.previous
}

// Now returns the instant of the latest tick.
func (s *ActionState[A]) Now() time.Time {
	return s.now
}

// Actions returns the known action space in insertion order.
func (s *ActionState[A]) Actions() []A {
	out := make([]A, len(s.actions))
	copy(out, s.actions)
	return out
}

// PressedActions returns every pressed action.
func (s *ActionState[A]) PressedActions() []A {
	return s.filter(func(d *actionData) bool { return d.pressed })
}

// JustPressedActions returns every action pressed during this tick.
func (s *ActionState[A]) JustPressedActions() []A {
	return s.filter(func(d *actionData) bool { return d.justPressed })
}

// JustReleasedActions returns every action released during this tick.
func (s *ActionState[A]) JustReleasedActions() []A {
	return s.filter(func(d *actionData) bool { return d.justReleased })
}

func (s *ActionState[A]) filter(keep func(*actionData) bool) []A {
	var out []A
	for _, action := range s.actions {
		if keep(s.data[action]) {
			out = append(out, action)
		}
	}
	return out
}
