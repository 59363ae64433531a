package input

import (
	"errors"
	"testing"
	"time"
)

type testAction int

const (
	Jump testAction = iota
	Fire
	Crouch
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func mustTick(t *testing.T, s *ActionState[testAction], now time.Time) {
	t.Helper()
	if err := s.Tick(now); err != nil {
		t.Fatalf("Tick(%v) returned error: %v", now, err)
	}
}

func assertFlags(t *testing.T, s *ActionState[testAction], a testAction, pressed, justPressed, justReleased bool) {
	t.Helper()
	if s.Pressed(a) != pressed {
		t.Errorf("Expected pressed=%v, got %v", pressed, s.Pressed(a))
	}
	if s.JustPressed(a) != justPressed {
		t.Errorf("Expected just_pressed=%v, got %v", justPressed, s.JustPressed(a))
	}
	if s.JustReleased(a) != justReleased {
		t.Errorf("Expected just_released=%v, got %v", justReleased, s.JustReleased(a))
	}
}

func TestNewActionStateAllReleased(t *testing.T) {
	s := NewActionState(Jump, Fire, Crouch)

	if len(s.Actions()) != 3 {
		t.Fatalf("Expected 3 actions, got %d", len(s.Actions()))
	}
	for _, a := range s.Actions() {
		assertFlags(t, s, a, false, false, false)
		if s.State(a) != Released {
			t.Errorf("Expected %v to be released, got %v", a, s.State(a))
		}
	}
}

func TestNeverAssertedActionStaysReleased(t *testing.T) {
	s := NewActionState(Jump, Fire)

	for i := 0; i < 5; i++ {
		mustTick(t, s, at(i*16))
		s.Update(NewSet(Jump))
		assertFlags(t, s, Fire, false, false, false)
	}
}

func TestRisingEdge(t *testing.T) {
	s := NewActionState(Jump)
	mustTick(t, s, at(0))
	s.Update(NewSet[testAction]())

	mustTick(t, s, at(16))
	s.Update(NewSet(Jump))
	assertFlags(t, s, Jump, true, true, false)
	if s.State(Jump) != JustPressed {
		t.Errorf("Expected JustPressed, got %v", s.State(Jump))
	}

	// Still held next tick: the edge is gone.
	mustTick(t, s, at(32))
	s.Update(NewSet(Jump))
	assertFlags(t, s, Jump, true, false, false)
	if s.State(Jump) != Held {
		t.Errorf("Expected Held, got %v", s.State(Jump))
	}
}

func TestFallingEdge(t *testing.T) {
	s := NewActionState(Jump)
	for i := 0; i < 4; i++ {
		mustTick(t, s, at(i*16))
		s.Update(NewSet(Jump))
	}

	mustTick(t, s, at(64))
	s.Update(NewSet[testAction]())
	assertFlags(t, s, Jump, false, false, true)
	if s.State(Jump) != JustReleased {
		t.Errorf("Expected JustReleased, got %v", s.State(Jump))
	}

	mustTick(t, s, at(80))
	s.Update(NewSet[testAction]())
	assertFlags(t, s, Jump, false, false, false)
}

func TestTickWithoutUpdateProducesNoEdges(t *testing.T) {
	s := NewActionState(Jump, Fire)
	mustTick(t, s, at(0))
	s.Update(NewSet(Jump))

	for i := 1; i <= 3; i++ {
		mustTick(t, s, at(i*16))
		assertFlags(t, s, Jump, true, false, false)
		assertFlags(t, s, Fire, false, false, false)
	}
}

func TestTickClearsEdgesBeforeUpdate(t *testing.T) {
	s := NewActionState(Jump)
	mustTick(t, s, at(0))
	s.Press(Jump)
	if !s.JustPressed(Jump) {
		t.Fatal("Expected just pressed after Press")
	}

	mustTick(t, s, at(16))
	if s.JustPressed(Jump) {
		t.Error("Tick should clear just_pressed")
	}
	if !s.Pressed(Jump) {
		t.Error("Tick should not release a held action")
	}
}

func TestDeviceReleaseThenInjectedPressKeepsHeld(t *testing.T) {
	s := NewActionState(Jump)
	mustTick(t, s, at(0))
	s.Update(NewSet(Jump))

	// Devices no longer report Jump, but a button asserts it in the same tick.
	mustTick(t, s, at(16))
	s.Update(NewSet[testAction]())
	s.Press(Jump)

	assertFlags(t, s, Jump, true, false, false)
	if s.State(Jump) != Held {
		t.Errorf("Expected Held, got %v", s.State(Jump))
	}
}

func TestInjectedPressThenDeviceUpdateKeepsHeld(t *testing.T) {
	s := NewActionState(Jump)
	mustTick(t, s, at(0))
	s.Update(NewSet(Jump))

	mustTick(t, s, at(16))
	s.Press(Jump)
	s.Update(NewSet[testAction]())

	assertFlags(t, s, Jump, true, false, false)
}

func TestInjectedPressOnReleasedActionIsRisingEdgeInEitherOrder(t *testing.T) {
	a := NewActionState(Jump)
	mustTick(t, a, at(0))
	a.Update(NewSet[testAction]())
	a.Press(Jump)

	b := NewActionState(Jump)
	mustTick(t, b, at(0))
	b.Press(Jump)
	b.Update(NewSet[testAction]())

	assertFlags(t, a, Jump, true, true, false)
	assertFlags(t, b, Jump, true, true, false)
}

func TestReleaseIsImmediateAndNotUndone(t *testing.T) {
	s := NewActionState(Jump)
	mustTick(t, s, at(0))
	s.Update(NewSet(Jump))

	mustTick(t, s, at(16))
	s.Press(Jump)
	s.Release(Jump)
	assertFlags(t, s, Jump, false, false, true)

	// A later source without Jump does not change anything.
	s.Update(NewSet[testAction]())
	assertFlags(t, s, Jump, false, false, true)

	// A later assertion is a fresh press on top of the forced release.
	s.Update(NewSet(Jump))
	assertFlags(t, s, Jump, true, true, true)
	if s.State(Jump) != JustPressed {
		t.Errorf("Expected JustPressed, got %v", s.State(Jump))
	}
}

func TestReleaseOfReleasedActionIsNoop(t *testing.T) {
	s := NewActionState(Jump)
	mustTick(t, s, at(0))
	s.Release(Jump)
	assertFlags(t, s, Jump, false, false, false)
}

func TestReleaseAll(t *testing.T) {
	s := NewActionState(Jump, Fire, Crouch)
	mustTick(t, s, at(0))
	s.Update(NewSet(Jump, Fire))

	mustTick(t, s, at(16))
	s.ReleaseAll()

	assertFlags(t, s, Jump, false, false, true)
	assertFlags(t, s, Fire, false, false, true)
	assertFlags(t, s, Crouch, false, false, false)
	if len(s.PressedActions()) != 0 {
		t.Errorf("Expected no pressed actions, got %v", s.PressedActions())
	}
}

func TestUpdateAddsUnknownActions(t *testing.T) {
	s := NewActionState[testAction]()
	mustTick(t, s, at(0))
	s.Update(NewSet(Crouch))

	if !s.JustPressed(Crouch) {
		t.Error("Expected Crouch to be just pressed")
	}
	if len(s.Actions()) != 1 {
		t.Errorf("Expected 1 known action, got %d", len(s.Actions()))
	}

	mustTick(t, s, at(16))
	s.Update(NewSet[testAction]())
	if !s.JustReleased(Crouch) {
		t.Error("Expected Crouch to be released once no longer asserted")
	}
}

func TestActionLists(t *testing.T) {
	s := NewActionState(Jump, Fire, Crouch)
	mustTick(t, s, at(0))
	s.Update(NewSet(Jump, Crouch))
	mustTick(t, s, at(16))
	s.Update(NewSet(Jump, Fire))

	if got := s.PressedActions(); len(got) != 2 || got[0] != Jump || got[1] != Fire {
		t.Errorf("Expected pressed [Jump Fire], got %v", got)
	}
	if got := s.JustPressedActions(); len(got) != 1 || got[0] != Fire {
		t.Errorf("Expected just pressed [Fire], got %v", got)
	}
	if got := s.JustReleasedActions(); len(got) != 1 || got[0] != Crouch {
		t.Errorf("Expected just released [Crouch], got %v", got)
	}
}

func TestDurations(t *testing.T) {
	s := NewActionState(Jump)
	mustTick(t, s, at(0))
	s.Update(NewSet[testAction]())

	mustTick(t, s, at(10))
	s.Update(NewSet(Jump))
	if s.PreviousDuration(Jump) != 10*time.Millisecond {
		t.Errorf("Expected previous duration 10ms, got %v", s.PreviousDuration(Jump))
	}
	if s.CurrentDuration(Jump) != 0 {
		t.Errorf("Expected current duration 0 on press, got %v", s.CurrentDuration(Jump))
	}

	mustTick(t, s, at(30))
	s.Update(NewSet(Jump))
	if s.CurrentDuration(Jump) != 20*time.Millisecond {
		t.Errorf("Expected held for 20ms, got %v", s.CurrentDuration(Jump))
	}

	mustTick(t, s, at(60))
	s.Update(NewSet[testAction]())
	if s.PreviousDuration(Jump) != 50*time.Millisecond {
		t.Errorf("Expected held duration 50ms, got %v", s.PreviousDuration(Jump))
	}
}

func TestCancelledReleaseRestoresDuration(t *testing.T) {
	s := NewActionState(Jump)
	mustTick(t, s, at(0))
	s.Update(NewSet(Jump))

	mustTick(t, s, at(40))
	s.Update(NewSet[testAction]())
	s.Press(Jump)

	if s.CurrentDuration(Jump) != 40*time.Millisecond {
		t.Errorf("Expected held for 40ms, got %v", s.CurrentDuration(Jump))
	}
}

func TestTickRejectsUninitializedClock(t *testing.T) {
	s := NewActionState(Jump)
	if err := s.Tick(time.Time{}); !errors.Is(err, ErrClockNotInitialized) {
		t.Errorf("Expected ErrClockNotInitialized, got %v", err)
	}
}

func TestTickRejectsTimeGoingBackwards(t *testing.T) {
	s := NewActionState(Jump)
	mustTick(t, s, at(100))
	if err := s.Tick(at(50)); !errors.Is(err, ErrTimeWentBackwards) {
		t.Errorf("Expected ErrTimeWentBackwards, got %v", err)
	}
	if !s.Now().Equal(at(100)) {
		t.Errorf("Expected tick time unchanged, got %v", s.Now())
	}

	// Same instant twice is allowed.
	mustTick(t, s, at(100))
}

func TestButtonStateString(t *testing.T) {
	if JustPressed.String() != "just_pressed" {
		t.Errorf("Expected just_pressed, got %s", JustPressed.String())
	}
	if ButtonState(42).String() != "ButtonState(42)" {
		t.Errorf("Unexpected string %s", ButtonState(42).String())
	}
}
