package input

import (
	"cmp"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputMap associates actions with the raw inputs that trigger them.
//
// An action is active when any of its bindings is held. One binding may be
// shared by several actions. The optional gamepad restricts gamepad bindings
// to a single device, so that each player only reacts to their own pad.
//
// An InputMap must not be edited while a resolution for the same actor is in
// flight. Concurrent WhichPressed calls are safe.
type InputMap[A comparable] struct {
	bindings map[A]map[Binding]struct{}
	order    []A
	gamepad  *ebiten.GamepadID
}

// NewInputMap creates an empty map with no gamepad affinity.
func NewInputMap[A comparable]() *InputMap[A] {
	return &InputMap[A]{bindings: make(map[A]map[Binding]struct{})}
}

// Insert binds action to each of bindings. Duplicates are ignored.
func (m *InputMap[A]) Insert(action A, bindings ...Binding) *InputMap[A] {
	set, ok := m.bindings[action]
	if !ok {
		set = make(map[Binding]struct{}, len(bindings))
		m.bindings[action] = set
		m.order = append(m.order, action)
	}
	for _, b := range bindings {
		set[b] = struct{}{}
	}
	return m
}

// Remove unbinds a single binding from action. It reports whether the binding existed.
func (m *InputMap[A]) Remove(action A, binding Binding) bool {
	set, ok := m.bindings[action]
	if !ok {
		return false
	}
	if _, ok := set[binding]; !ok {
		return false
	}
	delete(set, binding)
	return true
}

// Clear removes every binding of action.
func (m *InputMap[A]) Clear(action A) {
	if _, ok := m.bindings[action]; !ok {
		return
	}
	delete(m.bindings, action)
	m.order = slices.DeleteFunc(m.order, func(a A) bool { return a == action })
}

// Bindings returns the bindings of action ordered by device and code.
func (m *InputMap[A]) Bindings(action A) []Binding {
	set := m.bindings[action]
	out := make([]Binding, 0, len(set))
	for b := range set {
		out = append(out, b)
	}
	slices.SortFunc(out, func(x, y Binding) int {
		if c := cmp.Compare(x.Device, y.Device); c != 0 {
			return c
		}
		return cmp.Compare(x.code, y.code)
	})
	return out
}

// Actions returns every bound action in insertion order.
func (m *InputMap[A]) Actions() []A {
	return slices.Clone(m.order)
}

// SetGamepad restricts gamepad bindings to the device id.
func (m *InputMap[A]) SetGamepad(id ebiten.GamepadID) *InputMap[A] {
	m.gamepad = &id
	return m
}

// ClearGamepad lets gamepad bindings match any connected gamepad.
func (m *InputMap[A]) ClearGamepad() {
	m.gamepad = nil
}

// Gamepad returns the associated gamepad, if any.
func (m *InputMap[A]) Gamepad() (ebiten.GamepadID, bool) {
	if m.gamepad == nil {
		return 0, false
	}
	return *m.gamepad, true
}

// WithAssociatedGamepad returns streams restricted to this map's gamepad.
// Without an affinity the result reads any connected gamepad.
func (m *InputMap[A]) WithAssociatedGamepad(streams InputStreams) InputStreams {
	streams.AssociatedGamepad = m.gamepad
	return streams
}

// Pressed reports whether any binding of action is held.
func (m *InputMap[A]) Pressed(action A, streams InputStreams) bool {
	return m.pressed(action, m.WithAssociatedGamepad(streams))
}

func (m *InputMap[A]) pressed(action A, streams InputStreams) bool {
	for b := range m.bindings[action] {
		if streams.Pressed(b) {
			return true
		}
	}
	return false
}

// WhichPressed resolves the set of active actions. The streams' associated
// gamepad is replaced by this map's own affinity. Missing device providers
// count as nothing held.
func (m *InputMap[A]) WhichPressed(streams InputStreams) Set[A] {
	streams = m.WithAssociatedGamepad(streams)
	pressed := make(Set[A])
	for _, action := range m.order {
		if m.pressed(action, streams) {
			pressed.Add(action)
		}
	}
	return pressed
}
