package device

import (
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Gamepads is a per-tick snapshot of every connected gamepad using the
// standard layout. Pads without a standard mapping are reported as connected
// but never have a button held.
type Gamepads struct {
	ids     []ebiten.GamepadID
	buf     []ebiten.StandardGamepadButton
	pressed map[ebiten.GamepadID]map[ebiten.StandardGamepadButton]struct{}
}

// NewGamepads creates an empty gamepad snapshot.
func NewGamepads() *Gamepads {
	return &Gamepads{pressed: make(map[ebiten.GamepadID]map[ebiten.StandardGamepadButton]struct{})}
}

// Poll replaces the snapshot with the current ebiten gamepad state.
func (g *Gamepads) Poll() {
	prev := slices.Clone(g.ids)
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])

	for _, id := range g.ids {
		if !slices.Contains(prev, id) {
			log.Printf("Gamepad %d connected: %s", id, ebiten.GamepadName(id))
		}
	}
	for _, id := range prev {
		if !slices.Contains(g.ids, id) {
			log.Printf("Gamepad %d disconnected", id)
			delete(g.pressed, id)
		}
	}

	for _, id := range g.ids {
		buttons, ok := g.pressed[id]
		if !ok {
			buttons = make(map[ebiten.StandardGamepadButton]struct{})
			g.pressed[id] = buttons
		}
		clear(buttons)
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		g.buf = inpututil.AppendPressedStandardGamepadButtons(id, g.buf[:0])
		for _, b := range g.buf {
			buttons[b] = struct{}{}
		}
	}
}

// GamepadIDs returns the connected gamepads of the last snapshot.
func (g *Gamepads) GamepadIDs() []ebiten.GamepadID {
	return g.ids
}

// IsButtonPressed returns true if button of gamepad id was held when the
// snapshot was taken. Disconnected pads report false.
func (g *Gamepads) IsButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	_, ok := g.pressed[id][button]
	return ok
}
