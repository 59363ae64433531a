package device

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// StaticKeyboard is a keyboard snapshot driven by the program instead of
// ebiten, for headless hosts, replays and tests.
type StaticKeyboard map[ebiten.Key]bool

func (k StaticKeyboard) Press(keys ...ebiten.Key) {
	for _, key := range keys {
		k[key] = true
	}
}

func (k StaticKeyboard) Release(keys ...ebiten.Key) {
	for _, key := range keys {
		delete(k, key)
	}
}

func (k StaticKeyboard) IsKeyPressed(key ebiten.Key) bool {
	return k[key]
}

// StaticMouse is a program driven mouse snapshot.
type StaticMouse map[ebiten.MouseButton]bool

func (m StaticMouse) Press(button ebiten.MouseButton) {
	m[button] = true
}

func (m StaticMouse) Release(button ebiten.MouseButton) {
	delete(m, button)
}

func (m StaticMouse) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return m[button]
}

// StaticGamepads is a program driven gamepad snapshot. A pad is connected
// once Connect or Press was called for it.
type StaticGamepads struct {
	ids     []ebiten.GamepadID
	pressed map[ebiten.GamepadID]map[ebiten.StandardGamepadButton]bool
}

func NewStaticGamepads(ids ...ebiten.GamepadID) *StaticGamepads {
	g := &StaticGamepads{pressed: make(map[ebiten.GamepadID]map[ebiten.StandardGamepadButton]bool)}
	for _, id := range ids {
		g.Connect(id)
	}
	return g
}

func (g *StaticGamepads) Connect(id ebiten.GamepadID) {
	if _, ok := g.pressed[id]; ok {
		return
	}
	g.ids = append(g.ids, id)
	g.pressed[id] = make(map[ebiten.StandardGamepadButton]bool)
}

func (g *StaticGamepads) Disconnect(id ebiten.GamepadID) {
	delete(g.pressed, id)
	g.ids = slices.DeleteFunc(g.ids, func(other ebiten.GamepadID) bool { return other == id })
}

func (g *StaticGamepads) Press(id ebiten.GamepadID, button ebiten.StandardGamepadButton) {
	g.Connect(id)
	g.pressed[id][button] = true
}

func (g *StaticGamepads) Release(id ebiten.GamepadID, button ebiten.StandardGamepadButton) {
	if buttons, ok := g.pressed[id]; ok {
		delete(buttons, button)
	}
}

func (g *StaticGamepads) GamepadIDs() []ebiten.GamepadID {
	return g.ids
}

func (g *StaticGamepads) IsButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return g.pressed[id][button]
}
