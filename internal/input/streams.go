package input

import "github.com/hajimehoshi/ebiten/v2"

// KeyboardInput reports which keyboard keys are held.
type KeyboardInput interface {
	IsKeyPressed(key ebiten.Key) bool
}

// MouseInput reports which mouse buttons are held.
type MouseInput interface {
	IsMouseButtonPressed(button ebiten.MouseButton) bool
}

// GamepadInput reports the connected gamepads and their held buttons.
type GamepadInput interface {
	GamepadIDs() []ebiten.GamepadID
	IsButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
}

// InputStreams bundles the raw device state available for one tick.
// A nil provider means that device class is not tracked; its bindings read as
// released. AssociatedGamepad restricts gamepad bindings to one device.
type InputStreams struct {
	Keyboard KeyboardInput
	Mouse    MouseInput
	Gamepad  GamepadInput

	AssociatedGamepad *ebiten.GamepadID
}

type presence int8

const (
	absent presence = iota
	inactive
	active
)

func present(pressed bool) presence {
	if pressed {
		return active
	}
	return inactive
}

// Pressed reports whether b is held according to the streams.
func (s InputStreams) Pressed(b Binding) bool {
	return s.lookup(b) == active
}

func (s InputStreams) lookup(b Binding) presence {
	switch b.Device {
	case Keyboard:
		if s.Keyboard == nil {
			return absent
		}
		return present(s.Keyboard.IsKeyPressed(b.Key()))
	case Mouse:
		if s.Mouse == nil {
			return absent
		}
		return present(s.Mouse.IsMouseButtonPressed(b.MouseButton()))
	case Gamepad:
		if s.Gamepad == nil {
			return absent
		}
		if s.AssociatedGamepad != nil {
			return present(s.Gamepad.IsButtonPressed(*s.AssociatedGamepad, b.GamepadButton()))
		}
		for _, id := range s.Gamepad.GamepadIDs() {
			if s.Gamepad.IsButtonPressed(id, b.GamepadButton()) {
				return active
			}
		}
		return inactive
	}
	return absent
}
