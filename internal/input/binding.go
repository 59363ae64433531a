package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Device is the class of physical device a binding reads from.
type Device uint8

const (
	Keyboard Device = iota + 1
	Mouse
	Gamepad
)

func (d Device) String() string {
	switch d {
	case Keyboard:
		return "keyboard"
	case Mouse:
		return "mouse"
	case Gamepad:
		return "gamepad"
	default:
		return fmt.Sprintf("device(%d)", uint8(d))
	}
}

// Binding is one raw input: a device class plus the device specific code.
// Bindings are comparable and used as map keys.
type Binding struct {
	Device Device
	code   int
}

// KeyBinding binds a keyboard key.
func KeyBinding(key ebiten.Key) Binding {
	return Binding{Device: Keyboard, code: int(key)}
}

// MouseBinding binds a mouse button.
func MouseBinding(button ebiten.MouseButton) Binding {
	return Binding{Device: Mouse, code: int(button)}
}

// GamepadBinding binds a button of the standard gamepad layout.
func GamepadBinding(button ebiten.StandardGamepadButton) Binding {
	return Binding{Device: Gamepad, code: int(button)}
}

func (b Binding) Key() ebiten.Key                             { return ebiten.Key(b.code) }
func (b Binding) MouseButton() ebiten.MouseButton             { return ebiten.MouseButton(b.code) }
func (b Binding) GamepadButton() ebiten.StandardGamepadButton { return ebiten.StandardGamepadButton(b.code) }

// String renders the binding in the form accepted by ParseBinding.
func (b Binding) String() string {
	switch b.Device {
	case Keyboard:
		return "keyboard:" + b.Key().String()
	case Mouse:
		if name, ok := mouseButtonNames[b.MouseButton()]; ok {
			return "mouse:" + name
		}
	case Gamepad:
		if name, ok := gamepadButtonNames[b.GamepadButton()]; ok {
			return "gamepad:" + name
		}
	}
	return fmt.Sprintf("%s:%d", b.Device, b.code)
}

var mouseButtonNames = map[ebiten.MouseButton]string{
	ebiten.MouseButtonLeft:   "Left",
	ebiten.MouseButtonMiddle: "Middle",
	ebiten.MouseButtonRight:  "Right",
	ebiten.MouseButton3:      "Back",
	ebiten.MouseButton4:      "Forward",
}

var gamepadButtonNames = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonRightBottom:      "South",
	ebiten.StandardGamepadButtonRightRight:       "East",
	ebiten.StandardGamepadButtonRightLeft:        "West",
	ebiten.StandardGamepadButtonRightTop:         "North",
	ebiten.StandardGamepadButtonFrontTopLeft:     "LeftShoulder",
	ebiten.StandardGamepadButtonFrontTopRight:    "RightShoulder",
	ebiten.StandardGamepadButtonFrontBottomLeft:  "LeftTrigger",
	ebiten.StandardGamepadButtonFrontBottomRight: "RightTrigger",
	ebiten.StandardGamepadButtonCenterLeft:       "Select",
	ebiten.StandardGamepadButtonCenterRight:      "Start",
	ebiten.StandardGamepadButtonLeftStick:        "LeftStick",
	ebiten.StandardGamepadButtonRightStick:       "RightStick",
	ebiten.StandardGamepadButtonLeftTop:          "DPadUp",
	ebiten.StandardGamepadButtonLeftBottom:       "DPadDown",
	ebiten.StandardGamepadButtonLeftLeft:         "DPadLeft",
	ebiten.StandardGamepadButtonLeftRight:        "DPadRight",
	ebiten.StandardGamepadButtonCenterCenter:     "Home",
}

// Extra spellings accepted by ParseBinding, lower case.
var gamepadButtonAliases = map[string]ebiten.StandardGamepadButton{
	"a":      ebiten.StandardGamepadButtonRightBottom,
	"b":      ebiten.StandardGamepadButtonRightRight,
	"x":      ebiten.StandardGamepadButtonRightLeft,
	"y":      ebiten.StandardGamepadButtonRightTop,
	"lb":     ebiten.StandardGamepadButtonFrontTopLeft,
	"rb":     ebiten.StandardGamepadButtonFrontTopRight,
	"lt":     ebiten.StandardGamepadButtonFrontBottomLeft,
	"rt":     ebiten.StandardGamepadButtonFrontBottomRight,
	"back":   ebiten.StandardGamepadButtonCenterLeft,
	"guide":  ebiten.StandardGamepadButtonCenterCenter,
	"up":     ebiten.StandardGamepadButtonLeftTop,
	"down":   ebiten.StandardGamepadButtonLeftBottom,
	"left":   ebiten.StandardGamepadButtonLeftLeft,
	"right":  ebiten.StandardGamepadButtonLeftRight,
	"select": ebiten.StandardGamepadButtonCenterLeft,
}

// ParseBinding parses "device:code", e.g. "keyboard:Space", "mouse:Left" or
// "gamepad:South". Names are case insensitive.
func ParseBinding(s string) (Binding, error) {
	device, code, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || code == "" {
		return Binding{}, fmt.Errorf("%w: %q", ErrUnknownBinding, s)
	}
	switch strings.ToLower(device) {
	case "keyboard", "key":
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(code)); err != nil {
			return Binding{}, fmt.Errorf("%w: %q", ErrUnknownBinding, s)
		}
		return KeyBinding(key), nil
	case "mouse":
		for button, name := range mouseButtonNames {
			if strings.EqualFold(name, code) {
				return MouseBinding(button), nil
			}
		}
	case "gamepad", "pad":
		for button, name := range gamepadButtonNames {
			if strings.EqualFold(name, code) {
				return GamepadBinding(button), nil
			}
		}
		if button, ok := gamepadButtonAliases[strings.ToLower(code)]; ok {
			return GamepadBinding(button), nil
		}
	default:
		return Binding{}, fmt.Errorf("%w: %q", ErrUnknownDevice, device)
	}
	return Binding{}, fmt.Errorf("%w: %q", ErrUnknownBinding, s)
}
