package pipeline

import (
	"time"

	"actionmap/internal/input"
)

//go:generate go tool mockgen -destination=./mocks/interfaces_mock.go -package=mocks . Clock,Activator

// Clock is the time source of the pipeline. LastUpdate returns false until
// the host advanced it for the first time.
type Clock interface {
	LastUpdate() (time.Time, bool)
}

// Activator is a secondary input source, such as a UI button, that reports
// whether it was activated during the current tick.
type Activator interface {
	Activated() bool
}

// Poller is implemented by device providers that snapshot their state once
// per tick.
type Poller interface {
	Poll()
}

// Devices holds the optional raw device providers. A nil field means the
// device class is not tracked.
type Devices struct {
	Keyboard input.KeyboardInput
	Mouse    input.MouseInput
	Gamepad  input.GamepadInput
}

// Poll refreshes every provider that takes snapshots.
func (d Devices) Poll() {
	for _, p := range []any{d.Keyboard, d.Mouse, d.Gamepad} {
		if poller, ok := p.(Poller); ok {
			poller.Poll()
		}
	}
}

// Streams returns the providers as input streams without gamepad affinity.
func (d Devices) Streams() input.InputStreams {
	return input.InputStreams{
		Keyboard: d.Keyboard,
		Mouse:    d.Mouse,
		Gamepad:  d.Gamepad,
	}
}
