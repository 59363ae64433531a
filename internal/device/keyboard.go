// Package device provides the raw device state consumed by input resolution.
// The ebiten backed providers take one snapshot per tick in Poll, so every
// actor resolved during that tick sees the same state.
package device

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard is a per-tick snapshot of the held keyboard keys.
type Keyboard struct {
	buf     []ebiten.Key
	pressed map[ebiten.Key]struct{}
}

// NewKeyboard creates an empty keyboard snapshot.
func NewKeyboard() *Keyboard {
	return &Keyboard{pressed: make(map[ebiten.Key]struct{})}
}

// Poll replaces the snapshot with the keys ebiten currently reports as held.
func (k *Keyboard) Poll() {
	k.buf = inpututil.AppendPressedKeys(k.buf[:0])
	clear(k.pressed)
	for _, key := range k.buf {
		k.pressed[key] = struct{}{}
	}
}

// IsKeyPressed returns true if key was held when the snapshot was taken.
func (k *Keyboard) IsKeyPressed(key ebiten.Key) bool {
	_, ok := k.pressed[key]
	return ok
}

// PressedKeys returns the held keys of the last snapshot.
func (k *Keyboard) PressedKeys() []ebiten.Key {
	return append([]ebiten.Key(nil), k.buf...)
}
