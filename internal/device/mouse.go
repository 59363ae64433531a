package device

import "github.com/hajimehoshi/ebiten/v2"

// Mouse is a per-tick snapshot of the mouse buttons and cursor.
type Mouse struct {
	pressed [ebiten.MouseButtonMax + 1]bool
	x, y    int
}

// NewMouse creates an empty mouse snapshot.
func NewMouse() *Mouse {
	return &Mouse{}
}

// Poll replaces the snapshot with the current ebiten mouse state.
func (m *Mouse) Poll() {
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		m.pressed[b] = ebiten.IsMouseButtonPressed(b)
	}
	m.x, m.y = ebiten.CursorPosition()
}

// IsMouseButtonPressed returns true if button was held when the snapshot was taken.
func (m *Mouse) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	if button < 0 || button > ebiten.MouseButtonMax {
		return false
	}
	return m.pressed[button]
}

// CursorPosition returns the cursor position of the last snapshot.
func (m *Mouse) CursorPosition() (x, y int) {
	return m.x, m.y
}
