// Package ui holds on-screen widgets that drive actions directly, bypassing
// device resolution.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Pointer is the mouse state a widget reads each tick.
type Pointer interface {
	CursorPosition() (x, y int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
}

// Button is a clickable rectangle. It is activated during the tick in which a
// left click that started inside it is released inside it.
type Button struct {
	X, Y, W, H int
	Label      string

	hovered   bool
	armed     bool
	held      bool
	activated bool
}

// NewButton creates a button covering [x,x+w) and [y,y+h).
func NewButton(label string, x, y, w, h int) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label}
}

// Contains reports whether the point lies inside the button.
// Bounds are inclusive-exclusive: [x1,x2) and [y1,y2).
func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Update reads the pointer. Call it once per tick before the pipeline's
// injection step.
func (b *Button) Update(p Pointer) {
	x, y := p.CursorPosition()
	pressed := p.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	b.hovered = b.Contains(x, y)
	b.activated = false
	switch {
	case pressed && !b.held:
		b.armed = b.hovered
	case !pressed && b.held:
		b.activated = b.armed && b.hovered
		b.armed = false
	}
	b.held = pressed
}

// Activated reports whether a click completed on the button this tick.
func (b *Button) Activated() bool {
	return b.activated
}

// Hovered reports whether the cursor is over the button.
func (b *Button) Hovered() bool {
	return b.hovered
}

var (
	buttonFill    = color.RGBA{40, 40, 60, 255}
	buttonHover   = color.RGBA{60, 60, 90, 255}
	buttonLit     = color.RGBA{90, 140, 90, 255}
	buttonBorder  = color.RGBA{120, 120, 160, 255}
	buttonTextCol = color.RGBA{230, 230, 230, 255}
)

// Draw renders the button. lit highlights it, typically while the driven
// action is pressed.
func (b *Button) Draw(screen *ebiten.Image, lit bool) {
	fill := buttonFill
	switch {
	case lit:
		fill = buttonLit
	case b.hovered:
		fill = buttonHover
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, buttonBorder, false)

	face := basicfont.Face7x13
	textW := font.MeasureString(face, b.Label).Ceil()
	baseline := b.Y + (b.H+face.Metrics().Ascent.Ceil())/2
	ebitext.Draw(screen, b.Label, face, b.X+(b.W-textW)/2, baseline, buttonTextCol)
}
