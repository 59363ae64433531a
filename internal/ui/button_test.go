package ui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakePointer struct {
	x, y    int
	pressed bool
}

func (p *fakePointer) CursorPosition() (int, int) { return p.x, p.y }

func (p *fakePointer) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return button == ebiten.MouseButtonLeft && p.pressed
}

func TestButtonContains(t *testing.T) {
	b := NewButton("Jump", 10, 20, 100, 30)

	if !b.Contains(10, 20) {
		t.Error("Top-left corner should be inside")
	}
	if b.Contains(110, 20) || b.Contains(10, 50) {
		t.Error("Right and bottom edges should be outside")
	}
}

func TestButtonClickActivatesOnRelease(t *testing.T) {
	b := NewButton("Jump", 0, 0, 50, 50)
	p := &fakePointer{x: 10, y: 10}

	b.Update(p)
	if b.Activated() || !b.Hovered() {
		t.Fatal("Hovering alone should not activate")
	}

	p.pressed = true
	b.Update(p)
	if b.Activated() {
		t.Error("Press should not activate until released")
	}

	p.pressed = false
	b.Update(p)
	if !b.Activated() {
		t.Error("Expected activation when the click completes inside")
	}

	b.Update(p)
	if b.Activated() {
		t.Error("Activation should last a single tick")
	}
}

func TestButtonClickReleasedOutsideDoesNotActivate(t *testing.T) {
	b := NewButton("Jump", 0, 0, 50, 50)
	p := &fakePointer{x: 10, y: 10, pressed: true}
	b.Update(p)

	p.x, p.pressed = 200, false
	b.Update(p)
	if b.Activated() {
		t.Error("Release outside the button should not activate")
	}
}

func TestButtonClickStartedOutsideDoesNotActivate(t *testing.T) {
	b := NewButton("Jump", 0, 0, 50, 50)
	p := &fakePointer{x: 200, y: 10, pressed: true}
	b.Update(p)

	p.x = 10
	b.Update(p)
	p.pressed = false
	b.Update(p)
	if b.Activated() {
		t.Error("Drag onto the button should not activate")
	}
}
