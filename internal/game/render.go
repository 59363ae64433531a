package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{20, 20, 30, 255}
	groundColor     = color.RGBA{60, 50, 40, 255}
	playerColors    = []color.RGBA{
		{220, 90, 90, 255},
		{90, 140, 220, 255},
		{120, 200, 120, 255},
		{220, 200, 90, 255},
	}
)

const (
	playerSize   = 16
	crouchHeight = 8
	jumpHeight   = 20
	lineHeight   = 16
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	w, h := g.config.GetScreenWidth(), g.config.GetScreenHeight()
	groundY := float32(h - 40)
	vector.DrawFilledRect(screen, 0, groundY, float32(w), 40, groundColor, false)

	y := 8
	for i, p := range g.players {
		state, ok := g.registry.ActionState(p.ID)
		if !ok {
			continue
		}
		clr := playerColors[i%len(playerColors)]

		height := float32(playerSize)
		if state.Pressed(ActionCrouch) {
			height = crouchHeight
		}
		top := groundY - height
		if state.Pressed(ActionJump) {
			top -= jumpHeight
		}
		vector.DrawFilledRect(screen, float32(p.X)-playerSize/2, top, playerSize, height, clr, false)

		held := make([]string, 0, len(actionNames))
		for _, a := range state.PressedActions() {
			held = append(held, fmt.Sprintf("%s %.1fs", a, state.CurrentDuration(a).Seconds()))
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  jumps:%d shots:%d last hold:%.2fs",
			p.Name, p.Jumps, p.Shots, p.LastHold.Seconds()), 8, y)
		ebitenutil.DebugPrintAt(screen, "  held: "+strings.Join(held, ", "), 8, y+lineHeight)
		y += 2 * lineHeight
	}

	for _, ab := range g.buttons {
		lit := false
		if state, ok := g.registry.ActionState(ab.driver.Target); ok {
			lit = state.Pressed(ab.driver.Action)
		}
		ab.button.Draw(screen, lit)
	}

	m := g.monitor.GetCurrentMetrics()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f  tick: %v  avg: %v  injections: %d",
		ebiten.ActualTPS(), m.LastTickTime, g.monitor.AverageTickTime(), m.Injections), 8, h-lineHeight-4)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}
