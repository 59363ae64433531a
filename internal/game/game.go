package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"actionmap/internal/config"
	"actionmap/internal/device"
	"actionmap/internal/input"
	"actionmap/internal/pipeline"
	"actionmap/internal/threading/monitoring"
	"actionmap/internal/ui"
)

const moveSpeed = 3.0

// Player is one actor of the demo together with what its actions did
type Player struct {
	Name     string
	ID       input.ActorID
	X        float64
	Jumps    int
	Shots    int
	LastHold time.Duration // duration of the most recently released action
}

// actionButton presses an action on a player while the on-screen button is clicked
type actionButton struct {
	button *ui.Button
	driver input.ActionStateDriver[Action]
}

// Game is the ebiten game hosting the input pipeline
type Game struct {
	config   *config.Config
	registry *pipeline.Registry[Action]
	pipeline *pipeline.Pipeline[Action]
	clock    *device.FrameClock
	pointer  ui.Pointer
	monitor  *monitoring.PerformanceMonitor

	players []*Player
	buttons []*actionButton
	ticks   int
}

// NewGame wires the pipeline to the live ebiten devices
func NewGame(cfg *config.Config) *Game {
	mouse := device.NewMouse()
	devices := pipeline.Devices{
		Keyboard: device.NewKeyboard(),
		Mouse:    mouse,
		Gamepad:  device.NewGamepads(),
	}
	return newGame(cfg, devices, mouse, device.NewFrameClock())
}

func newGame(cfg *config.Config, devices pipeline.Devices, pointer ui.Pointer, clock *device.FrameClock) *Game {
	monitor := monitoring.NewPerformanceMonitor()
	monitor.SetTickBudget(cfg.GetTickBudget())

	registry := pipeline.NewRegistry[Action]()
	g := &Game{
		config:   cfg,
		registry: registry,
		clock:    clock,
		pointer:  pointer,
		monitor:  monitor,
	}
	g.pipeline = pipeline.New(registry, clock, devices,
		pipeline.WithWorkers(cfg.Pipeline.Workers),
		pipeline.WithParallelThreshold(cfg.Pipeline.ParallelThreshold),
		pipeline.WithMonitor(monitor),
	)

	byName := make(map[string]*Player, len(cfg.Players))
	for i := range cfg.Players {
		pc := &cfg.Players[i]
		m := config.BuildInputMap(pc, ActionByName)
		id := registry.SpawnWith(input.NewActionState(AllActions()...), m)
		p := &Player{Name: pc.Name, ID: id, X: float64(cfg.GetScreenWidth()) / 2}
		g.players = append(g.players, p)
		byName[p.Name] = p
	}

	for _, bc := range cfg.Buttons {
		action, ok := ActionByName(bc.Action)
		if !ok {
			log.Printf("Warning: button %s: unknown action %q", bc.Label, bc.Action)
			continue
		}
		ab := &actionButton{
			button: ui.NewButton(bc.Label, bc.X, bc.Y, bc.Width, bc.Height),
			driver: input.ActionStateDriver[Action]{Target: byName[bc.Player].ID, Action: action},
		}
		g.pipeline.AddDriver(ab.button, ab.driver)
		g.buttons = append(g.buttons, ab)
	}

	return g
}

// Players returns the demo players in config order
func (g *Game) Players() []*Player {
	return g.players
}

// ActionState returns the action state of the named player
func (g *Game) ActionState(name string) (*input.ActionState[Action], bool) {
	for _, p := range g.players {
		if p.Name == name {
			return g.registry.ActionState(p.ID)
		}
	}
	return nil, false
}

// Update runs one frame. Pipeline errors are fatal and stop the game.
func (g *Game) Update() error {
	g.clock.Advance()

	if poller, ok := g.pointer.(pipeline.Poller); ok {
		poller.Poll()
	}
	for _, ab := range g.buttons {
		ab.button.Update(g.pointer)
	}

	if err := g.pipeline.Update(context.Background()); err != nil {
		return fmt.Errorf("input pipeline: %w", err)
	}

	g.applyActions()

	g.ticks++
	if g.ticks%g.config.GetTPS() == 0 {
		for _, alert := range g.monitor.CheckPerformanceAlerts() {
			log.Printf("Warning: %s (%.0fus > %.0fus)", alert.Message, alert.Value, alert.Threshold)
		}
	}
	return nil
}

func (g *Game) applyActions() {
	width := float64(g.config.GetScreenWidth())
	for _, p := range g.players {
		state, ok := g.registry.ActionState(p.ID)
		if !ok {
			continue
		}
		if state.Pressed(ActionLeft) {
			p.X -= moveSpeed
		}
		if state.Pressed(ActionRight) {
			p.X += moveSpeed
		}
		p.X = max(0, min(width, p.X))

		if state.JustPressed(ActionJump) {
			p.Jumps++
		}
		if state.JustPressed(ActionFire) {
			p.Shots++
		}
		for _, a := range state.JustReleasedActions() {
			p.LastHold = state.PreviousDuration(a)
		}
	}
}
