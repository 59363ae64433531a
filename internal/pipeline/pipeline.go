// Package pipeline advances the action state of every registered actor once
// per tick: clear edges, resolve device input through each actor's InputMap,
// then apply presses from secondary sources such as UI buttons.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"actionmap/internal/input"
	"actionmap/internal/threading/core"
	"actionmap/internal/threading/monitoring"
)

// ErrDanglingDriver is returned when a driver targets an actor that no longer
// exists or has no ActionState. It points at a bug in actor lifecycle handling.
var ErrDanglingDriver = errors.New("pipeline: driver targets a missing action state")

// Step is one stage of a tick.
type Step int

const (
	// StepTick clears last tick's edges on every ActionState.
	StepTick Step = iota
	// StepDevices resolves raw device state through each actor's InputMap.
	StepDevices
	// StepInjection presses actions of activated drivers.
	StepInjection
)

func (s Step) String() string {
	switch s {
	case StepTick:
		return "tick"
	case StepDevices:
		return "devices"
	case StepInjection:
		return "injection"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

type driverEntry[A comparable] struct {
	source Activator
	driver input.ActionStateDriver[A]
}

type options struct {
	workers           int
	parallelThreshold int
	monitor           *monitoring.PerformanceMonitor
}

// Option configures a Pipeline.
type Option func(*options)

// WithWorkers sets the number of goroutines used for parallel resolution.
// Zero means one per CPU.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithParallelThreshold resolves actors in parallel once at least n actors
// take part in the device step. Zero or less disables parallel resolution.
func WithParallelThreshold(n int) Option {
	return func(o *options) { o.parallelThreshold = n }
}

// WithMonitor records tick timings and action activity in pm.
func WithMonitor(pm *monitoring.PerformanceMonitor) Option {
	return func(o *options) { o.monitor = pm }
}

// Pipeline runs the per tick update of a Registry.
//
// Any error returned by Update is fatal: the clock was never started, time
// went backwards, or a driver dangles. The tick is aborted and retrying the
// same tick cannot succeed.
type Pipeline[A comparable] struct {
	registry *Registry[A]
	clock    Clock
	devices  Devices
	drivers  []driverEntry[A]
	opts     options

	pairs []actorPair[A]
}

// New creates a pipeline updating registry with time from clock and raw
// input from devices.
func New[A comparable](registry *Registry[A], clock Clock, devices Devices, opts ...Option) *Pipeline[A] {
	p := &Pipeline[A]{
		registry: registry,
		clock:    clock,
		devices:  devices,
	}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Registry returns the registry updated by the pipeline.
func (p *Pipeline[A]) Registry() *Registry[A] {
	return p.registry
}

// SetDevices swaps the device providers used from the next tick on.
func (p *Pipeline[A]) SetDevices(d Devices) {
	p.devices = d
}

// AddDriver makes source press driver.Action on driver.Target whenever it is activated.
func (p *Pipeline[A]) AddDriver(source Activator, driver input.ActionStateDriver[A]) {
	p.drivers = append(p.drivers, driverEntry[A]{source: source, driver: driver})
}

// RemoveDriver drops every driver registered for source and returns how many were removed.
func (p *Pipeline[A]) RemoveDriver(source Activator) int {
	before := len(p.drivers)
	p.drivers = slices.DeleteFunc(p.drivers, func(e driverEntry[A]) bool { return e.source == source })
	return before - len(p.drivers)
}

// Update runs a full tick: StepTick, StepDevices, then StepInjection.
func (p *Pipeline[A]) Update(ctx context.Context) error {
	var timer *monitoring.TickTimer
	if p.opts.monitor != nil {
		timer = p.opts.monitor.StartTick()
	}

	for _, step := range []Step{StepTick, StepDevices, StepInjection} {
		if err := p.Step(ctx, step); err != nil {
			return err
		}
	}

	if p.opts.monitor != nil {
		p.recordEdges()
		timer.EndTick()
	}
	return nil
}

// Step runs a single stage. Hosts that need injection before device
// resolution call the steps themselves; StepTick must come first.
func (p *Pipeline[A]) Step(ctx context.Context, step Step) error {
	switch step {
	case StepTick:
		return p.tick()
	case StepDevices:
		return p.resolve(ctx)
	case StepInjection:
		return p.inject()
	default:
		return fmt.Errorf("pipeline: unknown step %d", int(step))
	}
}

func (p *Pipeline[A]) tick() error {
	now, ok := p.clock.LastUpdate()
	if !ok {
		return fmt.Errorf("pipeline: tick: %w", input.ErrClockNotInitialized)
	}
	return p.registry.withState(func(id input.ActorID, s *input.ActionState[A]) error {
		if err := s.Tick(now); err != nil {
			return fmt.Errorf("pipeline: tick actor %s: %w", id, err)
		}
		return nil
	})
}

func (p *Pipeline[A]) resolve(ctx context.Context) error {
	p.devices.Poll()
	streams := p.devices.Streams()

	p.pairs = p.registry.pairs(p.pairs)
	parallel := p.opts.parallelThreshold > 0 && len(p.pairs) >= p.opts.parallelThreshold

	var timer *monitoring.ResolveTimer
	if p.opts.monitor != nil {
		timer = p.opts.monitor.StartResolve()
	}

	if parallel {
		err := core.ForEach(ctx, p.pairs, p.opts.workers, func(_ context.Context, pair actorPair[A]) error {
			pair.state.Update(pair.m.WhichPressed(streams))
			return nil
		})
		if err != nil {
			return fmt.Errorf("pipeline: resolve: %w", err)
		}
	} else {
		for _, pair := range p.pairs {
			pair.state.Update(pair.m.WhichPressed(streams))
		}
	}

	if timer != nil {
		timer.EndResolve(len(p.pairs), parallel)
	}
	return nil
}

func (p *Pipeline[A]) inject() error {
	for _, e := range p.drivers {
		if !e.source.Activated() {
			continue
		}
		target := e.driver.Target
		if !p.registry.Contains(target) {
			return fmt.Errorf("%w: actor %s does not exist", ErrDanglingDriver, target)
		}
		state, ok := p.registry.ActionState(target)
		if !ok {
			return fmt.Errorf("%w: actor %s has no action state", ErrDanglingDriver, target)
		}
		state.Press(e.driver.Action)
		if p.opts.monitor != nil {
			p.opts.monitor.RecordInjection()
		}
	}
	return nil
}

func (p *Pipeline[A]) recordEdges() {
	var pressed, released int
	_ = p.registry.withState(func(_ input.ActorID, s *input.ActionState[A]) error {
		pressed += len(s.JustPressedActions())
		released += len(s.JustReleasedActions())
		return nil
	})
	p.opts.monitor.RecordEdges(pressed, released)
}
