package pipeline

import (
	"slices"

	"actionmap/internal/input"
)

// Registry stores the input components of every actor, keyed by actor id.
// An actor may own an ActionState, an InputMap, both or neither. The pipeline
// joins the two stores each tick.
//
// Registry is not safe for concurrent use. Spawn, Despawn and inserts must
// happen between ticks.
type Registry[A comparable] struct {
	order  []input.ActorID
	states map[input.ActorID]*input.ActionState[A]
	maps   map[input.ActorID]*input.InputMap[A]
}

// NewRegistry creates an empty registry.
func NewRegistry[A comparable]() *Registry[A] {
	return &Registry[A]{
		states: make(map[input.ActorID]*input.ActionState[A]),
		maps:   make(map[input.ActorID]*input.InputMap[A]),
	}
}

// Spawn registers a new actor without components.
func (r *Registry[A]) Spawn() input.ActorID {
	id := input.NewActorID()
	r.order = append(r.order, id)
	return id
}

// SpawnWith registers a new actor owning state and m. Either may be nil.
func (r *Registry[A]) SpawnWith(state *input.ActionState[A], m *input.InputMap[A]) input.ActorID {
	id := r.Spawn()
	if state != nil {
		r.states[id] = state
	}
	if m != nil {
		r.maps[id] = m
	}
	return id
}

// Despawn removes the actor and its components. It reports whether the actor existed.
func (r *Registry[A]) Despawn(id input.ActorID) bool {
	i := slices.Index(r.order, id)
	if i < 0 {
		return false
	}
	r.order = slices.Delete(r.order, i, i+1)
	delete(r.states, id)
	delete(r.maps, id)
	return true
}

// Contains reports whether the actor exists.
func (r *Registry[A]) Contains(id input.ActorID) bool {
	return slices.Contains(r.order, id)
}

// InsertActionState attaches state to an existing actor, replacing any previous one.
func (r *Registry[A]) InsertActionState(id input.ActorID, state *input.ActionState[A]) bool {
	if !r.Contains(id) {
		return false
	}
	r.states[id] = state
	return true
}

// InsertInputMap attaches m to an existing actor, replacing any previous one.
func (r *Registry[A]) InsertInputMap(id input.ActorID, m *input.InputMap[A]) bool {
	if !r.Contains(id) {
		return false
	}
	r.maps[id] = m
	return true
}

// RemoveInputMap detaches the actor's map; its ActionState stops receiving device input.
func (r *Registry[A]) RemoveInputMap(id input.ActorID) {
	delete(r.maps, id)
}

// ActionState returns the state of the actor.
func (r *Registry[A]) ActionState(id input.ActorID) (*input.ActionState[A], bool) {
	s, ok := r.states[id]
	return s, ok
}

// InputMap returns the map of the actor.
func (r *Registry[A]) InputMap(id input.ActorID) (*input.InputMap[A], bool) {
	m, ok := r.maps[id]
	return m, ok
}

// Actors returns every actor id in spawn order.
func (r *Registry[A]) Actors() []input.ActorID {
	return slices.Clone(r.order)
}

// Len returns the number of actors.
func (r *Registry[A]) Len() int {
	return len(r.order)
}

type actorPair[A comparable] struct {
	id    input.ActorID
	state *input.ActionState[A]
	m     *input.InputMap[A]
}

// withState calls fn for every actor owning an ActionState, in spawn order.
func (r *Registry[A]) withState(fn func(input.ActorID, *input.ActionState[A]) error) error {
	for _, id := range r.order {
		if s, ok := r.states[id]; ok {
			if err := fn(id, s); err != nil {
				return err
			}
		}
	}
	return nil
}

// pairs returns every actor owning both an ActionState and an InputMap.
func (r *Registry[A]) pairs(buf []actorPair[A]) []actorPair[A] {
	buf = buf[:0]
	for _, id := range r.order {
		s, ok := r.states[id]
		if !ok {
			continue
		}
		m, ok := r.maps[id]
		if !ok {
			continue
		}
		buf = append(buf, actorPair[A]{id: id, state: s, m: m})
	}
	return buf
}
