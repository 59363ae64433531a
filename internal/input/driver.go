package input

import "github.com/google/uuid"

// ActorID identifies an actor owning an ActionState. Holders of an ActorID do
// not own the actor; it is resolved through a lookup each time it is used.
type ActorID = uuid.UUID

// NewActorID returns a fresh random actor id.
func NewActorID() ActorID {
	return uuid.New()
}

// ActionStateDriver lets a secondary source, such as a UI button, press
// Action on the actor Target instead of going through device resolution.
type ActionStateDriver[A comparable] struct {
	Target ActorID
	Action A
}
