package game

import (
	"fmt"
	"strings"
)

// Action is something a player can do in the demo
type Action int

const (
	ActionJump Action = iota
	ActionFire
	ActionLeft
	ActionRight
	ActionCrouch
)

var actionNames = [...]string{
	ActionJump:   "jump",
	ActionFire:   "fire",
	ActionLeft:   "left",
	ActionRight:  "right",
	ActionCrouch: "crouch",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// AllActions lists every action in declaration order
func AllActions() []Action {
	out := make([]Action, len(actionNames))
	for i := range actionNames {
		out[i] = Action(i)
	}
	return out
}

// ActionByName resolves a config action name, ignoring case
func ActionByName(name string) (Action, bool) {
	for i, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action(i), true
		}
	}
	return 0, false
}
