package core

import "fmt"

// Action is a single grid move. The numeric values are part of the Q-table
// layout and must not be reordered.
type Action uint8

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
)

// NumActions is the size of the action space
const NumActions = 4

// AllActions lists every action in index order
var AllActions = [NumActions]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

var actionDeltas = [NumActions]Coordinate{
	ActionUp:    {X: 0, Y: -1},
	ActionDown:  {X: 0, Y: 1},
	ActionLeft:  {X: -1, Y: 0},
	ActionRight: {X: 1, Y: 0},
}

// Valid reports whether a is one of the four defined actions
func (a Action) Valid() bool {
	return a < NumActions
}

// Delta returns the unit offset for the action, or the zero coordinate for an invalid action
func (a Action) Delta() Coordinate {
	if !a.Valid() {
		return Coordinate{}
	}
	return actionDeltas[a]
}

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// ParseAction converts a lowercase action name to an Action
func ParseAction(s string) (Action, error) {
	for _, a := range AllActions {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAction, s)
}
