package states

import (
	"fmt"
	"slices"
)

// RacePhase represents the lifecycle stage of a race
type RacePhase int

const (
	// PhasePending - agents placed, no tick simulated yet
	PhasePending RacePhase = iota

	// PhaseRunning - ticks are being simulated
	PhaseRunning

	// PhaseComplete - every agent finished or the tick ceiling was reached
	PhaseComplete

	// PhaseFailed - the race was aborted and produced no result
	PhaseFailed
)

// String returns the string representation of a RacePhase
func (p RacePhase) String() string {
	switch p {
	case PhasePending:
		return "Pending"
	case PhaseRunning:
		return "Running"
	case PhaseComplete:
		return "Complete"
	case PhaseFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if no further transitions are possible
func (p RacePhase) IsTerminal() bool {
	return p == PhaseComplete || p == PhaseFailed
}

// CanSimulate returns true if ticks may be simulated in this phase
func (p RacePhase) CanSimulate() bool {
	return p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p RacePhase) AllowedTransitions() []RacePhase {
	switch p {
	case PhasePending:
		return []RacePhase{PhaseRunning, PhaseFailed}
	case PhaseRunning:
		return []RacePhase{PhaseComplete, PhaseFailed}
	default:
		return nil
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p RacePhase) CanTransitionTo(target RacePhase) bool {
	return slices.Contains(p.AllowedTransitions(), target)
}

// ParsePhase converts a string to a RacePhase
func ParsePhase(s string) (RacePhase, error) {
	for _, p := range []RacePhase{PhasePending, PhaseRunning, PhaseComplete, PhaseFailed} {
		if p.String() == s {
			return p, nil
		}
	}
	return PhasePending, fmt.Errorf("unknown race phase %q", s)
}
