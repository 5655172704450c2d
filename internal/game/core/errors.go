package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAgentCount = errors.New("invalid agent count")
	ErrDuplicateAgent    = errors.New("duplicate agent id")
	ErrInvalidAction     = errors.New("invalid action")
	ErrRaceNotFound      = errors.New("race not found")
	ErrTrackNotFound     = errors.New("track not found")
	ErrRaceOver          = errors.New("race is over")

	ErrInvalidTrack      = errors.New("invalid track")
	ErrInvalidDimensions = fmt.Errorf("%w: invalid dimensions", ErrInvalidTrack)
	ErrNoFinishTile      = fmt.Errorf("%w: no finish tile", ErrInvalidTrack)
	ErrNoStartTile       = fmt.Errorf("%w: no start tile", ErrInvalidTrack)
	ErrNoAccessiblePath  = fmt.Errorf("%w: start tile cannot reach a finish tile", ErrInvalidTrack)
)

// RaceError attaches tick and phase context to an error raised while a race runs
type RaceError struct {
	RaceID string
	Tick   int
	Phase  string
	Err    error
}

func (e *RaceError) Error() string {
	return fmt.Sprintf("race %s tick %d (%s): %v", e.RaceID, e.Tick, e.Phase, e.Err)
}

func (e *RaceError) Unwrap() error {
	return e.Err
}

// WrapRaceError wraps err with race context. A nil err stays nil.
func WrapRaceError(raceID string, tick int, phase string, err error) error {
	if err == nil {
		return nil
	}
	return &RaceError{RaceID: raceID, Tick: tick, Phase: phase, Err: err}
}

// WrapAgentError prefixes err with the agent it concerns
func WrapAgentError(agentID uint32, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("agent %d: %w", agentID, err)
}
