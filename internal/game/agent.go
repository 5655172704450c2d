package game

import (
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
)

// WaitMove is the play-by-play label for a tick an agent spent stuck
const WaitMove = "wait"

// HistoryEntry records one decision an agent made. TileBefore is the cell the
// agent occupied when it chose Action.
type HistoryEntry struct {
	StateKey   learning.StateKey
	Action     core.Action
	TileBefore core.Coordinate
	HitWall    bool
}

// Move is one play-by-play line: what the agent did and where it ended up
type Move struct {
	Action   string          `json:"action"`
	Position core.Coordinate `json:"position"`
}

// AgentState is the per-race state of one racer
type AgentState struct {
	ID           uint32
	Position     core.Coordinate
	Start        core.Coordinate
	Stuck        bool
	Finished     bool
	FinishTick   int
	StepsTaken   uint32
	CurrentSpeed uint32
	HitWall      bool

	History []HistoryEntry
	Moves   []Move

	// Cache holds the race-start Q-values of every state the agent referenced
	Cache *learning.QCache
}

func newAgentState(id uint32, start core.Coordinate, speed uint32, source learning.QSource) *AgentState {
	return &AgentState{
		ID:           id,
		Position:     start,
		Start:        start,
		CurrentSpeed: speed,
		FinishTick:   -1,
		History:      make([]HistoryEntry, 0, 32),
		Moves:        make([]Move, 0, 32),
		Cache:        learning.NewQCache(id, source),
	}
}

// Active reports whether the agent still takes part in ticks
func (a *AgentState) Active() bool {
	return !a.Finished
}

// Clone returns a deep copy that shares the Q cache
func (a *AgentState) Clone() AgentState {
	c := *a
	c.History = append([]HistoryEntry(nil), a.History...)
	c.Moves = append([]Move(nil), a.Moves...)
	return c
}
