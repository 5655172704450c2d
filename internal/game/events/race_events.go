package events

import (
	"time"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
)

// Event type constants
const (
	TypeRaceStarted     = "race.started"
	TypeRaceCompleted   = "race.completed"
	TypeTickCompleted   = "tick.completed"
	TypeAgentFinished   = "agent.finished"
	TypeWallHit         = "agent.wall_hit"
	TypeCollision       = "agent.collision"
	TypeStateTransition = "state.transition"
)

// RaceStartedEvent is published once agents are placed on their start tiles
type RaceStartedEvent struct {
	BaseEvent
	TrackID  uint64
	AgentIDs []uint32
	MaxTicks int
}

func NewRaceStartedEvent(raceID string, trackID uint64, agentIDs []uint32, maxTicks int) *RaceStartedEvent {
	return &RaceStartedEvent{
		BaseEvent: newBase(TypeRaceStarted, raceID, 0),
		TrackID:   trackID,
		AgentIDs:  agentIDs,
		MaxTicks:  maxTicks,
	}
}

// RaceCompletedEvent is published when the last tick has been simulated
type RaceCompletedEvent struct {
	BaseEvent
	WinnerIDs []uint32
	Duration  time.Duration
}

func NewRaceCompletedEvent(raceID string, ticks int, winners []uint32, duration time.Duration) *RaceCompletedEvent {
	return &RaceCompletedEvent{
		BaseEvent: newBase(TypeRaceCompleted, raceID, ticks),
		WinnerIDs: winners,
		Duration:  duration,
	}
}

// TickCompletedEvent summarises one simulation tick
type TickCompletedEvent struct {
	BaseEvent
	Active   int
	Moved    int
	Finished int
}

func NewTickCompletedEvent(raceID string, tick, active, moved, finished int) *TickCompletedEvent {
	return &TickCompletedEvent{
		BaseEvent: newBase(TypeTickCompleted, raceID, tick),
		Active:    active,
		Moved:     moved,
		Finished:  finished,
	}
}

// AgentFinishedEvent is published when an agent lands on a finish tile
type AgentFinishedEvent struct {
	BaseEvent
	AgentID uint32
	Steps   uint32
}

func NewAgentFinishedEvent(raceID string, agentID uint32, tick int, steps uint32) *AgentFinishedEvent {
	return &AgentFinishedEvent{
		BaseEvent: newBase(TypeAgentFinished, raceID, tick),
		AgentID:   agentID,
		Steps:     steps,
	}
}

// WallHitEvent is published when a move is bounced by a wall or the grid edge
type WallHitEvent struct {
	BaseEvent
	AgentID  uint32
	Intended core.Coordinate
	Landed   core.Coordinate
}

func NewWallHitEvent(raceID string, agentID uint32, tick int, intended, landed core.Coordinate) *WallHitEvent {
	return &WallHitEvent{
		BaseEvent: newBase(TypeWallHit, raceID, tick),
		AgentID:   agentID,
		Intended:  intended,
		Landed:    landed,
	}
}

// CollisionEvent is published when an agent's move is cancelled by a contested cell
type CollisionEvent struct {
	BaseEvent
	AgentID     uint32
	Destination core.Coordinate
}

func NewCollisionEvent(raceID string, agentID uint32, tick int, destination core.Coordinate) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent:   newBase(TypeCollision, raceID, tick),
		AgentID:     agentID,
		Destination: destination,
	}
}

// StateTransitionEvent is published when the race state machine changes phase
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

func NewStateTransitionEvent(raceID string, tick int, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, raceID, tick),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
