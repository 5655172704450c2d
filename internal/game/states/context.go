package states

import (
	"time"

	"github.com/rs/zerolog"
)

// RaceContext provides race-specific information to states for making decisions
type RaceContext struct {
	RaceID string
	Logger zerolog.Logger

	AgentCount int
	MinAgents  int
	MaxAgents  int

	// Tick is the last simulated tick
	Tick int

	StartTime time.Time
	EndTime   time.Time

	// Error holds the cause of a transition to PhaseFailed
	Error error
}

// NewRaceContext creates a new race context
func NewRaceContext(raceID string, agentCount, minAgents, maxAgents int, logger zerolog.Logger) *RaceContext {
	return &RaceContext{
		RaceID:     raceID,
		Logger:     logger.With().Str("race_id", raceID).Logger(),
		AgentCount: agentCount,
		MinAgents:  minAgents,
		MaxAgents:  maxAgents,
	}
}

// IsReady returns true if the agent count is within bounds
func (rc *RaceContext) IsReady() bool {
	return rc.AgentCount >= rc.MinAgents && rc.AgentCount <= rc.MaxAgents
}

// Elapsed returns wall-clock time spent running. It is zero before the race starts.
func (rc *RaceContext) Elapsed() time.Duration {
	if rc.StartTime.IsZero() {
		return 0
	}
	if rc.EndTime.IsZero() {
		return time.Since(rc.StartTime)
	}
	return rc.EndTime.Sub(rc.StartTime)
}
