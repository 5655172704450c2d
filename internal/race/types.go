package race

import (
	"github.com/mitchelldurbincs/GridRacingRL/internal/experience"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
)

// Result is what a finished race reports and what the recent-race log stores
type Result = game.RaceResult

// Request describes one race to simulate
type Request struct {
	TrackID  uint64   `json:"track_id"`
	AgentIDs []uint32 `json:"agent_ids"`
	// Train persists Q-value updates and training stats after the race
	Train bool `json:"train"`

	// Policy and Rewards fall back to the service defaults when nil
	Policy  *learning.PolicyConfig  `json:"policy,omitempty"`
	Rewards *experience.RewardTable `json:"rewards,omitempty"`
}

// RecentFilter selects a recent-race log. Exactly one of AgentID and TrackID must be set.
type RecentFilter struct {
	AgentID *uint32 `json:"agent_id,omitempty"`
	TrackID *uint64 `json:"track_id,omitempty"`
	Limit   int     `json:"limit,omitempty"`
}

// StatsQuery selects training stats for one agent. With TrackID set a single
// record is returned, otherwise a page of tracks ordered by id.
type StatsQuery struct {
	AgentID    uint32  `json:"agent_id"`
	TrackID    *uint64 `json:"track_id,omitempty"`
	StartAfter *uint64 `json:"start_after,omitempty"`
	Limit      int     `json:"limit,omitempty"`
}

// Settings are the service-wide defaults applied to every request
type Settings struct {
	MaxTicks     int
	FinalEpsilon float64
	MinAgents    int
	MaxAgents    int

	Learning learning.Params
	Policy   learning.PolicyConfig
	Rewards  experience.RewardTable
}

func DefaultSettings() Settings {
	return Settings{
		MaxTicks:     game.DefaultMaxTicks,
		FinalEpsilon: learning.DefaultFinalEpsilon,
		MinAgents:    game.MinAgents,
		MaxAgents:    game.MaxAgents,
		Learning:     learning.DefaultParams(),
		Policy:       learning.DefaultPolicyConfig(),
		Rewards:      experience.DefaultRewardTable(),
	}
}
