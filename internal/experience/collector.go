package experience

import (
	"github.com/mitchelldurbincs/GridRacingRL/internal/game"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
	"github.com/rs/zerolog"
)

// Collector turns a finished race into Q-learning transitions
type Collector struct {
	track  *core.Track
	table  RewardTable
	logger zerolog.Logger
}

// NewCollector creates a collector for races on t
func NewCollector(t *core.Track, table RewardTable, logger zerolog.Logger) *Collector {
	return &Collector{
		track:  t,
		table:  table,
		logger: logger.With().Str("component", "experience_collector").Logger(),
	}
}

// BuildTransitions pairs each history entry with its successor. The landing
// cell of a step is where the next step started, or the final position for the
// last one.
func (c *Collector) BuildTransitions(outcome *game.Outcome, agent game.AgentState) []learning.Transition {
	history := agent.History
	if len(history) == 0 {
		return nil
	}

	rank := outcome.Rank(agent.ID)
	transitions := make([]learning.Transition, len(history))
	for i, h := range history {
		after := agent.Position
		var next *learning.StateKey
		if i+1 < len(history) {
			after = history[i+1].TileBefore
			key := history[i+1].StateKey
			next = &key
		}

		transitions[i] = learning.Transition{
			State:  h.StateKey,
			Action: h.Action,
			Reward: CalculateReward(c.track, c.table, Step{
				Before:       h.TileBefore,
				After:        after,
				HitWall:      h.HitWall,
				Finished:     agent.Finished,
				Rank:         rank,
				TotalActions: len(history),
			}),
			Next: next,
		}
	}

	c.logger.Debug().
		Uint32("agent_id", agent.ID).
		Int("transitions", len(transitions)).
		Bool("finished", agent.Finished).
		Uint32("rank", rank).
		Msg("Built transitions")

	return transitions
}

// Collect builds transitions for every agent in the outcome, keyed by agent id
func (c *Collector) Collect(outcome *game.Outcome) map[uint32][]learning.Transition {
	out := make(map[uint32][]learning.Transition, len(outcome.Agents))
	for _, a := range outcome.Agents {
		out[a.ID] = c.BuildTransitions(outcome, a)
	}
	return out
}
