package experience

import (
	"testing"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_BuildTransitions(t *testing.T) {
	k1, k2, k3 := learning.StateKey{1}, learning.StateKey{2}, learning.StateKey{3}

	winner := game.AgentState{
		ID:       1,
		Position: at(0, 0),
		Finished: true,
		History: []game.HistoryEntry{
			{StateKey: k1, Action: core.ActionUp, TileBefore: at(0, 3)},
			{StateKey: k2, Action: core.ActionUp, TileBefore: at(0, 2)},
			{StateKey: k3, Action: core.ActionUp, TileBefore: at(0, 1)},
		},
	}
	stuck := game.AgentState{
		ID:       2,
		Position: at(1, 3),
		History: []game.HistoryEntry{
			{StateKey: k1, Action: core.ActionLeft, TileBefore: at(1, 3), HitWall: true},
		},
	}
	idle := game.AgentState{ID: 3, Position: at(2, 3)}

	outcome := &game.Outcome{
		Rankings: []game.Ranking{{AgentID: 1, Rank: 1}, {AgentID: 2, Rank: 2}, {AgentID: 3, Rank: 3}},
		Agents:   []game.AgentState{winner, stuck, idle},
	}

	c := NewCollector(testTrack(), DefaultRewardTable(), zerolog.Nop())

	transitions := c.BuildTransitions(outcome, winner)
	require.Len(t, transitions, 3)
	for _, tr := range transitions {
		assert.Equal(t, core.ActionUp, tr.Action)
		assert.Equal(t, int32(201), tr.Reward)
	}
	require.NotNil(t, transitions[0].Next)
	assert.Equal(t, k2, *transitions[0].Next)
	assert.Equal(t, k3, *transitions[1].Next)
	assert.Nil(t, transitions[2].Next)

	transitions = c.BuildTransitions(outcome, stuck)
	require.Len(t, transitions, 1)
	assert.Equal(t, int32(-8), transitions[0].Reward)
	assert.Nil(t, transitions[0].Next)

	assert.Nil(t, c.BuildTransitions(outcome, idle))

	all := c.Collect(outcome)
	assert.Len(t, all, 3)
	assert.Len(t, all[1], 3)
	assert.Empty(t, all[3])
}
