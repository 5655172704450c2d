package experience

import (
	"testing"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
	"github.com/mitchelldurbincs/GridRacingRL/internal/track"
	"github.com/stretchr/testify/assert"
)

func testTrack() *core.Track {
	return track.MustFromRows(1, "reward",
		"FFF",
		"..~",
		"...",
		"SSS",
	)
}

func at(x, y int) core.Coordinate { return core.Coordinate{X: x, Y: y} }

func TestRankReward_For(t *testing.T) {
	r := DefaultRewardTable().Rank
	assert.Equal(t, int32(100), r.For(1))
	assert.Equal(t, int32(50), r.For(2))
	assert.Equal(t, int32(25), r.For(3))
	assert.Equal(t, int32(0), r.For(4))
	assert.Equal(t, int32(0), r.For(0))
}

func TestCalculateReward(t *testing.T) {
	tr := testTrack()
	custom := DefaultRewardTable()
	custom.NoMove = -2
	custom.Rank.Other = 7

	tests := []struct {
		name     string
		table    RewardTable
		step     Step
		expected int32
	}{
		{
			name:     "closing in",
			table:    DefaultRewardTable(),
			step:     Step{Before: at(0, 3), After: at(0, 2)},
			expected: 1,
		},
		{
			name:     "backing away pays the extra distance term",
			table:    DefaultRewardTable(),
			step:     Step{Before: at(0, 2), After: at(0, 3)},
			expected: -4,
		},
		{
			name:     "standing still",
			table:    DefaultRewardTable(),
			step:     Step{Before: at(0, 2), After: at(0, 2)},
			expected: 0,
		},
		{
			name:     "wall hit",
			table:    DefaultRewardTable(),
			step:     Step{Before: at(0, 2), After: at(0, 2), HitWall: true},
			expected: -8,
		},
		{
			name:     "landing on sticky",
			table:    DefaultRewardTable(),
			step:     Step{Before: at(2, 2), After: at(2, 1)},
			expected: -4,
		},
		{
			name:     "first place on the fastest line",
			table:    DefaultRewardTable(),
			step:     Step{Before: at(0, 1), After: at(0, 0), Finished: true, Rank: 1, TotalActions: 3},
			expected: 201,
		},
		{
			name:     "second place bonus reaches early steps",
			table:    DefaultRewardTable(),
			step:     Step{Before: at(0, 3), After: at(0, 2), Finished: true, Rank: 2, TotalActions: 6},
			expected: 101,
		},
		{
			name:     "custom table",
			table:    custom,
			step:     Step{Before: at(1, 2), After: at(1, 2), Finished: true, Rank: 5, TotalActions: 4},
			expected: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateReward(tr, tt.table, tt.step))
		})
	}
}
