package experience

import (
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
)

// RankReward is the terminal bonus by finishing place
type RankReward struct {
	First  int32 `json:"first" mapstructure:"first"`
	Second int32 `json:"second" mapstructure:"second"`
	Third  int32 `json:"third" mapstructure:"third"`
	Other  int32 `json:"other" mapstructure:"other"`
}

// For returns the bonus for a 1-based rank
func (r RankReward) For(rank uint32) int32 {
	switch rank {
	case 1:
		return r.First
	case 2:
		return r.Second
	case 3:
		return r.Third
	default:
		return r.Other
	}
}

// RewardTable holds configurable reward values. Distance multiplies changes in
// distance-to-finish, so a negative weight rewards closing in.
type RewardTable struct {
	Distance int32      `json:"distance" mapstructure:"distance"`
	Stuck    int32      `json:"stuck" mapstructure:"stuck"`
	Wall     int32      `json:"wall" mapstructure:"wall"`
	NoMove   int32      `json:"no_move" mapstructure:"no_move"`
	Explore  int32      `json:"explore" mapstructure:"explore"`
	Rank     RankReward `json:"rank" mapstructure:"rank"`
}

// DefaultRewardTable returns the default reward configuration
func DefaultRewardTable() RewardTable {
	return RewardTable{
		Distance: -1,
		Stuck:    -5,
		Wall:     -8,
		NoMove:   0,
		Explore:  6,
		Rank: RankReward{
			First:  100,
			Second: 50,
			Third:  25,
			Other:  0,
		},
	}
}

// Step is one recorded decision together with what the race made of it
type Step struct {
	Before  core.Coordinate
	After   core.Coordinate
	HitWall bool

	// Race-level facts about the agent that took the step
	Finished     bool
	Rank         uint32
	TotalActions int
}

// CalculateReward computes the reward for one step
func CalculateReward(t *core.Track, table RewardTable, step Step) int32 {
	reward := int32(0)

	// Terminal bonus applies to every step of an agent that finished
	if step.Finished {
		reward += table.Rank.For(step.Rank)
		reward += speedBonus(t.FastestTickTime, step.TotalActions)
	}

	if step.HitWall {
		reward += table.Wall
	}

	if tile, ok := t.Tile(step.After); ok && tile.Properties.SkipNextTurn {
		reward += table.Stuck
	}

	before := progress(t, step.Before)
	after := progress(t, step.After)
	delta := after - before
	if delta == 0 {
		reward += table.NoMove
	} else {
		reward += table.Distance * delta
		if delta > 0 {
			reward += table.Distance * after
		}
	}

	return reward
}

func speedBonus(fastest uint64, totalActions int) int32 {
	if totalActions <= 0 {
		return 0
	}
	return int32(100 * fastest / uint64(totalActions))
}

func progress(t *core.Track, c core.Coordinate) int32 {
	tile, ok := t.Tile(c)
	if !ok {
		return int32(core.UnreachableDistance)
	}
	return int32(tile.ProgressTowardsFinish)
}
