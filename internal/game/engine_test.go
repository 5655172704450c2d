package game

import (
	"context"
	"errors"
	"testing"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/events"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/states"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
	"github.com/mitchelldurbincs/GridRacingRL/internal/testutil"
	"github.com/mitchelldurbincs/GridRacingRL/internal/track"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// preferSource answers every state with a fixed vector per agent
type preferSource map[uint32]learning.QValues

func (s preferSource) GetQ(_ context.Context, agentID uint32, _ learning.StateKey) (learning.QValues, bool, error) {
	q, ok := s[agentID]
	return q, ok, nil
}

type failingSource struct{ err error }

func (s failingSource) GetQ(context.Context, uint32, learning.StateKey) (learning.QValues, bool, error) {
	return learning.QValues{}, false, s.err
}

var (
	alwaysUp    = learning.QValues{10, 0, 0, 0}
	alwaysLeft  = learning.QValues{0, 0, 10, 0}
	alwaysRight = learning.QValues{0, 0, 0, 10}
)

func exploit() learning.PolicyConfig {
	return learning.PolicyConfig{Training: false}
}

func newTestEngine(t *testing.T, cfg EngineConfig) *Engine {
	t.Helper()
	if cfg.RaceID == "" {
		cfg.RaceID = "test-race"
	}
	cfg.Logger = zerolog.Nop()
	e, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)
	return e
}

func openFiveByFive() *core.Track {
	return testutil.OpenTrack(7)
}

func TestNewEngine(t *testing.T) {
	e := newTestEngine(t, EngineConfig{
		Track:    openFiveByFive(),
		AgentIDs: []uint32{4, 5, 6},
		Policy:   exploit(),
	})

	assert.Equal(t, states.PhaseRunning, e.Phase())
	assert.Equal(t, 0, e.Tick())
	assert.Equal(t, DefaultMaxTicks, e.maxTicks)

	agents := e.Agents()
	require.Len(t, agents, 3)
	assert.Equal(t, c(0, 4), agents[0].Position)
	assert.Equal(t, c(1, 4), agents[1].Position)
	assert.Equal(t, c(2, 4), agents[2].Position)
	for _, a := range agents {
		assert.Equal(t, core.DefaultSpeed, a.CurrentSpeed)
		assert.Equal(t, a.Position, a.Start)
	}
}

func TestNewEngine_StartTilesRoundRobin(t *testing.T) {
	tr := track.MustFromRows(1, "two starts",
		"FFF",
		"...",
		"S.S",
	)
	e := newTestEngine(t, EngineConfig{Track: tr, AgentIDs: []uint32{1, 2, 3}, Policy: exploit()})

	agents := e.Agents()
	assert.Equal(t, c(0, 2), agents[0].Position)
	assert.Equal(t, c(2, 2), agents[1].Position)
	assert.Equal(t, c(0, 2), agents[2].Position)
}

func TestNewEngine_StartSpeedIgnoresStartTile(t *testing.T) {
	tr := track.MustFromRows(1, "fast start",
		"F",
		".",
		"S",
	)
	tr.Layout[2][0].Properties.SpeedModifier = core.DefaultBoostSpeed
	e := newTestEngine(t, EngineConfig{Track: tr, AgentIDs: []uint32{1}, Policy: exploit()})

	assert.Equal(t, core.DefaultSpeed, e.Agents()[0].CurrentSpeed)
}

func TestNewEngine_Validation(t *testing.T) {
	tests := []struct {
		name     string
		agentIDs []uint32
		track    *core.Track
		expected error
	}{
		{"no agents", nil, openFiveByFive(), core.ErrInvalidAgentCount},
		{"too many agents", []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9}, openFiveByFive(), core.ErrInvalidAgentCount},
		{"duplicate agent", []uint32{1, 2, 1}, openFiveByFive(), core.ErrDuplicateAgent},
		{"missing track", []uint32{1}, nil, core.ErrTrackNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(context.Background(), EngineConfig{
				Track:    tt.track,
				AgentIDs: tt.agentIDs,
				Logger:   zerolog.Nop(),
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected), err.Error())
		})
	}
}

func TestEngine_StraightRun(t *testing.T) {
	e := newTestEngine(t, EngineConfig{
		Track:    openFiveByFive(),
		AgentIDs: []uint32{1, 2},
		Policy:   exploit(),
		QSource:  preferSource{1: alwaysUp, 2: alwaysUp},
	})

	outcome, err := e.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, states.PhaseComplete, e.Phase())
	assert.Equal(t, 4, outcome.Ticks)
	assert.Equal(t, []uint32{1, 2}, outcome.WinnerIDs)
	assert.Equal(t, []Ranking{{AgentID: 1, Rank: 1}, {AgentID: 2, Rank: 2}}, outcome.Rankings)

	a, ok := outcome.Agent(1)
	require.True(t, ok)
	assert.True(t, a.Finished)
	assert.Equal(t, uint32(4), a.StepsTaken)
	assert.Equal(t, 3, a.FinishTick)
	assert.Equal(t, c(0, 0), a.Position)
	require.Len(t, a.History, 4)
	assert.Equal(t, c(0, 4), a.History[0].TileBefore)
	assert.Equal(t, c(0, 1), a.History[3].TileBefore)
	for _, h := range a.History {
		assert.Equal(t, core.ActionUp, h.Action)
		assert.False(t, h.HitWall)
	}
	assert.Equal(t, []Move{
		{Action: "up", Position: c(0, 3)},
		{Action: "up", Position: c(0, 2)},
		{Action: "up", Position: c(0, 1)},
		{Action: "up", Position: c(0, 0)},
	}, a.Moves)
}

func TestEngine_CollisionKeepsBothInPlace(t *testing.T) {
	tr := track.MustFromRows(1, "funnel",
		"FFF",
		"...",
		"S.S",
	)
	bus := events.NewEventBus(zerolog.Nop())
	collisions := 0
	bus.SubscribeFunc(events.TypeCollision, func(events.Event) { collisions++ })

	e := newTestEngine(t, EngineConfig{
		Track:    tr,
		AgentIDs: []uint32{1, 2},
		Policy:   exploit(),
		MaxTicks: 5,
		QSource:  preferSource{1: alwaysRight, 2: alwaysLeft},
		EventBus: bus,
	})

	outcome, err := e.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, outcome.Ticks)
	assert.Empty(t, outcome.WinnerIDs)
	assert.Equal(t, 10, collisions)

	for _, a := range outcome.Agents {
		assert.False(t, a.Finished)
		assert.Equal(t, a.Start, a.Position)
		assert.Equal(t, uint32(5), a.StepsTaken)
		assert.Len(t, a.History, 5)
	}
	assert.Equal(t, []Ranking{{AgentID: 1, Rank: 1}, {AgentID: 2, Rank: 2}}, outcome.Rankings)
}

func TestEngine_StickyTileSkipsOneTick(t *testing.T) {
	tr := track.MustFromRows(1, "sticky",
		"F",
		"~",
		"S",
	)
	e := newTestEngine(t, EngineConfig{
		Track:    tr,
		AgentIDs: []uint32{1},
		Policy:   exploit(),
		QSource:  preferSource{1: alwaysUp},
	})

	outcome, err := e.Run(context.Background())
	require.NoError(t, err)

	a := outcome.Agents[0]
	assert.True(t, a.Finished)
	assert.Equal(t, 3, outcome.Ticks)
	assert.Equal(t, uint32(3), a.StepsTaken)
	assert.Equal(t, 2, a.FinishTick)
	assert.Len(t, a.History, 2)
	assert.Equal(t, []Move{
		{Action: "up", Position: c(0, 1)},
		{Action: WaitMove, Position: c(0, 1)},
		{Action: "up", Position: c(0, 0)},
	}, a.Moves)
}

func TestEngine_BoostTileRaisesSpeed(t *testing.T) {
	tr := track.MustFromRows(1, "boost",
		"F",
		".",
		".",
		".",
		"^",
		"S",
	)
	e := newTestEngine(t, EngineConfig{
		Track:    tr,
		AgentIDs: []uint32{1},
		Policy:   exploit(),
		QSource:  preferSource{1: alwaysUp},
	})

	outcome, err := e.Run(context.Background())
	require.NoError(t, err)

	a := outcome.Agents[0]
	assert.True(t, a.Finished)
	assert.Equal(t, []Move{
		{Action: "up", Position: c(0, 4)},
		{Action: "up", Position: c(0, 1)},
		{Action: "up", Position: c(0, 0)},
	}, a.Moves)
	assert.Equal(t, core.DefaultSpeed, a.CurrentSpeed)
}

func TestEngine_WallBounce(t *testing.T) {
	tr := track.MustFromRows(1, "walled",
		"F..",
		"#..",
		"S..",
	)
	bus := events.NewEventBus(zerolog.Nop())
	hits := 0
	bus.SubscribeFunc(events.TypeWallHit, func(events.Event) { hits++ })

	e := newTestEngine(t, EngineConfig{
		Track:    tr,
		AgentIDs: []uint32{1},
		Policy:   exploit(),
		MaxTicks: 3,
		QSource:  preferSource{1: alwaysUp},
		EventBus: bus,
	})

	outcome, err := e.Run(context.Background())
	require.NoError(t, err)

	a := outcome.Agents[0]
	assert.False(t, a.Finished)
	assert.Equal(t, c(0, 2), a.Position)
	assert.True(t, a.HitWall)
	assert.Equal(t, 3, hits)
	for _, h := range a.History {
		assert.True(t, h.HitWall)
	}
}

func TestProposeMove(t *testing.T) {
	tr := track.MustFromRows(1, "bounce",
		"FFFFF",
		".....",
		".#...",
		".....",
		"SSSSS",
	)

	tests := []struct {
		name     string
		origin   core.Coordinate
		action   core.Action
		speed    uint32
		expected core.Coordinate
		hitWall  bool
	}{
		{"open move", c(3, 4), core.ActionUp, 1, c(3, 3), false},
		{"boosted move", c(3, 4), core.ActionUp, 3, c(3, 1), false},
		{"boost jumps over a wall", c(1, 4), core.ActionUp, 3, c(1, 1), false},
		{"wall ahead bounces to origin", c(1, 3), core.ActionUp, 1, c(1, 3), true},
		{"edge bounces to origin", c(0, 4), core.ActionLeft, 1, c(0, 4), true},
		{"bounce lands short of the edge", c(2, 1), core.ActionUp, 2, c(2, 0), true},
		{"bounce still off grid stays", c(0, 1), core.ActionUp, 3, c(0, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest, hit := ProposeMove(tr, tt.origin, tt.action, tt.speed)
			assert.Equal(t, tt.expected, dest)
			assert.Equal(t, tt.hitWall, hit)
		})
	}
}

func TestEngine_NoTwoAgentsShareACell(t *testing.T) {
	e := newTestEngine(t, EngineConfig{
		Track:    openFiveByFive(),
		AgentIDs: []uint32{1, 2, 3, 4, 5},
		Policy:   learning.DefaultPolicyConfig(),
	})

	ctx := context.Background()
	for !e.IsDone() {
		require.NoError(t, e.Step(ctx))

		seen := make(map[core.Coordinate]uint32)
		for _, a := range e.Agents() {
			other, dup := seen[a.Position]
			assert.False(t, dup, "tick %d: agents %d and %d share %s", e.Tick(), other, a.ID, a.Position)
			seen[a.Position] = a.ID
		}
	}

	err := e.Step(ctx)
	assert.True(t, errors.Is(err, core.ErrRaceOver))
}

func TestEngine_AgentsNeverLandOnWalls(t *testing.T) {
	tr := testutil.ObstacleTrack(9)
	e := newTestEngine(t, EngineConfig{
		Track:    tr,
		AgentIDs: []uint32{1, 2, 3, 4, 5},
		Policy:   learning.DefaultPolicyConfig(),
	})

	ctx := context.Background()
	for !e.IsDone() {
		require.NoError(t, e.Step(ctx))
		for _, a := range e.Agents() {
			assert.True(t, tr.Passable(a.Position), "tick %d: agent %d on %s", e.Tick(), a.ID, a.Position)
		}
	}
}

func TestEngine_WinnersAreFinishedInStepOrder(t *testing.T) {
	e := newTestEngine(t, EngineConfig{
		Track:    openFiveByFive(),
		AgentIDs: []uint32{3, 1, 4, 2},
		Policy:   learning.PolicyConfig{Training: true, Epsilon: 0.5},
	})

	outcome, err := e.Run(context.Background())
	require.NoError(t, err)

	var prev uint32
	for i, id := range outcome.WinnerIDs {
		a, ok := outcome.Agent(id)
		require.True(t, ok)
		assert.True(t, a.Finished)
		assert.Equal(t, uint32(i+1), outcome.Rank(id))
		assert.GreaterOrEqual(t, a.StepsTaken, prev)
		prev = a.StepsTaken
	}
	assert.Len(t, outcome.Rankings, 4)
}

func TestEngine_Deterministic(t *testing.T) {
	policies := []learning.PolicyConfig{
		{Training: true, Epsilon: 0},
		learning.DefaultPolicyConfig(),
		{Training: true, Temperature: 2},
	}

	for _, policy := range policies {
		t.Run(policy.ForTick(1, DefaultMaxTicks, learning.DefaultFinalEpsilon).String(), func(t *testing.T) {
			run := func() *Outcome {
				e := newTestEngine(t, EngineConfig{
					Track:    openFiveByFive(),
					AgentIDs: []uint32{1, 2, 3},
					Policy:   policy,
				})
				o, err := e.Run(context.Background())
				require.NoError(t, err)
				return o
			}

			first, second := run(), run()
			assert.Equal(t, first.Ticks, second.Ticks)
			assert.Equal(t, first.Rankings, second.Rankings)
			assert.Equal(t, first.WinnerIDs, second.WinnerIDs)
			for i := range first.Agents {
				assert.Equal(t, first.Agents[i].Moves, second.Agents[i].Moves)
				assert.Equal(t, first.Agents[i].History, second.Agents[i].History)
				assert.Equal(t, first.Agents[i].StepsTaken, second.Agents[i].StepsTaken)
			}
		})
	}
}

func TestEngine_SingleAgentFiveByFiveRepeatable(t *testing.T) {
	var ticks []int
	for i := 0; i < 3; i++ {
		e := newTestEngine(t, EngineConfig{
			Track:    openFiveByFive(),
			AgentIDs: []uint32{1},
			Policy:   learning.PolicyConfig{Training: true, Epsilon: 0},
		})
		o, err := e.Run(context.Background())
		require.NoError(t, err)
		assert.LessOrEqual(t, o.Ticks, DefaultMaxTicks)
		ticks = append(ticks, o.Ticks)
	}
	assert.Equal(t, ticks[0], ticks[1])
	assert.Equal(t, ticks[0], ticks[2])
}

func TestEngine_CancelledContextFailsRace(t *testing.T) {
	e := newTestEngine(t, EngineConfig{
		Track:    openFiveByFive(),
		AgentIDs: []uint32{1},
		Policy:   exploit(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := e.Run(ctx)
	assert.Nil(t, outcome)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, states.PhaseFailed, e.Phase())
}

func TestEngine_SourceErrorFailsRace(t *testing.T) {
	boom := errors.New("store offline")
	e := newTestEngine(t, EngineConfig{
		Track:    openFiveByFive(),
		AgentIDs: []uint32{1},
		Policy:   exploit(),
		QSource:  failingSource{err: boom},
	})

	_, err := e.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	var raceErr *core.RaceError
	require.True(t, errors.As(err, &raceErr))
	assert.Equal(t, 0, raceErr.Tick)
	assert.Equal(t, states.PhaseFailed, e.Phase())
}

func TestEngine_PublishesLifecycleEvents(t *testing.T) {
	bus := events.NewEventBus(zerolog.Nop())
	var seen []string
	for _, typ := range []string{events.TypeRaceStarted, events.TypeAgentFinished, events.TypeRaceCompleted} {
		bus.SubscribeFunc(typ, func(ev events.Event) { seen = append(seen, ev.Type()) })
	}

	e := newTestEngine(t, EngineConfig{
		Track:    openFiveByFive(),
		AgentIDs: []uint32{1},
		Policy:   exploit(),
		QSource:  preferSource{1: alwaysUp},
		EventBus: bus,
	})
	_, err := e.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{events.TypeRaceStarted, events.TypeAgentFinished, events.TypeRaceCompleted}, seen)
}
