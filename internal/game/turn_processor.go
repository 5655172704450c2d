package game

import (
	"context"
	"fmt"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/events"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
	"github.com/rs/zerolog"
)

// intent is what one agent decided during the selection phase
type intent struct {
	acting   bool
	key      learning.StateKey
	action   core.Action
	origin   core.Coordinate
	intended core.Coordinate
	proposal core.Coordinate
	hitWall  bool
}

// TurnProcessor runs the phases of a single tick
type TurnProcessor struct {
	engine *Engine
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(engine *Engine) *TurnProcessor {
	return &TurnProcessor{
		engine: engine,
		logger: engine.logger,
	}
}

// ProcessTick executes one tick: select, propose, resolve collisions, apply tile effects
func (tp *TurnProcessor) ProcessTick(ctx context.Context) error {
	e := tp.engine
	tickLogger := tp.logger.With().Int("tick", e.tick).Logger()

	for _, a := range e.agents {
		a.HitWall = false
	}

	intents, err := tp.selectActions(ctx)
	if err != nil {
		return core.WrapRaceError(e.raceID, e.tick, "select", err)
	}

	tp.proposeMoves(intents)

	origins := make([]core.Coordinate, len(intents))
	proposals := make([]core.Coordinate, len(intents))
	for i, in := range intents {
		origins[i] = in.origin
		proposals[i] = in.proposal
	}
	committed, blocked := ResolveCollisions(origins, proposals)

	moved, finished := tp.applyMoves(intents, committed, blocked)

	active := 0
	for _, a := range e.agents {
		if a.Active() {
			active++
		}
	}
	e.eventBus.Publish(events.NewTickCompletedEvent(e.raceID, e.tick, active, moved, finished))

	tickLogger.Trace().
		Int("active", active).
		Int("moved", moved).
		Int("finished", finished).
		Msg("Tick processed")
	return nil
}

// selectActions encodes every acting agent's perception against the pre-tick
// positions and picks its action. Stuck agents spend the tick clearing the flag.
func (tp *TurnProcessor) selectActions(ctx context.Context) ([]intent, error) {
	e := tp.engine
	intents := make([]intent, len(e.agents))
	policy := e.policy.ForTick(e.tick, e.maxTicks, e.finalEpsilon)

	for i, a := range e.agents {
		intents[i] = intent{origin: a.Position, proposal: a.Position}
		if a.Finished {
			continue
		}
		if a.Stuck {
			a.Stuck = false
			continue
		}

		key := learning.Encode(e.track, a.Position, a.CurrentSpeed, e.otherPositions(i))
		seed := learning.AgentSeed(e.tick, a.ID)
		q, err := a.Cache.Get(ctx, key, seed)
		if err != nil {
			return nil, core.WrapAgentError(a.ID, fmt.Errorf("load q-values: %w", err))
		}

		intents[i].acting = true
		intents[i].key = key
		intents[i].action = learning.Select(policy, q, seed)
	}
	return intents, nil
}

func (tp *TurnProcessor) proposeMoves(intents []intent) {
	e := tp.engine
	for i := range intents {
		in := &intents[i]
		if !in.acting {
			continue
		}
		speed := e.agents[i].CurrentSpeed
		in.intended = in.origin.Add(in.action.Delta().Scale(int(speed)))
		in.proposal, in.hitWall = ProposeMove(e.track, in.origin, in.action, speed)
	}
}

// ProposeMove moves speed tiles from origin in the action's direction. A
// destination off the grid or on a blocking tile bounces one tile back toward
// the origin and reports a wall hit; if that cell is also unusable the agent stays.
func ProposeMove(t *core.Track, origin core.Coordinate, action core.Action, speed uint32) (core.Coordinate, bool) {
	dir := action.Delta()
	dest := origin.Add(dir.Scale(int(speed)))
	if t.Passable(dest) {
		return dest, false
	}

	bounced := dest.Sub(dir)
	if !t.Passable(bounced) {
		return origin, true
	}
	return bounced, true
}

// applyMoves commits positions, applies tile effects and records history
func (tp *TurnProcessor) applyMoves(intents []intent, committed []core.Coordinate, blocked []bool) (moved, finished int) {
	e := tp.engine
	for i, a := range e.agents {
		if a.Finished {
			continue
		}
		a.StepsTaken++
		in := intents[i]

		if !in.acting {
			a.Moves = append(a.Moves, Move{Action: WaitMove, Position: a.Position})
			continue
		}

		a.History = append(a.History, HistoryEntry{
			StateKey:   in.key,
			Action:     in.action,
			TileBefore: in.origin,
			HitWall:    in.hitWall,
		})
		a.HitWall = in.hitWall

		if in.hitWall {
			e.eventBus.Publish(events.NewWallHitEvent(e.raceID, a.ID, e.tick, in.intended, in.proposal))
		}
		if blocked[i] {
			e.eventBus.Publish(events.NewCollisionEvent(e.raceID, a.ID, e.tick, in.proposal))
		}

		tp.applyTileEffects(a, committed[i])
		if a.Position != in.origin {
			moved++
		}
		a.Moves = append(a.Moves, Move{Action: in.action.String(), Position: a.Position})

		if a.Finished {
			finished++
			a.FinishTick = e.tick
			e.eventBus.Publish(events.NewAgentFinishedEvent(e.raceID, a.ID, e.tick, a.StepsTaken))
		}
	}
	return moved, finished
}

// applyTileEffects lands the agent on dest
func (tp *TurnProcessor) applyTileEffects(a *AgentState, dest core.Coordinate) {
	tile, ok := tp.engine.track.Tile(dest)
	if !ok {
		return
	}
	props := tile.Properties
	a.CurrentSpeed = props.SpeedModifier

	switch {
	case props.BlocksMovement:
		return
	case props.IsFinish:
		a.Finished = true
	case props.SkipNextTurn:
		a.Stuck = true
	}
	a.Position = dest
}
