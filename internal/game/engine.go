package game

import (
	"context"
	"time"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/events"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/states"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
	"github.com/rs/zerolog"
)

// Engine simulates one race from placement to final ranking
type Engine struct {
	raceID       string
	track        *core.Track
	agents       []*AgentState
	policy       learning.PolicyConfig
	maxTicks     int
	finalEpsilon float64
	tick         int

	logger        zerolog.Logger
	eventBus      *events.EventBus
	stateMachine  *states.StateMachine
	turnProcessor *TurnProcessor
}

// NewEngine validates cfg, places agents and returns an engine in the Running phase
func NewEngine(ctx context.Context, cfg EngineConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Step simulates one tick. It returns core.ErrRaceOver once the race is complete.
func (e *Engine) Step(ctx context.Context) error {
	if err := e.checkContext(ctx); err != nil {
		return err
	}

	phase := e.stateMachine.CurrentPhase()
	if !phase.CanSimulate() {
		e.logger.Warn().
			Str("current_phase", phase.String()).
			Int("tick", e.tick).
			Msg("Attempted to step race in phase that cannot simulate")
		return core.WrapRaceError(e.raceID, e.tick, phase.String(), core.ErrRaceOver)
	}

	if err := e.turnProcessor.ProcessTick(ctx); err != nil {
		return err
	}
	e.tick++
	e.stateMachine.GetContext().Tick = e.tick

	if e.IsDone() {
		return e.complete()
	}
	return nil
}

// Run steps until every agent finishes or the tick ceiling is reached. Any
// error moves the race to Failed and no outcome is returned.
func (e *Engine) Run(ctx context.Context) (*Outcome, error) {
	if e.IsDone() && e.stateMachine.CurrentPhase() == states.PhaseRunning {
		if err := e.complete(); err != nil {
			return nil, err
		}
	}

	for e.stateMachine.CurrentPhase().CanSimulate() {
		if err := e.Step(ctx); err != nil {
			if failErr := e.stateMachine.Fail(err); failErr != nil {
				e.logger.Error().Err(failErr).Msg("Failed to mark race as failed")
			}
			return nil, err
		}
	}

	if e.stateMachine.CurrentPhase() != states.PhaseComplete {
		return nil, core.WrapRaceError(e.raceID, e.tick, e.stateMachine.CurrentPhase().String(), core.ErrRaceOver)
	}
	return e.Outcome(), nil
}

// IsDone reports whether the race has nothing left to simulate
func (e *Engine) IsDone() bool {
	if e.tick >= e.maxTicks {
		return true
	}
	for _, a := range e.agents {
		if a.Active() {
			return false
		}
	}
	return true
}

func (e *Engine) complete() error {
	if err := e.stateMachine.TransitionTo(states.PhaseComplete, "race finished"); err != nil {
		return err
	}

	_, winners := RankAgents(e.track, e.snapshot())
	e.eventBus.Publish(events.NewRaceCompletedEvent(e.raceID, e.tick, winners, e.stateMachine.GetContext().Elapsed()))

	e.logger.Debug().
		Int("ticks", e.tick).
		Interface("winners", winners).
		Msg("Race complete")
	return nil
}

// Outcome ranks the agents as they currently stand
func (e *Engine) Outcome() *Outcome {
	agents := e.snapshot()
	rankings, winners := RankAgents(e.track, agents)
	return &Outcome{
		RaceID:    e.raceID,
		TrackID:   e.track.ID,
		Ticks:     e.tick,
		MaxTicks:  e.maxTicks,
		Rankings:  rankings,
		WinnerIDs: winners,
		Agents:    agents,
	}
}

// Tick returns the number of ticks simulated so far
func (e *Engine) Tick() int {
	return e.tick
}

// Phase returns the race's lifecycle phase
func (e *Engine) Phase() states.RacePhase {
	return e.stateMachine.CurrentPhase()
}

// Agents returns copies of the agents' current state in entry order
func (e *Engine) Agents() []AgentState {
	return e.snapshot()
}

func (e *Engine) snapshot() []AgentState {
	out := make([]AgentState, len(e.agents))
	for i, a := range e.agents {
		out[i] = a.Clone()
	}
	return out
}

// otherPositions lists the positions of every unfinished agent except agent i
func (e *Engine) otherPositions(i int) []core.Coordinate {
	others := make([]core.Coordinate, 0, len(e.agents)-1)
	for j, a := range e.agents {
		if j != i && !a.Finished {
			others = append(others, a.Position)
		}
	}
	return others
}

func (e *Engine) checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		e.logger.Warn().
			Err(ctx.Err()).
			Int("tick", e.tick).
			Msg("Race cancelled or timed out")
		return core.WrapRaceError(e.raceID, e.tick, "step", ctx.Err())
	default:
		return nil
	}
}

// Duration returns wall-clock time spent simulating
func (e *Engine) Duration() time.Duration {
	return e.stateMachine.GetContext().Elapsed()
}
