package states

import (
	"fmt"
	"time"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
)

// PendingState is the initial phase
type PendingState struct{}

func (s *PendingState) Phase() RacePhase { return PhasePending }

func (s *PendingState) Enter(ctx *RaceContext) error { return nil }

func (s *PendingState) Exit(ctx *RaceContext) error { return nil }

func (s *PendingState) Validate(ctx *RaceContext) error { return nil }

// RunningState is entered once before the first tick
type RunningState struct{}

func (s *RunningState) Phase() RacePhase { return PhaseRunning }

func (s *RunningState) Enter(ctx *RaceContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Debug().Int("agents", ctx.AgentCount).Msg("Race running")
	return nil
}

func (s *RunningState) Exit(ctx *RaceContext) error { return nil }

func (s *RunningState) Validate(ctx *RaceContext) error {
	if !ctx.IsReady() {
		return fmt.Errorf("%w: %d agents, want %d..%d", core.ErrInvalidAgentCount, ctx.AgentCount, ctx.MinAgents, ctx.MaxAgents)
	}
	return nil
}

// CompleteState is terminal and carries a result
type CompleteState struct{}

func (s *CompleteState) Phase() RacePhase { return PhaseComplete }

func (s *CompleteState) Enter(ctx *RaceContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Debug().
		Int("ticks", ctx.Tick).
		Dur("elapsed", ctx.Elapsed()).
		Msg("Race complete")
	return nil
}

func (s *CompleteState) Exit(ctx *RaceContext) error {
	return fmt.Errorf("%w: cannot leave %s", core.ErrRaceOver, PhaseComplete)
}

func (s *CompleteState) Validate(ctx *RaceContext) error { return nil }

// FailedState is terminal and carries no result
type FailedState struct{}

func (s *FailedState) Phase() RacePhase { return PhaseFailed }

func (s *FailedState) Enter(ctx *RaceContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Warn().
		Err(ctx.Error).
		Int("tick", ctx.Tick).
		Msg("Race failed")
	return nil
}

func (s *FailedState) Exit(ctx *RaceContext) error {
	return fmt.Errorf("%w: cannot leave %s", core.ErrRaceOver, PhaseFailed)
}

func (s *FailedState) Validate(ctx *RaceContext) error { return nil }
