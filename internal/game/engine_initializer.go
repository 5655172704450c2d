package game

import (
	"context"
	"fmt"

	"github.com/mitchelldurbincs/GridRacingRL/internal/common"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/events"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/states"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
	"github.com/rs/zerolog"
)

// EngineConfig describes one race
type EngineConfig struct {
	RaceID   string
	Track    *core.Track
	AgentIDs []uint32
	Policy   learning.PolicyConfig

	// MaxTicks defaults to DefaultMaxTicks when not positive
	MaxTicks int
	// FinalEpsilon is where epsilon decay ends; defaults to learning.DefaultFinalEpsilon
	FinalEpsilon float64

	// QSource supplies persisted Q-values. Nil means every state is new.
	QSource learning.QSource

	Logger   zerolog.Logger
	EventBus *events.EventBus
}

// EngineInitializer validates a config and builds a ready-to-run engine
type EngineInitializer struct {
	config EngineConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg EngineConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "RaceEngine").Str("race_id", cfg.RaceID).Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// Initialize places agents on their start tiles and moves the race to Running
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled before start")
		return nil, ctx.Err()
	default:
	}

	if err := ei.validate(); err != nil {
		return nil, err
	}
	ei.setupDefaults()

	engine := ei.createEngine()
	ei.placeAgents(engine)

	if err := ei.initializeStateMachine(engine); err != nil {
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	engine.eventBus.Publish(events.NewRaceStartedEvent(
		ei.config.RaceID,
		ei.config.Track.ID,
		ei.config.AgentIDs,
		ei.config.MaxTicks,
	))

	ei.logger.Debug().
		Uint64("track_id", ei.config.Track.ID).
		Int("agents", len(ei.config.AgentIDs)).
		Int("max_ticks", ei.config.MaxTicks).
		Str("policy", ei.config.Policy.ForTick(0, ei.config.MaxTicks, ei.config.FinalEpsilon).String()).
		Msg("Race engine created")

	return engine, nil
}

func (ei *EngineInitializer) validate() error {
	if ei.config.Track == nil {
		return core.ErrTrackNotFound
	}
	if len(ei.config.Track.StartTiles()) == 0 {
		return core.ErrNoStartTile
	}
	return common.ValidateAgentIDs(ei.config.AgentIDs, MinAgents, MaxAgents)
}

// setupDefaults sets up default values for missing configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.MaxTicks <= 0 {
		ei.config.MaxTicks = DefaultMaxTicks
	}
	if ei.config.FinalEpsilon <= 0 {
		ei.config.FinalEpsilon = learning.DefaultFinalEpsilon
	}
	if ei.config.EventBus == nil {
		ei.config.EventBus = events.NewEventBus(ei.logger)
	}
}

func (ei *EngineInitializer) createEngine() *Engine {
	raceContext := states.NewRaceContext(ei.config.RaceID, len(ei.config.AgentIDs), MinAgents, MaxAgents, ei.logger)

	engine := &Engine{
		raceID:       ei.config.RaceID,
		track:        ei.config.Track,
		policy:       ei.config.Policy,
		maxTicks:     ei.config.MaxTicks,
		finalEpsilon: ei.config.FinalEpsilon,
		logger:       ei.logger,
		eventBus:     ei.config.EventBus,
		stateMachine: states.NewStateMachine(raceContext, ei.config.EventBus),
	}
	engine.turnProcessor = NewTurnProcessor(engine)
	return engine
}

// placeAgents deals start tiles out round-robin in agent order
func (ei *EngineInitializer) placeAgents(engine *Engine) {
	starts := ei.config.Track.StartTiles()
	engine.agents = make([]*AgentState, len(ei.config.AgentIDs))
	for i, id := range ei.config.AgentIDs {
		start := starts[i%len(starts)]
		engine.agents[i] = newAgentState(id, start, core.DefaultSpeed, ei.config.QSource)
	}
}

func (ei *EngineInitializer) initializeStateMachine(engine *Engine) error {
	if err := engine.stateMachine.TransitionTo(states.PhaseRunning, "Agents placed"); err != nil {
		ei.logger.Error().Err(err).Msg("Failed to transition to Running state")
		return err
	}
	return nil
}
