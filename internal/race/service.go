package race

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GridRacingRL/internal/common"
	"github.com/mitchelldurbincs/GridRacingRL/internal/experience"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/events"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
	"github.com/mitchelldurbincs/GridRacingRL/internal/storage"
	"github.com/mitchelldurbincs/GridRacingRL/internal/track"
)

// ErrInvalidQuery is returned for malformed read requests
var ErrInvalidQuery = errors.New("invalid query")

var raceNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:gridracing:race"))

// Service runs races against a track provider and persists their effects
type Service struct {
	mu       sync.Mutex
	tracks   track.Provider
	store    storage.Store
	settings Settings
	bus      *events.EventBus
	logger   zerolog.Logger
}

func NewService(tracks track.Provider, store storage.Store, settings Settings, logger zerolog.Logger) *Service {
	bus := events.NewEventBus(logger)
	bus.Subscribe(subscribers.NewLoggerSubscriber("race-events", logger, zerolog.DebugLevel))
	return &Service{
		tracks:   tracks,
		store:    store,
		settings: settings,
		bus:      bus,
		logger:   logger.With().Str("component", "race_service").Logger(),
	}
}

// Events exposes the bus every race publishes its lifecycle on
func (s *Service) Events() *events.EventBus {
	return s.bus
}

// RaceID derives the deterministic id of a race from its inputs and the store sequence
func RaceID(trackID uint64, agentIDs []uint32, sequence uint64) string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(trackID, 10))
	for _, id := range agentIDs {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	b.WriteByte('#')
	b.WriteString(strconv.FormatUint(sequence, 10))
	return uuid.NewSHA1(raceNamespace, []byte(b.String())).String()
}

// SimulateRace runs one race to completion and commits its result, and when
// training its Q-value and stats updates, in a single store write. Any error
// leaves the store untouched.
func (s *Service) SimulateRace(ctx context.Context, req Request) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	if err := common.ValidateAgentIDs(req.AgentIDs, s.settings.MinAgents, s.settings.MaxAgents); err != nil {
		return nil, err
	}

	t, err := s.tracks.GetTrack(ctx, req.TrackID)
	if err != nil {
		return nil, err
	}

	seq, err := s.store.RaceSequence(ctx)
	if err != nil {
		return nil, fmt.Errorf("read race sequence: %w", err)
	}
	raceID := RaceID(t.ID, req.AgentIDs, seq)

	policy := s.settings.Policy
	if req.Policy != nil {
		policy = *req.Policy
	}
	rewards := s.settings.Rewards
	if req.Rewards != nil {
		rewards = *req.Rewards
	}

	engine, err := game.NewEngine(ctx, game.EngineConfig{
		RaceID:       raceID,
		Track:        t,
		AgentIDs:     req.AgentIDs,
		Policy:       policy,
		MaxTicks:     s.settings.MaxTicks,
		FinalEpsilon: s.settings.FinalEpsilon,
		QSource:      s.store,
		EventBus:     s.bus,
		Logger:       s.logger,
	})
	if err != nil {
		return nil, err
	}

	outcome, err := engine.Run(ctx)
	if err != nil {
		return nil, err
	}

	result := outcome.Result(req.Train)
	commit := storage.Commit{Race: result}
	if req.Train {
		commit.QUpdates, commit.Stats, err = s.train(ctx, t, outcome, rewards)
		if err != nil {
			return nil, core.WrapRaceError(raceID, outcome.Ticks, engine.Phase().String(), err)
		}
	}

	if err := s.store.Commit(ctx, commit); err != nil {
		return nil, fmt.Errorf("commit race %s: %w", raceID, err)
	}

	s.logger.Info().
		Str("race_id", raceID).
		Uint64("track_id", t.ID).
		Int("agents", len(req.AgentIDs)).
		Int("ticks", outcome.Ticks).
		Int("winners", len(outcome.WinnerIDs)).
		Bool("train", req.Train).
		Dur("elapsed", time.Since(start)).
		Msg("Race simulated")

	return &result, nil
}

func (s *Service) train(ctx context.Context, t *core.Track, outcome *game.Outcome, rewards experience.RewardTable) (map[uint32][]learning.QEntry, map[uint32]learning.TrackTrainingStats, error) {
	transitions := experience.NewCollector(t, rewards, s.logger).Collect(outcome)

	updates := make(map[uint32][]learning.QEntry, len(outcome.Agents))
	stats := make(map[uint32]learning.TrackTrainingStats, len(outcome.Agents))
	for _, agent := range outcome.Agents {
		entries, err := learning.ApplyUpdates(s.settings.Learning, agent.Cache, transitions[agent.ID])
		if err != nil {
			return nil, nil, core.WrapAgentError(agent.ID, err)
		}
		if len(entries) > 0 {
			updates[agent.ID] = entries
		}

		current, ok, err := s.store.GetTrainingStats(ctx, agent.ID, t.ID)
		if err != nil {
			return nil, nil, core.WrapAgentError(agent.ID, fmt.Errorf("load training stats: %w", err))
		}
		if !ok {
			current = learning.NewTrackTrainingStats(t.ID)
		}
		stats[agent.ID] = current.Record(len(outcome.Agents), learning.RaceOutcome{
			Won:        slices.Contains(outcome.WinnerIDs, agent.ID),
			Finished:   agent.Finished,
			StepsTaken: agent.StepsTaken,
			MaxTicks:   uint32(outcome.MaxTicks),
		})
	}
	return updates, stats, nil
}

// ResetQ forgets every Q-value of an agent and returns how many states were removed
func (s *Service) ResetQ(ctx context.Context, agentID uint32) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.store.ResetQ(ctx, agentID)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Uint32("agent_id", agentID).Int("removed", removed).Msg("Q-table reset")
	return removed, nil
}

func (s *Service) GetRaceResult(ctx context.Context, trackID uint64, raceID string) (*Result, error) {
	r, ok, err := s.store.GetRace(ctx, trackID, raceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s on track %d", core.ErrRaceNotFound, raceID, trackID)
	}
	return &r, nil
}

// ListRecentRaces returns the newest races of an agent or a track, newest first
func (s *Service) ListRecentRaces(ctx context.Context, f RecentFilter) ([]Result, error) {
	switch {
	case f.AgentID != nil && f.TrackID != nil:
		return nil, fmt.Errorf("%w: agent and track filters are exclusive", ErrInvalidQuery)
	case f.AgentID != nil:
		return s.store.RecentRacesByAgent(ctx, *f.AgentID, f.Limit)
	case f.TrackID != nil:
		return s.store.RecentRacesByTrack(ctx, *f.TrackID, f.Limit)
	default:
		return nil, fmt.Errorf("%w: agent or track filter is required", ErrInvalidQuery)
	}
}

// GetQ returns one state's values, zero when never stored, or with a nil state
// every stored entry of the agent ordered by key.
func (s *Service) GetQ(ctx context.Context, agentID uint32, state *learning.StateKey) ([]learning.QEntry, error) {
	if state == nil {
		return s.store.ListQ(ctx, agentID)
	}
	q, _, err := s.store.GetQ(ctx, agentID, *state)
	if err != nil {
		return nil, err
	}
	return []learning.QEntry{{State: *state, Values: q}}, nil
}

// GetTrainingStats returns an empty record for a track the agent never trained on
func (s *Service) GetTrainingStats(ctx context.Context, q StatsQuery) ([]learning.TrackTrainingStats, error) {
	if q.TrackID == nil {
		return s.store.ListTrainingStats(ctx, q.AgentID, q.StartAfter, q.Limit)
	}
	st, ok, err := s.store.GetTrainingStats(ctx, q.AgentID, *q.TrackID)
	if err != nil {
		return nil, err
	}
	if !ok {
		st = learning.NewTrackTrainingStats(*q.TrackID)
	}
	return []learning.TrackTrainingStats{st}, nil
}
