package raceserver

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
	"github.com/mitchelldurbincs/GridRacingRL/internal/race"
	racingv1 "github.com/mitchelldurbincs/GridRacingRL/pkg/api/racing/v1"
)

// Server implements RaceService on top of a race.Service
type Server struct {
	racingv1.UnimplementedRaceServiceServer

	races  *race.Service
	logger zerolog.Logger
}

var _ racingv1.RaceServiceServer = (*Server)(nil)

func NewServer(races *race.Service, logger zerolog.Logger) *Server {
	return &Server{
		races:  races,
		logger: logger.With().Str("component", "race_server").Logger(),
	}
}

func (s *Server) SimulateRace(ctx context.Context, req *racingv1.SimulateRaceRequest) (*racingv1.SimulateRaceResponse, error) {
	s.logger.Debug().
		Uint64("track_id", req.GetTrackId()).
		Interface("agent_ids", req.GetAgentIds()).
		Bool("train", req.GetTrain()).
		Msg("Simulating race")

	res, err := s.races.SimulateRace(ctx, race.Request{
		TrackID:  req.GetTrackId(),
		AgentIDs: req.GetAgentIds(),
		Train:    req.GetTrain(),
		Policy:   convertPolicyFromProto(req.GetPolicy()),
		Rewards:  convertRewardsFromProto(req.GetRewards()),
	})
	if err != nil {
		return nil, toStatus(err, "simulate race on track %d", req.GetTrackId())
	}
	return &racingv1.SimulateRaceResponse{Result: convertRaceResult(*res)}, nil
}

func (s *Server) ResetQ(ctx context.Context, req *racingv1.ResetQRequest) (*racingv1.ResetQResponse, error) {
	removed, err := s.races.ResetQ(ctx, req.GetAgentId())
	if err != nil {
		return nil, toStatus(err, "reset q-table of agent %d", req.GetAgentId())
	}
	return &racingv1.ResetQResponse{AgentId: req.GetAgentId(), Removed: uint32(removed)}, nil
}

func (s *Server) GetRaceResult(ctx context.Context, req *racingv1.GetRaceResultRequest) (*racingv1.GetRaceResultResponse, error) {
	if req.GetRaceId() == "" {
		return nil, status.Error(codes.InvalidArgument, "race_id is required")
	}
	res, err := s.races.GetRaceResult(ctx, req.GetTrackId(), req.GetRaceId())
	if err != nil {
		return nil, toStatus(err, "get race %s", req.GetRaceId())
	}
	return &racingv1.GetRaceResultResponse{Result: convertRaceResult(*res)}, nil
}

func (s *Server) ListRecentRaces(ctx context.Context, req *racingv1.ListRecentRacesRequest) (*racingv1.ListRecentRacesResponse, error) {
	races, err := s.races.ListRecentRaces(ctx, race.RecentFilter{
		AgentID: req.AgentId,
		TrackID: req.TrackId,
		Limit:   int(req.GetLimit()),
	})
	if err != nil {
		return nil, toStatus(err, "list recent races")
	}
	return &racingv1.ListRecentRacesResponse{Races: convertRaceResults(races)}, nil
}

func (s *Server) GetQ(ctx context.Context, req *racingv1.GetQRequest) (*racingv1.GetQResponse, error) {
	state, err := convertStateKeyFromProto(req.GetState())
	if err != nil {
		return nil, err
	}
	entries, err := s.races.GetQ(ctx, req.GetAgentId(), state)
	if err != nil {
		return nil, toStatus(err, "get q-values of agent %d", req.GetAgentId())
	}
	return &racingv1.GetQResponse{AgentId: req.GetAgentId(), Entries: convertQEntries(entries)}, nil
}

func (s *Server) GetTrainingStats(ctx context.Context, req *racingv1.GetTrainingStatsRequest) (*racingv1.GetTrainingStatsResponse, error) {
	stats, err := s.races.GetTrainingStats(ctx, race.StatsQuery{
		AgentID:    req.GetAgentId(),
		TrackID:    req.TrackId,
		StartAfter: req.StartAfter,
		Limit:      int(req.GetLimit()),
	})
	if err != nil {
		return nil, toStatus(err, "get training stats of agent %d", req.GetAgentId())
	}
	return &racingv1.GetTrainingStatsResponse{AgentId: req.GetAgentId(), Stats: convertTrackTrainingStats(stats)}, nil
}

// toStatus maps domain errors onto gRPC codes
func toStatus(err error, format string, args ...any) error {
	code := codes.Internal
	switch {
	case errors.Is(err, core.ErrInvalidAgentCount),
		errors.Is(err, core.ErrDuplicateAgent),
		errors.Is(err, core.ErrInvalidAction),
		errors.Is(err, core.ErrInvalidTrack),
		errors.Is(err, race.ErrInvalidQuery):
		code = codes.InvalidArgument
	case errors.Is(err, core.ErrRaceNotFound),
		errors.Is(err, core.ErrTrackNotFound):
		code = codes.NotFound
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	}
	return status.Errorf(code, format+": %v", append(args, err)...)
}
