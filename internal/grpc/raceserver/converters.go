package raceserver

import (
	"github.com/mitchelldurbincs/GridRacingRL/internal/experience"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
	racingv1 "github.com/mitchelldurbincs/GridRacingRL/pkg/api/racing/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func convertCoordinate(c core.Coordinate) *racingv1.Coordinate {
	return &racingv1.Coordinate{X: int32(c.X), Y: int32(c.Y)}
}

// convertRaceResult converts the stored race record to its wire form
func convertRaceResult(r game.RaceResult) *racingv1.RaceResult {
	out := &racingv1.RaceResult{
		RaceId:     r.RaceID,
		TrackId:    r.TrackID,
		AgentIds:   r.AgentIDs,
		WinnerIds:  r.WinnerIDs,
		Rankings:   make([]*racingv1.Ranking, len(r.Rankings)),
		PlayByPlay: make([]*racingv1.PlayByPlay, len(r.PlayByPlay)),
		Steps:      make([]*racingv1.AgentSteps, len(r.Steps)),
		Ticks:      uint32(r.Ticks),
		Trained:    r.Trained,
	}
	for i, rk := range r.Rankings {
		out.Rankings[i] = &racingv1.Ranking{AgentId: rk.AgentID, Rank: rk.Rank}
	}
	for i, p := range r.PlayByPlay {
		moves := make([]*racingv1.Move, len(p.Moves))
		for j, m := range p.Moves {
			moves[j] = &racingv1.Move{Action: m.Action, Position: convertCoordinate(m.Position)}
		}
		out.PlayByPlay[i] = &racingv1.PlayByPlay{
			AgentId: p.AgentID,
			Start:   convertCoordinate(p.Start),
			Moves:   moves,
		}
	}
	for i, s := range r.Steps {
		out.Steps[i] = &racingv1.AgentSteps{AgentId: s.AgentID, StepsTaken: s.StepsTaken}
	}
	return out
}

func convertRaceResults(results []game.RaceResult) []*racingv1.RaceResult {
	out := make([]*racingv1.RaceResult, len(results))
	for i, r := range results {
		out[i] = convertRaceResult(r)
	}
	return out
}

func convertTrainingStats(s learning.TrainingStats) *racingv1.TrainingStats {
	return &racingv1.TrainingStats{
		Tally:   s.Tally,
		Wins:    s.Wins,
		WinRate: s.WinRate,
		Fastest: s.Fastest,
	}
}

func convertTrackTrainingStats(stats []learning.TrackTrainingStats) []*racingv1.TrackTrainingStats {
	out := make([]*racingv1.TrackTrainingStats, len(stats))
	for i, s := range stats {
		out[i] = &racingv1.TrackTrainingStats{
			TrackId:     s.TrackID,
			Solo:        convertTrainingStats(s.Solo),
			Competitive: convertTrainingStats(s.Competitive),
		}
	}
	return out
}

func convertQEntries(entries []learning.QEntry) []*racingv1.QEntry {
	out := make([]*racingv1.QEntry, len(entries))
	for i, e := range entries {
		out[i] = &racingv1.QEntry{
			State:  append([]byte(nil), e.State[:]...),
			Values: append([]int32(nil), e.Values[:]...),
		}
	}
	return out
}

// convertPolicyFromProto returns nil for an absent policy so the service default applies
func convertPolicyFromProto(p *racingv1.PolicyConfig) *learning.PolicyConfig {
	if p == nil {
		return nil
	}
	return &learning.PolicyConfig{
		Training:     p.GetTraining(),
		Epsilon:      p.GetEpsilon(),
		Temperature:  p.GetTemperature(),
		EpsilonDecay: p.GetEpsilonDecay(),
	}
}

// convertRewardsFromProto returns nil for an absent table so the service default applies
func convertRewardsFromProto(r *racingv1.RewardTable) *experience.RewardTable {
	if r == nil {
		return nil
	}
	rank := r.GetRank()
	return &experience.RewardTable{
		Distance: r.GetDistance(),
		Stuck:    r.GetStuck(),
		Wall:     r.GetWall(),
		NoMove:   r.GetNoMove(),
		Explore:  r.GetExplore(),
		Rank: experience.RankReward{
			First:  rank.GetFirst(),
			Second: rank.GetSecond(),
			Third:  rank.GetThird(),
			Other:  rank.GetOther(),
		},
	}
}

// convertStateKeyFromProto treats empty bytes as "every state"
func convertStateKeyFromProto(b []byte) (*learning.StateKey, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var key learning.StateKey
	if len(b) != len(key) {
		return nil, status.Errorf(codes.InvalidArgument, "state must be %d bytes, got %d", len(key), len(b))
	}
	copy(key[:], b)
	return &key, nil
}
