package storage

import (
	"context"
	"errors"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
)

const (
	DefaultRecentPerAgent = 9
	DefaultRecentPerTrack = 32
)

var ErrNotInitialized = errors.New("store is not initialized")

// Limits caps the recent-race logs
type Limits struct {
	RecentPerAgent int
	RecentPerTrack int
}

func DefaultLimits() Limits {
	return Limits{
		RecentPerAgent: DefaultRecentPerAgent,
		RecentPerTrack: DefaultRecentPerTrack,
	}
}

func (l Limits) withDefaults() Limits {
	if l.RecentPerAgent <= 0 {
		l.RecentPerAgent = DefaultRecentPerAgent
	}
	if l.RecentPerTrack <= 0 {
		l.RecentPerTrack = DefaultRecentPerTrack
	}
	return l
}

// Commit is everything one race writes. It is applied all-or-nothing.
type Commit struct {
	Race game.RaceResult

	// QUpdates and Stats are empty for untrained races
	QUpdates map[uint32][]learning.QEntry
	Stats    map[uint32]learning.TrackTrainingStats
}

// Store persists the Q-table, training statistics and race history
type Store interface {
	Init(ctx context.Context) error

	GetQ(ctx context.Context, agentID uint32, key learning.StateKey) (learning.QValues, bool, error)
	ListQ(ctx context.Context, agentID uint32) ([]learning.QEntry, error)
	// ResetQ drops every Q entry of agentID and returns how many were removed
	ResetQ(ctx context.Context, agentID uint32) (int, error)

	GetTrainingStats(ctx context.Context, agentID uint32, trackID uint64) (learning.TrackTrainingStats, bool, error)
	// ListTrainingStats pages through an agent's tracks in ascending id order
	ListTrainingStats(ctx context.Context, agentID uint32, startAfter *uint64, limit int) ([]learning.TrackTrainingStats, error)

	GetRace(ctx context.Context, trackID uint64, raceID string) (game.RaceResult, bool, error)
	// RecentRacesByAgent and RecentRacesByTrack return newest first
	RecentRacesByAgent(ctx context.Context, agentID uint32, limit int) ([]game.RaceResult, error)
	RecentRacesByTrack(ctx context.Context, trackID uint64, limit int) ([]game.RaceResult, error)

	// RaceSequence is the number of races committed so far
	RaceSequence(ctx context.Context) (uint64, error)
	Commit(ctx context.Context, c Commit) error
}

var _ learning.QSource = Store(nil)
