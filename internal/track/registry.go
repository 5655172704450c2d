package track

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
)

// Provider resolves track ids to immutable tracks
type Provider interface {
	GetTrack(ctx context.Context, id uint64) (*core.Track, error)
}

// Registry is an in-memory Provider
type Registry struct {
	mu     sync.RWMutex
	tracks map[uint64]*core.Track
	logger zerolog.Logger
}

func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		tracks: make(map[uint64]*core.Track),
		logger: logger.With().Str("component", "track_registry").Logger(),
	}
}

// Add registers tracks, replacing any existing track with the same id
func (r *Registry) Add(tracks ...*core.Track) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range tracks {
		if _, exists := r.tracks[t.ID]; exists {
			r.logger.Warn().Uint64("track_id", t.ID).Msg("Replacing registered track")
		}
		r.tracks[t.ID] = t
		r.logger.Debug().
			Uint64("track_id", t.ID).
			Str("name", t.Name).
			Int("width", t.Width).
			Int("height", t.Height).
			Uint64("fastest_tick_time", t.FastestTickTime).
			Msg("Track registered")
	}
}

func (r *Registry) GetTrack(_ context.Context, id uint64) (*core.Track, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tracks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", core.ErrTrackNotFound, id)
	}
	return t, nil
}

// List returns all registered tracks ordered by id
func (r *Registry) List() []*core.Track {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*core.Track, 0, len(r.tracks))
	for _, t := range r.tracks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered tracks
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tracks)
}
