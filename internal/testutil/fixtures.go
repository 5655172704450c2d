package testutil

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
	"github.com/mitchelldurbincs/GridRacingRL/internal/track"
)

// OpenTrack creates a 5x5 track with a finish row at y=0 and a start row at y=4
func OpenTrack(id uint64) *core.Track {
	return track.MustFromRows(id, "open",
		"FFFFF",
		".....",
		".....",
		".....",
		"SSSSS",
	)
}

// SprintTrack creates a one-column track whose start sits directly below the finish
func SprintTrack(id uint64) *core.Track {
	return track.MustFromRows(id, "sprint",
		"F",
		"S",
	)
}

// ObstacleTrack creates a track with a wall, a sticky tile and a boost lane
func ObstacleTrack(id uint64) *core.Track {
	return track.MustFromRows(id, "obstacles",
		"FFFFF",
		".#.~.",
		"..^..",
		".....",
		"SSSSS",
	)
}

// CreateTestRegistry registers tracks in a fresh registry
func CreateTestRegistry(tracks ...*core.Track) *track.Registry {
	reg := track.NewRegistry(zerolog.Nop())
	reg.Add(tracks...)
	return reg
}
