package common

import (
	"fmt"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
)

// ValidateAgentIDs checks the agent count against [minAgents, maxAgents] and rejects repeated ids
func ValidateAgentIDs(ids []uint32, minAgents, maxAgents int) error {
	if len(ids) < minAgents || len(ids) > maxAgents {
		return fmt.Errorf("%w: got %d, want %d..%d", core.ErrInvalidAgentCount, len(ids), minAgents, maxAgents)
	}
	seen := make(map[uint32]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return core.WrapAgentError(id, core.ErrDuplicateAgent)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// IsValidCoordinate checks if the given coordinates are within the bounds of the track
func IsValidCoordinate(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}
