package game

import "github.com/mitchelldurbincs/GridRacingRL/internal/game/core"

// ResolveCollisions commits proposed moves. origins[i] is where agent i stands
// and proposals[i] where it wants to go; an agent proposing its own origin is
// stationary but still claims the cell. Every mover whose destination is claimed
// more than once returns to its origin, and the check repeats until no mover
// shares a cell. The result depends only on claim counts, never on agent order.
func ResolveCollisions(origins, proposals []core.Coordinate) (committed []core.Coordinate, blocked []bool) {
	committed = make([]core.Coordinate, len(proposals))
	copy(committed, proposals)
	blocked = make([]bool, len(proposals))

	claims := make(map[core.Coordinate]int, len(committed))
	for {
		for k := range claims {
			delete(claims, k)
		}
		for _, c := range committed {
			claims[c]++
		}

		var reverted []int
		for i, c := range committed {
			if c != origins[i] && claims[c] > 1 {
				reverted = append(reverted, i)
			}
		}
		if len(reverted) == 0 {
			return committed, blocked
		}
		for _, i := range reverted {
			committed[i] = origins[i]
			blocked[i] = true
		}
	}
}
