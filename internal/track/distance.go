package track

import "github.com/mitchelldurbincs/GridRacingRL/internal/game/core"

// computeDistances fills ProgressTowardsFinish with the 4-connected step count
// to the nearest finish tile. Blocking and cut-off tiles keep UnreachableDistance.
func computeDistances(t *core.Track) {
	queue := make([]core.Coordinate, 0, t.Width*t.Height)
	for y := range t.Layout {
		for x := range t.Layout[y] {
			tile := &t.Layout[y][x]
			if tile.Properties.IsFinish && !tile.Properties.BlocksMovement {
				tile.ProgressTowardsFinish = 0
				queue = append(queue, core.Coordinate{X: x, Y: y})
			} else {
				tile.ProgressTowardsFinish = core.UnreachableDistance
			}
		}
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		next := t.Layout[cur.Y][cur.X].ProgressTowardsFinish + 1
		for _, n := range cur.Neighbors() {
			tile, ok := t.Tile(n)
			if !ok || tile.Properties.BlocksMovement || tile.ProgressTowardsFinish != core.UnreachableDistance {
				continue
			}
			tile.ProgressTowardsFinish = next
			queue = append(queue, n)
		}
	}
}
