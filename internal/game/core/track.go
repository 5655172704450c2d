package core

import "math"

// UnreachableDistance marks a tile from which no finish tile can be reached
const UnreachableDistance uint16 = math.MaxUint16

// TrackTile is one cell of a track layout
type TrackTile struct {
	Properties            TileProperties `json:"properties"`
	ProgressTowardsFinish uint16         `json:"progress_towards_finish"`
	X                     int            `json:"x"`
	Y                     int            `json:"y"`
}

// Coordinate returns the tile's position
func (t *TrackTile) Coordinate() Coordinate {
	return Coordinate{X: t.X, Y: t.Y}
}

// Reachable reports whether a finish tile can be reached from this tile
func (t *TrackTile) Reachable() bool {
	return t.ProgressTowardsFinish != UnreachableDistance
}

// Track is an immutable race grid. Layout is indexed [y][x].
type Track struct {
	ID              uint64        `json:"id"`
	Name            string        `json:"name"`
	Width           int           `json:"width"`
	Height          int           `json:"height"`
	Layout          [][]TrackTile `json:"layout"`
	FastestTickTime uint64        `json:"fastest_tick_time"`
}

// InBounds reports whether (x, y) lies inside the grid
func (t *Track) InBounds(x, y int) bool {
	return x >= 0 && x < t.Width && y >= 0 && y < t.Height
}

// TileAt returns the tile at (x, y), or false if the position is outside the grid
func (t *Track) TileAt(x, y int) (*TrackTile, bool) {
	if !t.InBounds(x, y) {
		return nil, false
	}
	return &t.Layout[y][x], true
}

// Tile is TileAt for a coordinate
func (t *Track) Tile(c Coordinate) (*TrackTile, bool) {
	return t.TileAt(c.X, c.Y)
}

// Passable reports whether an agent may occupy c
func (t *Track) Passable(c Coordinate) bool {
	tile, ok := t.Tile(c)
	return ok && !tile.Properties.BlocksMovement
}

// StartTiles returns start tile coordinates in row-major order
func (t *Track) StartTiles() []Coordinate {
	var starts []Coordinate
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			if t.Layout[y][x].Properties.IsStart {
				starts = append(starts, Coordinate{X: x, Y: y})
			}
		}
	}
	return starts
}

// FinishTiles returns finish tile coordinates in row-major order
func (t *Track) FinishTiles() []Coordinate {
	var finishes []Coordinate
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			if t.Layout[y][x].Properties.IsFinish {
				finishes = append(finishes, Coordinate{X: x, Y: y})
			}
		}
	}
	return finishes
}
