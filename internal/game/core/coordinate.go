package core

import "fmt"

// Coordinate is a cell on the track grid. Y grows downwards.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// IsValid reports whether c lies inside a width x height grid
func (c Coordinate) IsValid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

func (c Coordinate) DistanceSquared(other Coordinate) int {
	d := other.Sub(c)
	return d.X*d.X + d.Y*d.Y
}

// Neighbors returns the four orthogonal neighbours in action order
func (c Coordinate) Neighbors() []Coordinate {
	out := make([]Coordinate, 0, NumActions)
	for _, a := range AllActions {
		out = append(out, c.Add(a.Delta()))
	}
	return out
}

func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y}
}

func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{X: c.X - other.X, Y: c.Y - other.Y}
}

// Scale multiplies both components by n; a direction scaled by speed is a move
func (c Coordinate) Scale(n int) Coordinate {
	return Coordinate{X: c.X * n, Y: c.Y * n}
}

func (c Coordinate) Equal(other Coordinate) bool {
	return c == other
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
