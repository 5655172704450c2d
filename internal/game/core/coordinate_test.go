package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_IsValid(t *testing.T) {
	assert.True(t, Coordinate{0, 0}.IsValid(5, 5))
	assert.True(t, Coordinate{4, 4}.IsValid(5, 5))
	assert.False(t, Coordinate{-1, 0}.IsValid(5, 5))
	assert.False(t, Coordinate{0, 5}.IsValid(5, 5))
}

func TestCoordinate_DistanceSquared(t *testing.T) {
	assert.Equal(t, 0, Coordinate{2, 2}.DistanceSquared(Coordinate{2, 2}))
	assert.Equal(t, 25, Coordinate{0, 0}.DistanceSquared(Coordinate{3, 4}))
	assert.Equal(t, 25, Coordinate{3, 4}.DistanceSquared(Coordinate{0, 0}))
}

func TestCoordinate_NeighborsFollowActionOrder(t *testing.T) {
	c := Coordinate{2, 2}
	assert.Equal(t, []Coordinate{{2, 1}, {2, 3}, {1, 2}, {3, 2}}, c.Neighbors())
}

func TestCoordinate_Arithmetic(t *testing.T) {
	c := Coordinate{1, 2}
	assert.Equal(t, Coordinate{4, 6}, c.Add(Coordinate{3, 4}))
	assert.Equal(t, Coordinate{-2, -2}, c.Sub(Coordinate{3, 4}))
	assert.Equal(t, Coordinate{3, 6}, c.Scale(3))
	assert.True(t, c.Equal(Coordinate{1, 2}))
	assert.Equal(t, "(1,2)", c.String())
}
