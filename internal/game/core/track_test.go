package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrack(props [][]TileProperties) *Track {
	h := len(props)
	w := len(props[0])
	layout := make([][]TrackTile, h)
	for y := range props {
		layout[y] = make([]TrackTile, w)
		for x := range props[y] {
			layout[y][x] = TrackTile{Properties: props[y][x], X: x, Y: y}
		}
	}
	return &Track{Width: w, Height: h, Layout: layout}
}

func TestTrack_TileAt(t *testing.T) {
	track := newTestTrack([][]TileProperties{
		{FinishTile(), WallTile()},
		{StartTile(), NormalTile()},
	})

	tile, ok := track.TileAt(1, 0)
	require.True(t, ok)
	assert.True(t, tile.Properties.BlocksMovement)
	assert.Equal(t, Coordinate{1, 0}, tile.Coordinate())

	_, ok = track.TileAt(2, 0)
	assert.False(t, ok)
	_, ok = track.TileAt(0, -1)
	assert.False(t, ok)

	assert.False(t, track.Passable(Coordinate{1, 0}))
	assert.True(t, track.Passable(Coordinate{1, 1}))
	assert.False(t, track.Passable(Coordinate{5, 5}))
}

func TestTrack_StartAndFinishTilesRowMajor(t *testing.T) {
	track := newTestTrack([][]TileProperties{
		{FinishTile(), NormalTile(), FinishTile()},
		{StartTile(), StartTile(), NormalTile()},
	})

	assert.Equal(t, []Coordinate{{0, 1}, {1, 1}}, track.StartTiles())
	assert.Equal(t, []Coordinate{{0, 0}, {2, 0}}, track.FinishTiles())
}

func TestTileProperties_Kinds(t *testing.T) {
	assert.True(t, BoostTile(DefaultBoostSpeed).IsBoost())
	assert.False(t, NormalTile().IsBoost())
	assert.True(t, BoostTile(0).IsSlow())
	assert.True(t, StickyTile().SkipNextTurn)
	assert.Equal(t, int32(-4), HealingTile(4).Damage)
	assert.Equal(t, int32(2), DamageTile(2).Damage)
}
