package track

import (
	"fmt"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
)

// Legend maps layout glyphs to tile properties
type Legend map[rune]core.TileProperties

// DefaultLegend is used for glyphs a track file does not override
var DefaultLegend = Legend{
	'#': core.WallTile(),
	'.': core.NormalTile(),
	'S': core.StartTile(),
	'F': core.FinishTile(),
	'~': core.StickyTile(),
	'^': core.BoostTile(core.DefaultBoostSpeed),
	'!': core.DamageTile(1),
	'+': core.HealingTile(1),
}

// FromRows parses an ASCII layout. Every row must have the same width.
// Glyphs found in legend take precedence over DefaultLegend.
func FromRows(id uint64, name string, rows []string, legend Legend) (*core.Track, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", core.ErrInvalidDimensions)
	}

	props := make([][]core.TileProperties, len(rows))
	for y, row := range rows {
		glyphs := []rune(row)
		props[y] = make([]core.TileProperties, len(glyphs))
		for x, g := range glyphs {
			p, ok := legend[g]
			if !ok {
				p, ok = DefaultLegend[g]
			}
			if !ok {
				return nil, fmt.Errorf("%w: unknown glyph %q at (%d,%d)", core.ErrInvalidTrack, g, x, y)
			}
			props[y][x] = p
		}
	}
	return Build(id, name, props)
}

// MustFromRows is FromRows for fixtures known to be valid
func MustFromRows(id uint64, name string, rows ...string) *core.Track {
	t, err := FromRows(id, name, rows, nil)
	if err != nil {
		panic(err)
	}
	return t
}

// Build validates a grid of tile properties and precomputes finish distances.
// A track needs a rectangular non-empty grid, at least one finish and one start
// tile, and every start tile must be able to reach a finish.
func Build(id uint64, name string, props [][]core.TileProperties) (*core.Track, error) {
	height := len(props)
	if height == 0 || len(props[0]) == 0 {
		return nil, core.ErrInvalidDimensions
	}
	width := len(props[0])

	layout := make([][]core.TrackTile, height)
	finishes, starts := 0, 0
	for y := range props {
		if len(props[y]) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", core.ErrInvalidDimensions, y, len(props[y]), width)
		}
		layout[y] = make([]core.TrackTile, width)
		for x, p := range props[y] {
			layout[y][x] = core.TrackTile{Properties: p, X: x, Y: y}
			if p.IsFinish {
				finishes++
			}
			if p.IsStart {
				starts++
			}
		}
	}
	if finishes == 0 {
		return nil, core.ErrNoFinishTile
	}
	if starts == 0 {
		return nil, core.ErrNoStartTile
	}

	t := &core.Track{
		ID:     id,
		Name:   name,
		Width:  width,
		Height: height,
		Layout: layout,
	}
	computeDistances(t)

	fastest := core.UnreachableDistance
	for _, s := range t.StartTiles() {
		tile := &t.Layout[s.Y][s.X]
		if !tile.Reachable() {
			return nil, fmt.Errorf("%w: start %s", core.ErrNoAccessiblePath, s)
		}
		if tile.ProgressTowardsFinish < fastest {
			fastest = tile.ProgressTowardsFinish
		}
	}
	t.FastestTickTime = uint64(fastest)
	return t, nil
}
