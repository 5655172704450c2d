package track

import "github.com/mitchelldurbincs/GridRacingRL/internal/game/core"

// Stats counts the tile kinds on a track
type Stats struct {
	Finish int `json:"finish"`
	Start  int `json:"start"`
	Boost  int `json:"boost"`
	Slow   int `json:"slow"`
	Sticky int `json:"sticky"`
	Wall   int `json:"wall"`
	Damage int `json:"damage"`
	Normal int `json:"normal"`
}

// ComputeStats classifies every tile once, checking the most specific kind first
func ComputeStats(t *core.Track) Stats {
	var s Stats
	for y := range t.Layout {
		for x := range t.Layout[y] {
			p := t.Layout[y][x].Properties
			switch {
			case p.BlocksMovement:
				s.Wall++
			case p.IsFinish:
				s.Finish++
			case p.IsStart:
				s.Start++
			case p.SkipNextTurn:
				s.Sticky++
			case p.IsBoost():
				s.Boost++
			case p.IsSlow():
				s.Slow++
			case p.Damage != 0:
				s.Damage++
			default:
				s.Normal++
			}
		}
	}
	return s
}
