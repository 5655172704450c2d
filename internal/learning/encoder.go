package learning

import (
	"golang.org/x/crypto/blake2b"

	"github.com/mitchelldurbincs/GridRacingRL/internal/common"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
)

// TileFlag classifies what an agent sees in one direction
type TileFlag uint32

const (
	FlagWall TileFlag = iota
	FlagSticky
	FlagBoost
	FlagFinish
	FlagNormal
)

// NearestDirection is the coarse bearing of the closest other agent
type NearestDirection uint32

const (
	NearestNone NearestDirection = iota
	NearestUp
	NearestDown
	NearestLeft
	NearestRight
)

const (
	occupiedBit    = 1 << 3
	nibbleBits     = 4
	nearestShift   = 16
	hashedByteSize = 3
)

// ClassifyTarget returns the flag for whatever lies at c
func ClassifyTarget(t *core.Track, c core.Coordinate) TileFlag {
	tile, ok := t.Tile(c)
	if !ok {
		return FlagWall
	}
	p := tile.Properties
	switch {
	case p.BlocksMovement:
		return FlagWall
	case p.SkipNextTurn:
		return FlagSticky
	case p.SpeedModifier > core.DefaultBoostSpeed:
		return FlagBoost
	case p.IsFinish:
		return FlagFinish
	default:
		return FlagNormal
	}
}

// Nearest finds the bearing of the closest coordinate in others by squared
// Euclidean distance. The first of several equally close agents wins.
func Nearest(pos core.Coordinate, others []core.Coordinate) NearestDirection {
	best := -1
	bestDist := 0
	for i, o := range others {
		d := pos.DistanceSquared(o)
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best == -1 {
		return NearestNone
	}

	dx := others[best].X - pos.X
	dy := others[best].Y - pos.Y
	if common.Abs(dx) > common.Abs(dy) {
		if dx > 0 {
			return NearestRight
		}
		return NearestLeft
	}
	if dy > 0 {
		return NearestDown
	}
	return NearestUp
}

// Perceive packs what an agent at pos moving at speed observes into a word:
// one nibble per action (tile flag plus an occupied bit) followed by the
// nearest-agent bearing at bit 16.
func Perceive(t *core.Track, pos core.Coordinate, speed uint32, others []core.Coordinate) uint32 {
	var packed uint32
	for i, a := range core.AllActions {
		target := pos.Add(a.Delta().Scale(int(speed)))
		nibble := uint32(ClassifyTarget(t, target))
		for _, o := range others {
			if o.Equal(target) {
				nibble |= occupiedBit
				break
			}
		}
		packed |= nibble << (nibbleBits * i)
	}
	packed |= uint32(Nearest(pos, others)) << nearestShift
	return packed
}

// HashPerception turns a packed perception word into a state key
func HashPerception(packed uint32) StateKey {
	var buf [hashedByteSize]byte
	for i := range buf {
		buf[i] = byte(packed >> (8 * i))
	}
	return blake2b.Sum256(buf[:])
}

// Encode computes the state key for an agent. It is pure.
func Encode(t *core.Track, pos core.Coordinate, speed uint32, others []core.Coordinate) StateKey {
	return HashPerception(Perceive(t, pos, speed, others))
}
