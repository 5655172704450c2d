package learning

import (
	"fmt"
	"math"
	"sort"

	"github.com/mitchelldurbincs/GridRacingRL/internal/common"
	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
)

const (
	DefaultAlpha = 0.1
	DefaultGamma = 0.9

	MinQ int32 = -100
	MaxQ int32 = 100
)

// Params are the learning-rate and discount of the tabular update
type Params struct {
	Alpha float64 `mapstructure:"alpha"`
	Gamma float64 `mapstructure:"gamma"`
}

func DefaultParams() Params {
	return Params{Alpha: DefaultAlpha, Gamma: DefaultGamma}
}

// Transition is one (state, action, reward, next state) tuple. Next is nil
// for the final recorded step of a trajectory.
type Transition struct {
	State  StateKey
	Action core.Action
	Reward int32
	Next   *StateKey
}

// QEntry is a state's final vector after a race
type QEntry struct {
	State  StateKey `json:"state"`
	Values QValues  `json:"values"`
}

// UpdateValue applies one step of the tabular update, rounding to the
// nearest integer and clamping into [MinQ, MaxQ].
func UpdateValue(p Params, current int32, reward int32, nextMax float64) int32 {
	target := float64(reward) + p.Gamma*nextMax
	updated := math.Round((1-p.Alpha)*float64(current) + p.Alpha*target)
	return int32(common.Clamp(updated, float64(MinQ), float64(MaxQ)))
}

// ApplyUpdates folds transitions into per-state vectors in the order given.
// Working vectors start from cache, the values each state had at race start;
// bootstrapping also reads from cache. Repeated visits compound.
// The returned entries are sorted by state key.
func ApplyUpdates(p Params, cache *QCache, transitions []Transition) ([]QEntry, error) {
	working := make(map[StateKey]*QValues)
	initial := func(key StateKey) QValues {
		if q, ok := cache.Lookup(key); ok {
			return q
		}
		return QValues{}
	}

	for i, tr := range transitions {
		if !tr.Action.Valid() {
			return nil, fmt.Errorf("transition %d: %w: %d", i, core.ErrInvalidAction, tr.Action)
		}

		q, ok := working[tr.State]
		if !ok {
			v := initial(tr.State)
			q = &v
			working[tr.State] = q
		}

		var nextMax float64
		if tr.Next != nil {
			nextMax = float64(MaxValue(initial(*tr.Next)))
		}
		q[tr.Action] = UpdateValue(p, q[tr.Action], tr.Reward, nextMax)
	}

	entries := make([]QEntry, 0, len(working))
	for key, q := range working {
		entries = append(entries, QEntry{State: key, Values: *q})
	}
	sort.Slice(entries, func(i, j int) bool { return keyLess(entries[i].State, entries[j].State) })
	return entries, nil
}
