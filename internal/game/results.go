package game

import (
	"sort"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
)

// Ranking is an agent's 1-based final place
type Ranking struct {
	AgentID uint32 `json:"agent_id"`
	Rank    uint32 `json:"rank"`
}

// Outcome is everything a finished race produced
type Outcome struct {
	RaceID    string
	TrackID   uint64
	Ticks     int
	MaxTicks  int
	Rankings  []Ranking
	WinnerIDs []uint32
	Agents    []AgentState
}

// Rank returns the 1-based place of agentID, or 0 if it did not race
func (o *Outcome) Rank(agentID uint32) uint32 {
	for _, r := range o.Rankings {
		if r.AgentID == agentID {
			return r.Rank
		}
	}
	return 0
}

// Agent returns the final state of agentID
func (o *Outcome) Agent(agentID uint32) (AgentState, bool) {
	for _, a := range o.Agents {
		if a.ID == agentID {
			return a, true
		}
	}
	return AgentState{}, false
}

// RankAgents orders finished agents by steps taken, then unfinished agents by
// remaining distance to the finish. Both sorts are stable so entry order breaks ties.
func RankAgents(t *core.Track, agents []AgentState) (rankings []Ranking, winners []uint32) {
	var finished, unfinished []AgentState
	for _, a := range agents {
		if a.Finished {
			finished = append(finished, a)
		} else {
			unfinished = append(unfinished, a)
		}
	}

	sort.SliceStable(finished, func(i, j int) bool {
		return finished[i].StepsTaken < finished[j].StepsTaken
	})
	sort.SliceStable(unfinished, func(i, j int) bool {
		return remaining(t, unfinished[i].Position) < remaining(t, unfinished[j].Position)
	})

	rankings = make([]Ranking, 0, len(agents))
	winners = make([]uint32, 0, len(finished))
	for _, a := range finished {
		winners = append(winners, a.ID)
		rankings = append(rankings, Ranking{AgentID: a.ID, Rank: uint32(len(rankings) + 1)})
	}
	for _, a := range unfinished {
		rankings = append(rankings, Ranking{AgentID: a.ID, Rank: uint32(len(rankings) + 1)})
	}
	return rankings, winners
}

func remaining(t *core.Track, c core.Coordinate) uint16 {
	tile, ok := t.Tile(c)
	if !ok {
		return core.UnreachableDistance
	}
	return tile.ProgressTowardsFinish
}

// PlayByPlay is one agent's starting cell and every move it made
type PlayByPlay struct {
	AgentID uint32          `json:"agent_id"`
	Start   core.Coordinate `json:"start"`
	Moves   []Move          `json:"moves"`
}

// AgentSteps is the number of ticks an agent spent racing
type AgentSteps struct {
	AgentID    uint32 `json:"agent_id"`
	StepsTaken uint32 `json:"steps_taken"`
}

// RaceResult is the durable record of a race
type RaceResult struct {
	RaceID     string       `json:"race_id"`
	TrackID    uint64       `json:"track_id"`
	AgentIDs   []uint32     `json:"agent_ids"`
	WinnerIDs  []uint32     `json:"winner_ids"`
	Rankings   []Ranking    `json:"rankings"`
	PlayByPlay []PlayByPlay `json:"play_by_play"`
	Steps      []AgentSteps `json:"steps"`
	Ticks      int          `json:"ticks"`
	Trained    bool         `json:"trained"`
}

// Result converts the outcome into its durable record
func (o *Outcome) Result(trained bool) RaceResult {
	r := RaceResult{
		RaceID:     o.RaceID,
		TrackID:    o.TrackID,
		AgentIDs:   make([]uint32, len(o.Agents)),
		WinnerIDs:  append([]uint32{}, o.WinnerIDs...),
		Rankings:   append([]Ranking{}, o.Rankings...),
		PlayByPlay: make([]PlayByPlay, len(o.Agents)),
		Steps:      make([]AgentSteps, len(o.Agents)),
		Ticks:      o.Ticks,
		Trained:    trained,
	}
	for i, a := range o.Agents {
		r.AgentIDs[i] = a.ID
		r.PlayByPlay[i] = PlayByPlay{
			AgentID: a.ID,
			Start:   a.Start,
			Moves:   append([]Move{}, a.Moves...),
		}
		r.Steps[i] = AgentSteps{AgentID: a.ID, StepsTaken: a.StepsTaken}
	}
	return r
}
