package learning

import "math"

// NeverFinished is the Fastest value of a record with no finish yet
const NeverFinished uint32 = math.MaxUint32

// TrainingStats aggregates an agent's trained races on one track
type TrainingStats struct {
	Tally   uint32 `json:"tally"`
	Wins    uint32 `json:"wins"`
	WinRate uint32 `json:"win_rate"`
	Fastest uint32 `json:"fastest"`
}

// NewTrainingStats returns an empty record
func NewTrainingStats() TrainingStats {
	return TrainingStats{Fastest: NeverFinished}
}

// RaceOutcome is what one agent achieved in one race
type RaceOutcome struct {
	Won        bool
	Finished   bool
	StepsTaken uint32
	MaxTicks   uint32
}

// Record folds one race into the aggregate. Unfinished races count as MaxTicks.
func (s TrainingStats) Record(o RaceOutcome) TrainingStats {
	s.Tally++
	if o.Won {
		s.Wins++
	}
	s.WinRate = uint32(uint64(s.Wins) * 100 / uint64(s.Tally))

	ticks := o.MaxTicks
	if o.Finished {
		ticks = o.StepsTaken
	}
	if ticks < s.Fastest {
		s.Fastest = ticks
	}
	return s
}

// TrackTrainingStats keeps solo and competitive races apart
type TrackTrainingStats struct {
	TrackID     uint64        `json:"track_id"`
	Solo        TrainingStats `json:"solo"`
	Competitive TrainingStats `json:"competitive"`
}

func NewTrackTrainingStats(trackID uint64) TrackTrainingStats {
	return TrackTrainingStats{
		TrackID:     trackID,
		Solo:        NewTrainingStats(),
		Competitive: NewTrainingStats(),
	}
}

// Record updates the solo record for single-agent races and the competitive one otherwise
func (s TrackTrainingStats) Record(numAgents int, o RaceOutcome) TrackTrainingStats {
	if numAgents == 1 {
		s.Solo = s.Solo.Record(o)
	} else {
		s.Competitive = s.Competitive.Record(o)
	}
	return s
}
