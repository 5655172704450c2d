package storage

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
)

// MaxStatsPage bounds one ListTrainingStats page
const MaxStatsPage = 32

type raceKey struct {
	trackID uint64
	raceID  string
}

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	limits      Limits

	q        map[uint32]map[learning.StateKey]learning.QValues
	stats    map[uint32]map[uint64]learning.TrackTrainingStats
	races    map[raceKey]game.RaceResult
	byAgent  map[uint32]*Ring[raceKey]
	byTrack  map[uint64]*Ring[raceKey]
	sequence uint64
}

func NewMemoryStore(limits Limits) *MemoryStore {
	return &MemoryStore{limits: limits.withDefaults()}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.q = make(map[uint32]map[learning.StateKey]learning.QValues)
	s.stats = make(map[uint32]map[uint64]learning.TrackTrainingStats)
	s.races = make(map[raceKey]game.RaceResult)
	s.byAgent = make(map[uint32]*Ring[raceKey])
	s.byTrack = make(map[uint64]*Ring[raceKey])
	s.sequence = 0
	return nil
}

func (s *MemoryStore) GetQ(_ context.Context, agentID uint32, key learning.StateKey) (learning.QValues, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return learning.QValues{}, false, ErrNotInitialized
	}
	q, ok := s.q[agentID][key]
	return q, ok, nil
}

func (s *MemoryStore) ListQ(_ context.Context, agentID uint32) ([]learning.QEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	entries := make([]learning.QEntry, 0, len(s.q[agentID]))
	for k, v := range s.q[agentID] {
		entries = append(entries, learning.QEntry{State: k, Values: v})
	}
	sortEntries(entries)
	return entries, nil
}

func (s *MemoryStore) ResetQ(_ context.Context, agentID uint32) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return 0, ErrNotInitialized
	}
	n := len(s.q[agentID])
	delete(s.q, agentID)
	return n, nil
}

func (s *MemoryStore) GetTrainingStats(_ context.Context, agentID uint32, trackID uint64) (learning.TrackTrainingStats, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return learning.TrackTrainingStats{}, false, ErrNotInitialized
	}
	st, ok := s.stats[agentID][trackID]
	return st, ok, nil
}

func (s *MemoryStore) ListTrainingStats(_ context.Context, agentID uint32, startAfter *uint64, limit int) ([]learning.TrackTrainingStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	limit = pageLimit(limit)

	tracks := make([]uint64, 0, len(s.stats[agentID]))
	for id := range s.stats[agentID] {
		if startAfter == nil || id > *startAfter {
			tracks = append(tracks, id)
		}
	}
	sort.Slice(tracks, func(i, j int) bool { return tracks[i] < tracks[j] })
	if len(tracks) > limit {
		tracks = tracks[:limit]
	}

	out := make([]learning.TrackTrainingStats, len(tracks))
	for i, id := range tracks {
		out[i] = s.stats[agentID][id]
	}
	return out, nil
}

func (s *MemoryStore) GetRace(_ context.Context, trackID uint64, raceID string) (game.RaceResult, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return game.RaceResult{}, false, ErrNotInitialized
	}
	r, ok := s.races[raceKey{trackID, raceID}]
	return r, ok, nil
}

func (s *MemoryStore) RecentRacesByAgent(_ context.Context, agentID uint32, limit int) ([]game.RaceResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	return s.resolve(s.byAgent[agentID], limit), nil
}

func (s *MemoryStore) RecentRacesByTrack(_ context.Context, trackID uint64, limit int) ([]game.RaceResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	return s.resolve(s.byTrack[trackID], limit), nil
}

func (s *MemoryStore) resolve(ring *Ring[raceKey], limit int) []game.RaceResult {
	if ring == nil {
		return []game.RaceResult{}
	}
	keys := ring.Latest(limit)
	out := make([]game.RaceResult, 0, len(keys))
	for _, k := range keys {
		if r, ok := s.races[k]; ok {
			out = append(out, r)
		}
	}
	return out
}

func (s *MemoryStore) RaceSequence(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return 0, ErrNotInitialized
	}
	return s.sequence, nil
}

// Commit validates c in full before touching any state
func (s *MemoryStore) Commit(_ context.Context, c Commit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	if err := validateCommit(c); err != nil {
		return err
	}
	key := raceKey{c.Race.TrackID, c.Race.RaceID}
	if _, exists := s.races[key]; exists {
		return fmt.Errorf("race %s already stored for track %d", c.Race.RaceID, c.Race.TrackID)
	}

	for agentID, entries := range c.QUpdates {
		table, ok := s.q[agentID]
		if !ok {
			table = make(map[learning.StateKey]learning.QValues, len(entries))
			s.q[agentID] = table
		}
		for _, e := range entries {
			table[e.State] = e.Values
		}
	}

	for agentID, st := range c.Stats {
		perTrack, ok := s.stats[agentID]
		if !ok {
			perTrack = make(map[uint64]learning.TrackTrainingStats)
			s.stats[agentID] = perTrack
		}
		perTrack[st.TrackID] = st
	}

	s.races[key] = c.Race
	var evicted []raceKey
	for _, agentID := range c.Race.AgentIDs {
		ring, ok := s.byAgent[agentID]
		if !ok {
			ring = NewRing[raceKey](s.limits.RecentPerAgent)
			s.byAgent[agentID] = ring
		}
		if old, dropped := ring.Add(key); dropped {
			evicted = append(evicted, old)
		}
	}
	ring, ok := s.byTrack[key.trackID]
	if !ok {
		ring = NewRing[raceKey](s.limits.RecentPerTrack)
		s.byTrack[key.trackID] = ring
	}
	if old, dropped := ring.Add(key); dropped {
		evicted = append(evicted, old)
	}
	for _, old := range evicted {
		if !s.referenced(old) {
			delete(s.races, old)
		}
	}

	s.sequence++
	return nil
}

// referenced reports whether any recent-race ring still lists key
func (s *MemoryStore) referenced(key raceKey) bool {
	r, ok := s.races[key]
	if !ok {
		return false
	}
	if s.byTrack[key.trackID].Contains(key) {
		return true
	}
	for _, agentID := range r.AgentIDs {
		if s.byAgent[agentID].Contains(key) {
			return true
		}
	}
	return false
}

func validateCommit(c Commit) error {
	if c.Race.RaceID == "" {
		return fmt.Errorf("commit: race id is required")
	}
	for agentID, entries := range c.QUpdates {
		for _, e := range entries {
			for _, v := range e.Values {
				if v < learning.MinQ || v > learning.MaxQ {
					return fmt.Errorf("commit: agent %d state %s: q-value %d outside [%d, %d]",
						agentID, e.State.Short(), v, learning.MinQ, learning.MaxQ)
				}
			}
		}
	}
	for agentID, st := range c.Stats {
		if st.TrackID != c.Race.TrackID {
			return fmt.Errorf("commit: agent %d stats for track %d, race is on track %d", agentID, st.TrackID, c.Race.TrackID)
		}
	}
	return nil
}

func sortEntries(entries []learning.QEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].State[:], entries[j].State[:]) < 0
	})
}

func pageLimit(limit int) int {
	if limit <= 0 || limit > MaxStatsPage {
		return MaxStatsPage
	}
	return limit
}

func sortStats(stats []learning.TrackTrainingStats) {
	sort.Slice(stats, func(i, j int) bool { return stats[i].TrackID < stats[j].TrackID })
}
