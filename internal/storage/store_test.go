package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"
)

// Every backend must satisfy the same behaviour
func backends(t *testing.T, limits Limits) map[string]Store {
	t.Helper()
	ctx := context.Background()

	sqlite := NewSQLiteStore(filepath.Join(t.TempDir(), "race.db"), limits)
	stores := map[string]Store{
		"memory": NewMemoryStore(limits),
		"sqlite": sqlite,
	}
	for name, s := range stores {
		if err := s.Init(ctx); err != nil {
			t.Fatalf("init %s: %v", name, err)
		}
	}
	t.Cleanup(func() {
		_ = sqlite.Close()
	})
	return stores
}

func race(id string, trackID uint64, agents ...uint32) game.RaceResult {
	return game.RaceResult{
		RaceID:   id,
		TrackID:  trackID,
		AgentIDs: agents,
		Ticks:    3,
	}
}

func TestStoreQRoundTripAndReset(t *testing.T) {
	ctx := context.Background()
	k1, k2 := learning.StateKey{2}, learning.StateKey{1}

	for name, store := range backends(t, DefaultLimits()) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := store.GetQ(ctx, 7, k1); err != nil || ok {
				t.Fatalf("expected empty q-table, ok=%v err=%v", ok, err)
			}

			err := store.Commit(ctx, Commit{
				Race: race("r1", 1, 7),
				QUpdates: map[uint32][]learning.QEntry{
					7: {{State: k1, Values: learning.QValues{1, -2, 3, 100}}, {State: k2, Values: learning.QValues{-100, 0, 0, 0}}},
					8: {{State: k1, Values: learning.QValues{5, 5, 5, 5}}},
				},
			})
			if err != nil {
				t.Fatalf("commit: %v", err)
			}

			q, ok, err := store.GetQ(ctx, 7, k1)
			if err != nil || !ok {
				t.Fatalf("get q: ok=%v err=%v", ok, err)
			}
			if q != (learning.QValues{1, -2, 3, 100}) {
				t.Fatalf("unexpected q-values: %v", q)
			}

			entries, err := store.ListQ(ctx, 7)
			if err != nil {
				t.Fatalf("list q: %v", err)
			}
			if len(entries) != 2 || entries[0].State != k2 || entries[1].State != k1 {
				t.Fatalf("expected entries sorted by key, got %+v", entries)
			}

			removed, err := store.ResetQ(ctx, 7)
			if err != nil {
				t.Fatalf("reset: %v", err)
			}
			if removed != 2 {
				t.Fatalf("expected 2 removed, got %d", removed)
			}
			if _, ok, _ := store.GetQ(ctx, 7, k1); ok {
				t.Fatal("expected agent 7 entries gone after reset")
			}
			if _, ok, _ := store.GetQ(ctx, 8, k1); !ok {
				t.Fatal("reset must not touch other agents")
			}
		})
	}
}

func TestStoreRejectsOutOfRangeQ(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t, DefaultLimits()) {
		t.Run(name, func(t *testing.T) {
			err := store.Commit(ctx, Commit{
				Race: race("bad", 1, 1),
				QUpdates: map[uint32][]learning.QEntry{
					1: {{State: learning.StateKey{9}, Values: learning.QValues{101, 0, 0, 0}}},
				},
			})
			if err == nil {
				t.Fatal("expected out-of-range commit to fail")
			}

			if _, ok, _ := store.GetRace(ctx, 1, "bad"); ok {
				t.Fatal("failed commit must not store the race")
			}
			if seq, _ := store.RaceSequence(ctx); seq != 0 {
				t.Fatalf("failed commit must not advance the sequence, got %d", seq)
			}
		})
	}
}

func TestStoreTrainingStatsPaging(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t, DefaultLimits()) {
		t.Run(name, func(t *testing.T) {
			for _, trackID := range []uint64{30, 10, 20} {
				st := learning.NewTrackTrainingStats(trackID).Record(1, learning.RaceOutcome{Won: true, Finished: true, StepsTaken: 4, MaxTicks: 100})
				err := store.Commit(ctx, Commit{
					Race:  race(fmt.Sprintf("r-%d", trackID), trackID, 5),
					Stats: map[uint32]learning.TrackTrainingStats{5: st},
				})
				if err != nil {
					t.Fatalf("commit track %d: %v", trackID, err)
				}
			}

			st, ok, err := store.GetTrainingStats(ctx, 5, 20)
			if err != nil || !ok {
				t.Fatalf("get stats: ok=%v err=%v", ok, err)
			}
			if st.Solo.Tally != 1 || st.Solo.WinRate != 100 || st.Solo.Fastest != 4 {
				t.Fatalf("unexpected solo stats: %+v", st.Solo)
			}
			if st.Competitive.Tally != 0 {
				t.Fatalf("competitive record should be untouched: %+v", st.Competitive)
			}

			page, err := store.ListTrainingStats(ctx, 5, nil, 2)
			if err != nil {
				t.Fatalf("list stats: %v", err)
			}
			if len(page) != 2 || page[0].TrackID != 10 || page[1].TrackID != 20 {
				t.Fatalf("unexpected first page: %+v", page)
			}

			after := uint64(20)
			page, err = store.ListTrainingStats(ctx, 5, &after, 0)
			if err != nil {
				t.Fatalf("list stats after: %v", err)
			}
			if len(page) != 1 || page[0].TrackID != 30 {
				t.Fatalf("unexpected second page: %+v", page)
			}
		})
	}
}

func TestStoreRecentRacesAreCapped(t *testing.T) {
	ctx := context.Background()
	limits := Limits{RecentPerAgent: 2, RecentPerTrack: 3}

	for name, store := range backends(t, limits) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 4; i++ {
				if err := store.Commit(ctx, Commit{Race: race(fmt.Sprintf("r%d", i), 1, 1, 2)}); err != nil {
					t.Fatalf("commit r%d: %v", i, err)
				}
			}
			if err := store.Commit(ctx, Commit{Race: race("other", 2, 1)}); err != nil {
				t.Fatalf("commit other: %v", err)
			}

			seq, err := store.RaceSequence(ctx)
			if err != nil || seq != 5 {
				t.Fatalf("expected sequence 5, got %d (err=%v)", seq, err)
			}

			byAgent, err := store.RecentRacesByAgent(ctx, 1, 0)
			if err != nil {
				t.Fatalf("recent by agent: %v", err)
			}
			if ids := raceIDs(byAgent); fmt.Sprint(ids) != "[other r4]" {
				t.Fatalf("unexpected agent 1 races: %v", ids)
			}

			byAgent, _ = store.RecentRacesByAgent(ctx, 2, 1)
			if ids := raceIDs(byAgent); fmt.Sprint(ids) != "[r4]" {
				t.Fatalf("unexpected agent 2 races: %v", ids)
			}

			byTrack, err := store.RecentRacesByTrack(ctx, 1, 0)
			if err != nil {
				t.Fatalf("recent by track: %v", err)
			}
			if ids := raceIDs(byTrack); fmt.Sprint(ids) != "[r4 r3 r2]" {
				t.Fatalf("unexpected track races: %v", ids)
			}

			// r2 left both agent logs but the track log still lists it
			r, ok, err := store.GetRace(ctx, 1, "r2")
			if err != nil || !ok {
				t.Fatalf("get r2: ok=%v err=%v", ok, err)
			}
			if r.Ticks != 3 || len(r.AgentIDs) != 2 {
				t.Fatalf("unexpected race record: %+v", r)
			}

			if _, ok, err := store.GetRace(ctx, 1, "r1"); err != nil || ok {
				t.Fatalf("expected r1 to be evicted, ok=%v err=%v", ok, err)
			}

			if _, ok, _ := store.GetRace(ctx, 2, "r2"); ok {
				t.Fatal("race lookup must be scoped by track")
			}
		})
	}
}

func TestStoreEvictsRacesOutsideEveryLog(t *testing.T) {
	ctx := context.Background()
	total := DefaultRecentPerTrack + 8

	for name, store := range backends(t, DefaultLimits()) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < total; i++ {
				agent := uint32(i%4 + 1)
				if err := store.Commit(ctx, Commit{Race: race(fmt.Sprintf("r%d", i), 1, agent)}); err != nil {
					t.Fatalf("commit r%d: %v", i, err)
				}
			}

			if _, ok, err := store.GetRace(ctx, 1, "r0"); err != nil || ok {
				t.Fatalf("expected oldest race to be evicted, ok=%v err=%v", ok, err)
			}
			if _, ok, err := store.GetRace(ctx, 1, fmt.Sprintf("r%d", total-DefaultRecentPerTrack)); err != nil || !ok {
				t.Fatalf("expected oldest tracked race to remain, ok=%v err=%v", ok, err)
			}

			seq, err := store.RaceSequence(ctx)
			if err != nil || seq != uint64(total) {
				t.Fatalf("expected sequence %d, got %d (err=%v)", total, seq, err)
			}
		})
	}
}

func TestStoreKeepsRaceAnAgentStillLists(t *testing.T) {
	ctx := context.Background()
	limits := Limits{RecentPerAgent: 2, RecentPerTrack: 1}

	for name, store := range backends(t, limits) {
		t.Run(name, func(t *testing.T) {
			if err := store.Commit(ctx, Commit{Race: race("mine", 1, 7)}); err != nil {
				t.Fatalf("commit mine: %v", err)
			}
			if err := store.Commit(ctx, Commit{Race: race("theirs", 1, 8)}); err != nil {
				t.Fatalf("commit theirs: %v", err)
			}

			// Gone from the track log, still in agent 7's
			if _, ok, err := store.GetRace(ctx, 1, "mine"); err != nil || !ok {
				t.Fatalf("expected race to survive, ok=%v err=%v", ok, err)
			}
		})
	}
}

func TestStoreLargeTrackIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	big := uint64(1<<63 + 5)
	for name, store := range backends(t, DefaultLimits()) {
		t.Run(name, func(t *testing.T) {
			st := learning.NewTrackTrainingStats(big)
			if err := store.Commit(ctx, Commit{Race: race("big", big, 1), Stats: map[uint32]learning.TrackTrainingStats{1: st}}); err != nil {
				t.Fatalf("commit: %v", err)
			}
			if _, ok, err := store.GetRace(ctx, big, "big"); err != nil || !ok {
				t.Fatalf("get race: ok=%v err=%v", ok, err)
			}
			got, ok, err := store.GetTrainingStats(ctx, 1, big)
			if err != nil || !ok || got.TrackID != big {
				t.Fatalf("get stats: %+v ok=%v err=%v", got, ok, err)
			}
		})
	}
}

func TestStoreRequiresInit(t *testing.T) {
	ctx := context.Background()
	for name, store := range map[string]Store{
		"memory": NewMemoryStore(DefaultLimits()),
		"sqlite": NewSQLiteStore(filepath.Join(t.TempDir(), "x.db"), DefaultLimits()),
	} {
		if _, _, err := store.GetQ(ctx, 1, learning.StateKey{}); err == nil {
			t.Fatalf("%s: expected error before init", name)
		}
	}
}

func raceIDs(races []game.RaceResult) []string {
	ids := make([]string, len(races))
	for i, r := range races {
		ids[i] = r.RaceID
	}
	return ids
}
