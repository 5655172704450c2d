package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game"
	"github.com/mitchelldurbincs/GridRacingRL/internal/learning"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps everything in one SQLite database. Track ids are stored as
// INTEGER by bit pattern, so ids above MaxInt64 round-trip unchanged.
type SQLiteStore struct {
	path   string
	limits Limits

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string, limits Limits) *SQLiteStore {
	return &SQLiteStore{path: path, limits: limits.withDefaults()}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	// One connection keeps ":memory:" databases shared and serialises writers
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) GetQ(ctx context.Context, agentID uint32, key learning.StateKey) (learning.QValues, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return learning.QValues{}, false, err
	}

	var q learning.QValues
	err = db.QueryRowContext(ctx, `
		SELECT v0, v1, v2, v3 FROM q_values WHERE agent_id = ? AND state_key = ?
	`, agentID, key[:]).Scan(&q[0], &q[1], &q[2], &q[3])
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return learning.QValues{}, false, nil
		}
		return learning.QValues{}, false, err
	}
	return q, true, nil
}

func (s *SQLiteStore) ListQ(ctx context.Context, agentID uint32) ([]learning.QEntry, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT state_key, v0, v1, v2, v3 FROM q_values WHERE agent_id = ? ORDER BY state_key
	`, agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]learning.QEntry, 0)
	for rows.Next() {
		var raw []byte
		var e learning.QEntry
		if err := rows.Scan(&raw, &e.Values[0], &e.Values[1], &e.Values[2], &e.Values[3]); err != nil {
			return nil, err
		}
		if len(raw) != len(e.State) {
			return nil, fmt.Errorf("agent %d: stored state key has %d bytes", agentID, len(raw))
		}
		copy(e.State[:], raw)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) ResetQ(ctx context.Context, agentID uint32) (int, error) {
	db, err := s.getDB()
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM q_values WHERE agent_id = ?`, agentID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *SQLiteStore) GetTrainingStats(ctx context.Context, agentID uint32, trackID uint64) (learning.TrackTrainingStats, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return learning.TrackTrainingStats{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `
		SELECT payload FROM training_stats WHERE agent_id = ? AND track_id = ?
	`, agentID, int64(trackID)).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return learning.TrackTrainingStats{}, false, nil
		}
		return learning.TrackTrainingStats{}, false, err
	}

	var st learning.TrackTrainingStats
	if err := json.Unmarshal(payload, &st); err != nil {
		return learning.TrackTrainingStats{}, false, fmt.Errorf("decode stats agent %d track %d: %w", agentID, trackID, err)
	}
	return st, true, nil
}

func (s *SQLiteStore) ListTrainingStats(ctx context.Context, agentID uint32, startAfter *uint64, limit int) ([]learning.TrackTrainingStats, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	// Ordering happens in Go because bit-cast ids do not sort as unsigned in SQL
	rows, err := db.QueryContext(ctx, `SELECT payload FROM training_stats WHERE agent_id = ?`, agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all := make([]learning.TrackTrainingStats, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var st learning.TrackTrainingStats
		if err := json.Unmarshal(payload, &st); err != nil {
			return nil, fmt.Errorf("decode stats agent %d: %w", agentID, err)
		}
		if startAfter == nil || st.TrackID > *startAfter {
			all = append(all, st)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sortStats(all)
	if limit = pageLimit(limit); len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *SQLiteStore) GetRace(ctx context.Context, trackID uint64, raceID string) (game.RaceResult, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return game.RaceResult{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `
		SELECT payload FROM races WHERE track_id = ? AND race_id = ?
	`, int64(trackID), raceID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return game.RaceResult{}, false, nil
		}
		return game.RaceResult{}, false, err
	}

	r, err := decodeRace(payload)
	if err != nil {
		return game.RaceResult{}, false, err
	}
	return r, true, nil
}

func (s *SQLiteStore) RecentRacesByAgent(ctx context.Context, agentID uint32, limit int) ([]game.RaceResult, error) {
	return s.recent(ctx, `
		SELECT r.payload FROM recent_agent_races a
		JOIN races r ON r.track_id = a.track_id AND r.race_id = a.race_id
		WHERE a.agent_id = ? ORDER BY a.seq DESC LIMIT ?
	`, agentID, recentLimit(limit, s.limits.RecentPerAgent))
}

func (s *SQLiteStore) RecentRacesByTrack(ctx context.Context, trackID uint64, limit int) ([]game.RaceResult, error) {
	return s.recent(ctx, `
		SELECT r.payload FROM recent_track_races t
		JOIN races r ON r.track_id = t.track_id AND r.race_id = t.race_id
		WHERE t.track_id = ? ORDER BY t.seq DESC LIMIT ?
	`, int64(trackID), recentLimit(limit, s.limits.RecentPerTrack))
}

func (s *SQLiteStore) recent(ctx context.Context, query string, args ...any) ([]game.RaceResult, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]game.RaceResult, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		r, err := decodeRace(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) RaceSequence(ctx context.Context) (uint64, error) {
	db, err := s.getDB()
	if err != nil {
		return 0, err
	}

	var seq int64
	err = db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'race_sequence'`).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return uint64(seq), err
}

// Commit writes the whole race in one transaction
func (s *SQLiteStore) Commit(ctx context.Context, c Commit) (err error) {
	db, err := s.getDB()
	if err != nil {
		return err
	}
	if err := validateCommit(c); err != nil {
		return err
	}

	payload, err := json.Marshal(c.Race)
	if err != nil {
		return fmt.Errorf("encode race %s: %w", c.Race.RaceID, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for agentID, entries := range c.QUpdates {
		for _, e := range entries {
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO q_values (agent_id, state_key, v0, v1, v2, v3)
				VALUES (?, ?, ?, ?, ?, ?)
				ON CONFLICT(agent_id, state_key) DO UPDATE SET
					v0 = excluded.v0,
					v1 = excluded.v1,
					v2 = excluded.v2,
					v3 = excluded.v3
			`, agentID, e.State[:], e.Values[0], e.Values[1], e.Values[2], e.Values[3]); err != nil {
				return fmt.Errorf("write q-values for agent %d: %w", agentID, err)
			}
		}
	}

	for agentID, st := range c.Stats {
		var statsPayload []byte
		if statsPayload, err = json.Marshal(st); err != nil {
			return fmt.Errorf("encode stats for agent %d: %w", agentID, err)
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO training_stats (agent_id, track_id, payload)
			VALUES (?, ?, ?)
			ON CONFLICT(agent_id, track_id) DO UPDATE SET payload = excluded.payload
		`, agentID, int64(st.TrackID), statsPayload); err != nil {
			return fmt.Errorf("write stats for agent %d: %w", agentID, err)
		}
	}

	var seq int64
	if err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(value), 0) FROM meta WHERE key = 'race_sequence'`).Scan(&seq); err != nil {
		return err
	}
	seq++

	trackID := int64(c.Race.TrackID)
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO races (track_id, race_id, seq, payload) VALUES (?, ?, ?, ?)
	`, trackID, c.Race.RaceID, seq, payload); err != nil {
		return fmt.Errorf("write race %s: %w", c.Race.RaceID, err)
	}

	for _, agentID := range c.Race.AgentIDs {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO recent_agent_races (agent_id, seq, track_id, race_id) VALUES (?, ?, ?, ?)
		`, agentID, seq, trackID, c.Race.RaceID); err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, `
			DELETE FROM recent_agent_races WHERE agent_id = ? AND seq NOT IN (
				SELECT seq FROM recent_agent_races WHERE agent_id = ? ORDER BY seq DESC LIMIT ?
			)
		`, agentID, agentID, s.limits.RecentPerAgent); err != nil {
			return err
		}
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO recent_track_races (track_id, seq, race_id) VALUES (?, ?, ?)
	`, trackID, seq, c.Race.RaceID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `
		DELETE FROM recent_track_races WHERE track_id = ? AND seq NOT IN (
			SELECT seq FROM recent_track_races WHERE track_id = ? ORDER BY seq DESC LIMIT ?
		)
	`, trackID, trackID, s.limits.RecentPerTrack); err != nil {
		return err
	}
	// Sequences are unique, so a race no recent list mentions is gone for good
	if _, err = tx.ExecContext(ctx, `
		DELETE FROM races
		WHERE seq NOT IN (SELECT seq FROM recent_track_races)
		AND seq NOT IN (SELECT seq FROM recent_agent_races)
	`); err != nil {
		return fmt.Errorf("evict races: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES ('race_sequence', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, seq); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS q_values (
			agent_id INTEGER NOT NULL,
			state_key BLOB NOT NULL,
			v0 INTEGER NOT NULL,
			v1 INTEGER NOT NULL,
			v2 INTEGER NOT NULL,
			v3 INTEGER NOT NULL,
			PRIMARY KEY (agent_id, state_key)
		);
		CREATE TABLE IF NOT EXISTS training_stats (
			agent_id INTEGER NOT NULL,
			track_id INTEGER NOT NULL,
			payload BLOB NOT NULL,
			PRIMARY KEY (agent_id, track_id)
		);
		CREATE TABLE IF NOT EXISTS races (
			track_id INTEGER NOT NULL,
			race_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			payload BLOB NOT NULL,
			PRIMARY KEY (track_id, race_id)
		);
		CREATE TABLE IF NOT EXISTS recent_agent_races (
			agent_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			track_id INTEGER NOT NULL,
			race_id TEXT NOT NULL,
			PRIMARY KEY (agent_id, seq)
		);
		CREATE TABLE IF NOT EXISTS recent_track_races (
			track_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			race_id TEXT NOT NULL,
			PRIMARY KEY (track_id, seq)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);
	`)
	return err
}

func decodeRace(payload []byte) (game.RaceResult, error) {
	var r game.RaceResult
	if err := json.Unmarshal(payload, &r); err != nil {
		return game.RaceResult{}, fmt.Errorf("decode race: %w", err)
	}
	return r, nil
}

func recentLimit(limit, capacity int) int {
	if limit <= 0 || limit > capacity {
		return capacity
	}
	return limit
}
