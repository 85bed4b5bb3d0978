package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// SessionRecord is one finished play session.
type SessionRecord struct {
	ID        int64
	GameID    string
	Outcome   string // won, lost or quit
	Score     int
	Destroyed int
	Fired     int
	Ticks     int
	Player    string // SSH user, empty for local play
	CreatedAt time.Time
}

// Accuracy returns hits per bullet fired.
func (r SessionRecord) Accuracy() float64 {
	if r.Fired == 0 {
		return 0
	}
	return float64(r.Destroyed) / float64(r.Fired)
}

// NewSessionRecord builds a record from a game's session report.
func NewSessionRecord(gameID, player string, rep core.SessionReport) SessionRecord {
	return SessionRecord{
		GameID:    gameID,
		Outcome:   rep.Outcome,
		Score:     rep.Score,
		Destroyed: rep.Destroyed,
		Fired:     rep.Fired,
		Ticks:     rep.Ticks,
		Player:    player,
	}
}

// SaveSession stores a finished session and returns its ID.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO sessions
		 (game_id, outcome, score, asteroids_destroyed, bullets_fired, duration_ticks, player)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.GameID, rec.Outcome, rec.Score, rec.Destroyed, rec.Fired, rec.Ticks, rec.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentSessions returns the latest sessions for gameID, newest first.
// An empty gameID lists every game. A non-positive limit means 20.
func (s *Store) RecentSessions(gameID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, outcome, score, asteroids_destroyed, bullets_fired,
		        duration_ticks, player, created_at
		 FROM sessions
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Outcome, &r.Score, &r.Destroyed,
			&r.Fired, &r.Ticks, &r.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}
