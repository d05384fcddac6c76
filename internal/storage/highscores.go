package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// HighScoreEntry is the best score stored under a key.
type HighScoreEntry struct {
	Key       string
	Score     int
	UpdatedAt time.Time
}

// LoadHighScore returns the best score stored under key, or 0 if none.
func (s *Store) LoadHighScore(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_scores WHERE key = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load high score %q: %w", key, err)
	}
	return score, nil
}

// SaveHighScore stores score under key unless a higher score is already there.
func (s *Store) SaveHighScore(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (key, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET
		   score = excluded.score,
		   updated_at = excluded.updated_at
		 WHERE excluded.score > high_scores.score`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score %q: %w", key, err)
	}
	return nil
}

// HighScores lists every stored key, best first.
func (s *Store) HighScores() ([]HighScoreEntry, error) {
	rows, err := s.db.Query("SELECT key, score, updated_at FROM high_scores ORDER BY score DESC, key ASC")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	var entries []HighScoreEntry
	for rows.Next() {
		var e HighScoreEntry
		var updatedAt any
		if err := rows.Scan(&e.Key, &e.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ResetHighScore deletes the best score stored under key.
func (s *Store) ResetHighScore(key string) error {
	if _, err := s.db.Exec("DELETE FROM high_scores WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot reset high score %q: %w", key, err)
	}
	return nil
}
