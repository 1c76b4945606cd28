// Package storage provides SQLite-based persistence for match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Winner values stored for a match.
const (
	WinnerX    = "X"
	WinnerO    = "O"
	WinnerDraw = "draw"
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchEntry represents a single completed match.
type MatchEntry struct {
	ID        int64
	GameID    string // Game variant ("tictac", "tictac_2p")
	Mode      string // Mode at the time the match finished
	Winner    string // WinnerX, WinnerO or WinnerDraw
	Moves     int
	Duration  int // Match length in seconds
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game variant.
type GameStats struct {
	GameID     string
	Played     int
	XWins      int
	OWins      int
	Draws      int
	AvgMoves   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			winner TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id);
		CREATE INDEX IF NOT EXISTS idx_matches_recent ON matches(game_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordMatch persists a completed match.
// Returns the ID of the inserted record.
func (s *Store) RecordMatch(entry MatchEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches (game_id, mode, winner, moves, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.GameID, entry.Mode, entry.Winner, entry.Moves, entry.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// parseTimestamp converts a scanned created_at value; the sqlite driver
// may hand back either a time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// scanMatches reads match rows into entries.
func scanMatches(rows *sql.Rows) ([]MatchEntry, error) {
	var entries []MatchEntry
	for rows.Next() {
		var e MatchEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Mode, &e.Winner, &e.Moves, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RecentMatches retrieves the most recent matches across all variants.
func (s *Store) RecentMatches(limit int) ([]MatchEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, mode, winner, moves, duration_secs, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// MatchesByGame retrieves the most recent matches for one variant.
func (s *Store) MatchesByGame(gameID string, limit int) ([]MatchEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, mode, winner, moves, duration_secs, created_at
		 FROM matches
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// Stats retrieves aggregated statistics for a game variant.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(moves), 0)
		 FROM matches WHERE game_id = ?`,
		WinnerX, WinnerO, WinnerDraw, gameID,
	).Scan(&stats.Played, &stats.XWins, &stats.OWins, &stats.Draws, &stats.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM matches WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// ClearMatches deletes all matches for the given variant.
func (s *Store) ClearMatches(gameID string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
