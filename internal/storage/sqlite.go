// Package storage provides SQLite-based persistence for level attempts.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for attempt persistence.
type Store struct {
	db *sql.DB
}

// AttemptEntry is one finished attempt: a death or a completion.
type AttemptEntry struct {
	ID        int64
	LevelID   string
	Attempt   int
	Percent   int
	Completed bool
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			attempt INTEGER NOT NULL,
			percent INTEGER NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_level_id ON attempts(level_id);
		CREATE INDEX IF NOT EXISTS idx_attempts_best ON attempts(level_id, percent DESC);
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

// SaveAttempt records a finished attempt for the given level.
// Returns the ID of the inserted record.
func (s *Store) SaveAttempt(levelID string, attempt, percent int, completed bool) (int64, error) {
	if percent < 0 || percent > 100 {
		return 0, fmt.Errorf("storage: percent %d out of range", percent)
	}
	result, err := s.db.Exec(
		"INSERT INTO attempts (level_id, attempt, percent, completed) VALUES (?, ?, ?, ?)",
		levelID, attempt, percent, completed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N attempts for the given level.
// Results are ordered by percent descending, then by fewest attempts.
func (s *Store) TopRuns(levelID string, limit int) ([]AttemptEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, attempt, percent, completed, created_at
		 FROM attempts
		 WHERE level_id = ?
		 ORDER BY percent DESC, attempt ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	return scanAttempts(rows)
}

// AllRuns retrieves every attempt for the given level, newest first.
func (s *Store) AllRuns(levelID string) ([]AttemptEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, level_id, attempt, percent, completed, created_at
		 FROM attempts
		 WHERE level_id = ?
		 ORDER BY id DESC`,
		levelID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	return scanAttempts(rows)
}

func scanAttempts(rows *sql.Rows) ([]AttemptEntry, error) {
	defer rows.Close()

	var entries []AttemptEntry
	for rows.Next() {
		var e AttemptEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Attempt, &e.Percent, &e.Completed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestPercent returns the highest percent reached on the given level.
// Returns 0 if the level was never played.
func (s *Store) BestPercent(levelID string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(percent) FROM attempts WHERE level_id = ?",
		levelID,
	).Scan(&best)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best percent: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return int(best.Int64), nil
}

// ClearAttempts deletes all attempts for the given level.
func (s *Store) ClearAttempts(levelID string) error {
	_, err := s.db.Exec("DELETE FROM attempts WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear attempts: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID     string
	Runs        int
	Completions int
	BestPercent int
	AvgPercent  float64
	LastPlayed  time.Time
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(completed), 0), COALESCE(MAX(percent), 0), COALESCE(AVG(percent), 0)
		 FROM attempts WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Runs, &stats.Completions, &stats.BestPercent, &stats.AvgPercent)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM attempts WHERE level_id = ? ORDER BY id DESC LIMIT 1`,
		levelID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllLevelStats retrieves statistics for every level that has been played.
func (s *Store) GetAllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), SUM(completed), MAX(percent), AVG(percent), MAX(created_at)
		 FROM attempts
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.LevelID, &ls.Runs, &ls.Completions, &ls.BestPercent, &ls.AvgPercent, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.LevelID] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
