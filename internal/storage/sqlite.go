// Package storage provides SQLite-based persistence for finished race runs.
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

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is one recorded race on a track.
type Run struct {
	ID        int64
	TrackID   string
	Elapsed   time.Duration // Race clock, countdown excluded
	Distance  float64       // World pixels driven
	Crashes   int
	CreatedAt time.Time
}

// TrackStats contains aggregated statistics for a track.
type TrackStats struct {
	TrackID       string
	Runs          int
	BestDistance  float64
	TotalDistance float64
	TotalCrashes  int
	LastRaced     time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			track_id TEXT NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			distance REAL NOT NULL,
			crashes INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_track_id ON runs(track_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(track_id, distance DESC);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.TrackID == "" {
		return 0, errors.New("storage: run has no track id")
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (track_id, elapsed_ms, distance, crashes) VALUES (?, ?, ?, ?)",
		run.TrackID, run.Elapsed.Milliseconds(), run.Distance, run.Crashes,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs for the given track.
// Results are ordered by distance descending, then fewest crashes.
func (s *Store) TopRuns(trackID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, track_id, elapsed_ms, distance, crashes, created_at
		 FROM runs
		 WHERE track_id = ?
		 ORDER BY distance DESC, crashes ASC, id ASC
		 LIMIT ?`,
		trackID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var elapsedMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.TrackID, &elapsedMS, &r.Distance, &r.Crashes, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRun returns the longest run on the track, or nil if none exist.
func (s *Store) BestRun(trackID string) (*Run, error) {
	runs, err := s.TopRuns(trackID, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// RunCount returns how many runs are recorded for the track.
func (s *Store) RunCount(trackID string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE track_id = ?", trackID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// ClearRuns deletes all runs for the given track.
func (s *Store) ClearRuns(trackID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE track_id = ?", trackID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// AllTrackStats retrieves statistics for every track that has been raced.
func (s *Store) AllTrackStats() (map[string]*TrackStats, error) {
	rows, err := s.db.Query(
		`SELECT track_id, COUNT(*), MAX(distance), SUM(distance), SUM(crashes), MAX(created_at)
		 FROM runs
		 GROUP BY track_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get track stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*TrackStats)
	for rows.Next() {
		var ts TrackStats
		var lastRaced any
		if err := rows.Scan(&ts.TrackID, &ts.Runs, &ts.BestDistance, &ts.TotalDistance, &ts.TotalCrashes, &lastRaced); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ts.LastRaced = parseTime(lastRaced)
		stats[ts.TrackID] = &ts
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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
