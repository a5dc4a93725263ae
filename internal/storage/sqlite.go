// Package storage keeps the history of finished runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the CLI keeps the database unless told otherwise.
const DefaultPath = "~/.teddy/teddy.db"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished run. Labels are in collection order.
type Run struct {
	ID        string
	Language  string
	Score     int
	Reason    string
	Ticks     int
	Duration  time.Duration
	Labels    []string
	CreatedAt time.Time
}

// LabelCount is how often a label was collected across all runs.
type LabelCount struct {
	Label string
	Count int
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs       int
	HighScore  int
	AvgScore   float64
	Labels     int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if strings.HasPrefix(dbPath, "~") {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			language TEXT NOT NULL,
			score INTEGER NOT NULL,
			reason TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);

		CREATE TABLE IF NOT EXISTS run_labels (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			label TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
		);
		CREATE INDEX IF NOT EXISTS idx_run_labels_label ON run_labels(label);
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

// SaveRun records a finished run and its labels in one transaction.
// An empty ID is replaced by a fresh UUID. Returns the stored ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, language, score, reason, ticks, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Language, r.Score, r.Reason, r.Ticks, r.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	for i, label := range r.Labels {
		if _, err := tx.Exec(
			"INSERT INTO run_labels (run_id, position, label) VALUES (?, ?, ?)",
			r.ID, i, label,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save label %q: %w", label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return r.ID, nil
}

// TopRuns retrieves the best N runs, highest score first.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, language, score, reason, ticks, duration_ms, created_at
		 FROM runs
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns retrieves the latest N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, language, score, reason, ticks, duration_ms, created_at
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
}

// RunByID retrieves one run with its labels. Returns nil if not found.
func (s *Store) RunByID(id string) (*Run, error) {
	runs, err := s.queryRuns(
		`SELECT id, language, score, reason, ticks, duration_ms, created_at
		 FROM runs WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Language, &r.Score, &r.Reason, &r.Ticks, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	for i := range runs {
		labels, err := s.labels(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Labels = labels
	}
	return runs, nil
}

func (s *Store) labels(runID string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT label FROM run_labels WHERE run_id = ? ORDER BY position",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query labels: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("storage: cannot scan label: %w", err)
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

// HighScore returns the best score ever recorded, or 0 with no runs.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// LabelCounts returns the most collected labels, most frequent first.
// Ties are broken alphabetically.
func (s *Store) LabelCounts(limit int) ([]LabelCount, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT label, COUNT(*) AS n
		 FROM run_labels
		 GROUP BY label
		 ORDER BY n DESC, label ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query label counts: %w", err)
	}
	defer rows.Close()

	var counts []LabelCount
	for rows.Next() {
		var c LabelCount
		if err := rows.Scan(&c.Label, &c.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan label count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return counts, nil
}

// GetStats retrieves aggregated statistics over all runs.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	if err := s.db.QueryRow("SELECT COUNT(*) FROM run_labels").Scan(&stats.Labels); err != nil {
		return nil, fmt.Errorf("storage: cannot count labels: %w", err)
	}
	return stats, nil
}

// ClearRuns deletes the whole history.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM run_labels; DELETE FROM runs;")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and the textual DATETIME form.
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
