// Package storage provides SQLite-based persistence for session history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-targets/internal/replay"
	"github.com/vovakirdan/tui-targets/internal/session"
)

// DefaultHistoryLimit is how many finished sessions are kept when the
// caller does not configure a limit.
const DefaultHistoryLimit = 100

// Store manages the SQLite database connection for session history.
type Store struct {
	db    *sql.DB
	limit int
}

// HistoryEntry is one finished session as stored.
type HistoryEntry struct {
	ID                    string
	Code                  string
	Config                replay.Config
	TotalTime             time.Duration
	PausedTime            time.Duration
	TimeAdjustments       float64
	TargetsCollected      int
	CoreTargetsCollected  int
	BonusTargetsCollected int
	HazardTargetsHit      int
	TotalTargets          int
	FinishedAt            time.Time
}

// CodeStats aggregates every stored run of one replay code.
type CodeStats struct {
	Code       string
	Runs       int
	Best       time.Duration
	Average    time.Duration
	HazardsHit int
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

	store := &Store{db: db, limit: DefaultHistoryLimit}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			code TEXT NOT NULL,
			config_json TEXT NOT NULL,
			total_ms INTEGER NOT NULL,
			paused_ms INTEGER NOT NULL DEFAULT 0,
			time_adjustments REAL NOT NULL DEFAULT 0,
			targets_collected INTEGER NOT NULL DEFAULT 0,
			core_collected INTEGER NOT NULL DEFAULT 0,
			bonus_collected INTEGER NOT NULL DEFAULT 0,
			hazards_hit INTEGER NOT NULL DEFAULT 0,
			total_targets INTEGER NOT NULL DEFAULT 0,
			finished_at_ms INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_code ON sessions(code);
		CREATE INDEX IF NOT EXISTS idx_sessions_finished ON sessions(finished_at_ms DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SetHistoryLimit sets how many sessions SaveRecord keeps. Values below one
// fall back to DefaultHistoryLimit.
func (s *Store) SetHistoryLimit(limit int) {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	s.limit = limit
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRecord stores a finished session and trims history to the limit.
func (s *Store) SaveRecord(rec session.Record) error {
	cfgJSON, err := json.Marshal(rec.Config)
	if err != nil {
		return fmt.Errorf("storage: cannot encode config: %w", err)
	}

	finished := rec.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}

	_, err = s.db.Exec(
		`INSERT INTO sessions
		 (id, code, config_json, total_ms, paused_ms, time_adjustments,
		  targets_collected, core_collected, bonus_collected, hazards_hit, total_targets, finished_at_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Code,
		string(cfgJSON),
		rec.TotalTime.Milliseconds(),
		rec.Outcome.PausedTime.Milliseconds(),
		rec.Outcome.TimeAdjustments,
		rec.Outcome.TargetsCollected,
		rec.Outcome.CoreTargetsCollected,
		rec.Outcome.BonusTargetsCollected,
		rec.Outcome.HazardTargetsHit,
		rec.Outcome.TotalTargets,
		finished.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session: %w", err)
	}

	return s.Trim(s.limit)
}

// Ensure Store implements RecordSaver
var _ session.RecordSaver = (*Store)(nil)

// Trim deletes all but the newest keep sessions.
func (s *Store) Trim(keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := s.db.Exec(
		`DELETE FROM sessions WHERE seq NOT IN (
			SELECT seq FROM sessions ORDER BY finished_at_ms DESC, seq DESC LIMIT ?
		)`,
		keep,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot trim history: %w", err)
	}
	return nil
}

// Recent retrieves the newest sessions, most recent first.
func (s *Store) Recent(limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, code, config_json, total_ms, paused_ms, time_adjustments,
		        targets_collected, core_collected, bonus_collected, hazards_hit, total_targets, finished_at_ms
		 FROM sessions
		 ORDER BY finished_at_ms DESC, seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Count returns how many sessions are stored.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count sessions: %w", err)
	}
	return n, nil
}

// ClearHistory deletes every stored session.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// StatsForCode aggregates all stored runs of code. A code with no runs
// yields zero stats, not an error.
func (s *Store) StatsForCode(code string) (*CodeStats, error) {
	stats := &CodeStats{Code: code}

	var best, avg sql.NullFloat64
	var last sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), MIN(total_ms), AVG(total_ms), COALESCE(SUM(hazards_hit), 0), MAX(finished_at_ms)
		 FROM sessions WHERE code = ?`,
		code,
	).Scan(&stats.Runs, &best, &avg, &stats.HazardsHit, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get code stats: %w", err)
	}

	if best.Valid {
		stats.Best = time.Duration(best.Float64) * time.Millisecond
	}
	if avg.Valid {
		stats.Average = time.Duration(avg.Float64 * float64(time.Millisecond))
	}
	if last.Valid {
		stats.LastPlayed = time.UnixMilli(last.Int64)
	}

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (HistoryEntry, error) {
	var e HistoryEntry
	var cfgJSON string
	var totalMS, pausedMS, finishedMS int64

	if err := row.Scan(
		&e.ID,
		&e.Code,
		&cfgJSON,
		&totalMS,
		&pausedMS,
		&e.TimeAdjustments,
		&e.TargetsCollected,
		&e.CoreTargetsCollected,
		&e.BonusTargetsCollected,
		&e.HazardTargetsHit,
		&e.TotalTargets,
		&finishedMS,
	); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	if err := json.Unmarshal([]byte(cfgJSON), &e.Config); err != nil {
		return e, fmt.Errorf("storage: cannot decode config for %s: %w", e.ID, err)
	}
	e.TotalTime = time.Duration(totalMS) * time.Millisecond
	e.PausedTime = time.Duration(pausedMS) * time.Millisecond
	e.FinishedAt = time.UnixMilli(finishedMS)

	return e, nil
}

// ByID retrieves one stored session. It returns ErrNotFound when absent.
func (s *Store) ByID(id string) (*HistoryEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, code, config_json, total_ms, paused_ms, time_adjustments,
		        targets_collected, core_collected, bonus_collected, hazards_hit, total_targets, finished_at_ms
		 FROM sessions WHERE id = ?`,
		id,
	)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ErrNotFound is returned when a lookup matches no stored session.
var ErrNotFound = errors.New("storage: session not found")
