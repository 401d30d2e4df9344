// Package history persists a log of completed batch runs. It sits
// outside internal/scheduling entirely: the engine stays a pure
// function, and history is written by the caller after Optimize
// returns, mirroring how the teacher's repository layer wraps its
// service layer rather than the other way around.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"
)

// Run is one recorded batch invocation.
type Run struct {
	ID                 string
	Fingerprint        string
	OrganizerTimezone  string
	ContactCount       int
	TotalSlotsAnalyzed int
	AverageQuality     float64
	FairnessScore      float64
	Algorithm          string
	WarningCodes       []string
	CreatedAt          time.Time
}

// Store persists and retrieves batch run records.
type Store struct {
	db     *sql.DB
	driver string
}

// New wraps an already-open *sql.DB. driver is "postgres" or "sqlite" —
// it selects the placeholder style; both drivers share the same schema,
// following the split the teacher's repository package draws between
// its two supported backends.
func New(db *sql.DB, driver string) *Store {
	return &Store{db: db, driver: driver}
}

// q rewrites PostgreSQL-style "$1" placeholders to SQLite's "?" when the
// store is backed by sqlite.
func q(driver, query string) string {
	if driver == "sqlite" {
		re := regexp.MustCompile(`\$\d+`)
		return re.ReplaceAllString(query, "?")
	}
	return query
}

// EnsureSchema creates the batch_runs table if it doesn't already exist.
// There is no migration directory here — one table, created idempotently
// on startup, same as the teacher's schema_migrations bootstrap step but
// without the versioned-file machinery this package doesn't need.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS batch_runs (
			id                   TEXT PRIMARY KEY,
			fingerprint          TEXT NOT NULL,
			organizer_timezone   TEXT NOT NULL,
			contact_count        INTEGER NOT NULL,
			total_slots_analyzed INTEGER NOT NULL,
			average_quality      REAL NOT NULL,
			fairness_score       REAL NOT NULL,
			algorithm            TEXT NOT NULL,
			warning_codes        TEXT NOT NULL,
			created_at           TIMESTAMP NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("history: create schema: %w", err)
	}
	return nil
}

// Record inserts one completed batch run.
func (s *Store) Record(ctx context.Context, run Run) error {
	query := q(s.driver, `
		INSERT INTO batch_runs
			(id, fingerprint, organizer_timezone, contact_count, total_slots_analyzed,
			 average_quality, fairness_score, algorithm, warning_codes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`)
	_, err := s.db.ExecContext(ctx, query,
		run.ID, run.Fingerprint, run.OrganizerTimezone, run.ContactCount, run.TotalSlotsAnalyzed,
		run.AverageQuality, run.FairnessScore, run.Algorithm, joinCodes(run.WarningCodes), run.CreatedAt)
	if err != nil {
		return fmt.Errorf("history: record run: %w", err)
	}
	return nil
}

// FindByFingerprint returns the most recent run sharing this
// fingerprint, if any, so a caller can short-circuit a duplicate
// request (same contacts, range, and config) instead of re-running the
// engine.
func (s *Store) FindByFingerprint(ctx context.Context, fingerprint string) (*Run, error) {
	query := q(s.driver, `
		SELECT id, fingerprint, organizer_timezone, contact_count, total_slots_analyzed,
		       average_quality, fairness_score, algorithm, warning_codes, created_at
		FROM batch_runs
		WHERE fingerprint = $1
		ORDER BY created_at DESC
		LIMIT 1
	`)
	row := s.db.QueryRowContext(ctx, query, fingerprint)

	var r Run
	var codes string
	err := row.Scan(&r.ID, &r.Fingerprint, &r.OrganizerTimezone, &r.ContactCount, &r.TotalSlotsAnalyzed,
		&r.AverageQuality, &r.FairnessScore, &r.Algorithm, &codes, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history: find by fingerprint: %w", err)
	}
	r.WarningCodes = splitCodes(codes)
	return &r, nil
}

func joinCodes(codes []string) string {
	out := ""
	for i, c := range codes {
		if i > 0 {
			out += ","
		}
		out += c
	}
	return out
}

func splitCodes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return out
}
