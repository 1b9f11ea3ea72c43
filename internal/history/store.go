// Package history persists completed runs to a local sqlite database so
// past reports can be listed and inspected. Recording is best effort: a
// history failure is a warning for the caller, never a run failure.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"assetmirror/internal/pipeline"
)

//go:embed schema.sql
var schemaSQL string

// ErrRunNotFound indicates the requested run id has no history row.
var ErrRunNotFound = errors.New("run not found")

// Run is one recorded extract invocation.
type Run struct {
	ID                  string
	StartedAt           time.Time
	SourceRoot          string
	DestRoot            string
	FilesDiscovered     int
	FilesProcessed      int
	FilesSkipped        int
	ErrorCount          int
	DiscoveryDurationMs int64
	TotalDurationMs     int64
}

// Store provides access to the run history database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant history database location.
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./assetmirror-history.db"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "assetmirror", "history.db")
}

// Open opens (creating if needed) the history database at path and
// applies the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenDB wraps an existing database handle and applies the schema. Used
// by tests with an in-memory database.
func OpenDB(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts the report and its failures in one transaction.
func (s *Store) Record(ctx context.Context, report *pipeline.Report, sourceRoot, destRoot string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, source_root, dest_root,
			files_discovered, files_processed, files_skipped, error_count,
			discovery_duration_ms, total_duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.RunID, report.StartedAt, sourceRoot, destRoot,
		report.FilesDiscovered, report.FilesProcessed, report.FilesSkipped,
		len(report.Errors), report.DiscoveryDurationMs, report.TotalDurationMs,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, f := range report.Errors {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_errors (run_id, filepath, error_message, function)
			VALUES (?, ?, ?, ?)`,
			report.RunID, f.Filepath, f.ErrorMessage, f.Function,
		)
		if err != nil {
			return fmt.Errorf("insert run error: %w", err)
		}
	}

	return tx.Commit()
}

// List returns the most recent runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, source_root, dest_root,
			files_discovered, files_processed, files_skipped, error_count,
			discovery_duration_ms, total_duration_ms
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Get returns one run and its recorded failures.
func (s *Store) Get(ctx context.Context, id string) (*Run, []pipeline.Failure, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, source_root, dest_root,
			files_discovered, files_processed, files_skipped, error_count,
			discovery_duration_ms, total_duration_ms
		FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return nil, nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT filepath, error_message, function
		FROM run_errors WHERE run_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list run errors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var failures []pipeline.Failure
	for rows.Next() {
		var f pipeline.Failure
		if err := rows.Scan(&f.Filepath, &f.ErrorMessage, &f.Function); err != nil {
			return nil, nil, fmt.Errorf("scan run error: %w", err)
		}
		failures = append(failures, f)
	}
	return run, failures, rows.Err()
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var r Run
	err := s.Scan(&r.ID, &r.StartedAt, &r.SourceRoot, &r.DestRoot,
		&r.FilesDiscovered, &r.FilesProcessed, &r.FilesSkipped, &r.ErrorCount,
		&r.DiscoveryDurationMs, &r.TotalDurationMs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan run: %w", err)
	}
	return &r, nil
}
