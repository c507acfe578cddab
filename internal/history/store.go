// Package history persists a write-only record of completed processing jobs
// backed by SQLite. The pipeline itself never reads these rows; they exist
// for the history command and post-run auditing.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS jobs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    job_id TEXT NOT NULL,
    title TEXT NOT NULL,
    input_path TEXT NOT NULL,
    output_path TEXT,
    status TEXT NOT NULL,
    error_message TEXT,
    video_codec TEXT,
    duration_ms INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs(created_at);
`

// Statuses recorded for a job.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Entry is one recorded processing job.
type Entry struct {
	ID           int64
	JobID        string
	Title        string
	InputPath    string
	OutputPath   string
	Status       string
	ErrorMessage string
	VideoCodec   string
	Duration     time.Duration
	CreatedAt    time.Time
}

// Store manages job history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path reports the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts a finished job. A non-empty ErrorMessage implies failure.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	if entry.Status == "" {
		entry.Status = StatusCompleted
		if entry.ErrorMessage != "" {
			entry.Status = StatusFailed
		}
	}
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO jobs (
            job_id, title, input_path, output_path, status,
            error_message, video_codec, duration_ms, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.JobID,
		entry.Title,
		entry.InputPath,
		nullableString(entry.OutputPath),
		entry.Status,
		nullableString(entry.ErrorMessage),
		nullableString(entry.VideoCodec),
		entry.Duration.Milliseconds(),
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first. When failedOnly is set
// only failed jobs are returned. A non-positive limit means no limit.
func (s *Store) List(ctx context.Context, limit int, failedOnly bool) ([]Entry, error) {
	query := `SELECT id, job_id, title, input_path, output_path, status,
        error_message, video_codec, duration_ms, created_at
        FROM jobs`
	args := []any{}
	if failedOnly {
		query += " WHERE status = ?"
		args = append(args, StatusFailed)
	}
	query += " ORDER BY id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}

// Clear removes all recorded jobs.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM jobs"); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (Entry, error) {
	var (
		entry        Entry
		outputPath   sql.NullString
		errorMessage sql.NullString
		videoCodec   sql.NullString
		durationMS   int64
		createdRaw   string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.JobID,
		&entry.Title,
		&entry.InputPath,
		&outputPath,
		&entry.Status,
		&errorMessage,
		&videoCodec,
		&durationMS,
		&createdRaw,
	); err != nil {
		return Entry{}, fmt.Errorf("scan history entry: %w", err)
	}
	entry.OutputPath = outputPath.String
	entry.ErrorMessage = errorMessage.String
	entry.VideoCodec = videoCodec.String
	entry.Duration = time.Duration(durationMS) * time.Millisecond
	if parsed, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		entry.CreatedAt = parsed
	}
	return entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
