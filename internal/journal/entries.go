package journal

import (
	"context"
	"fmt"
	"time"
)

// Result classifies the outcome of one clip export attempt.
type Result string

const (
	ResultExported        Result = "exported"
	ResultMissingManifest Result = "missing_manifest"
	ResultRemuxFailed     Result = "remux_failed"
)

// Entry is one journaled export outcome. StartedAt marks when the attempt
// began; CreatedAt is the completion instant the row was written at.
type Entry struct {
	ID         int64
	RunID      string
	ClipDir    string
	AppID      uint32
	AppName    string
	OutputPath string
	Result     Result
	Detail     string
	StartedAt  time.Time
	CreatedAt  time.Time
}

// Record appends an entry to the journal. A nil store is a no-op so callers
// can journal unconditionally even when journaling is disabled.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	if s == nil || s.db == nil {
		return nil
	}
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	startedAt := entry.StartedAt
	if startedAt.IsZero() {
		startedAt = createdAt
	}
	err := s.execWithRetry(ensureContext(ctx),
		`INSERT INTO export_history (run_id, clip_dir, app_id, app_name, output_path, result, detail, started_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID, entry.ClipDir, int64(entry.AppID), entry.AppName,
		entry.OutputPath, string(entry.Result), entry.Detail,
		startedAt.UTC().Format(time.RFC3339),
		createdAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record journal entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries ordered newest first. A nil store
// returns no entries.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, clip_dir, app_id, app_name, output_path, result, detail, started_at, created_at
		 FROM export_history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry     Entry
			appID     int64
			result    string
			startedAt string
			createdAt string
		)
		if err := rows.Scan(&entry.ID, &entry.RunID, &entry.ClipDir, &appID,
			&entry.AppName, &entry.OutputPath, &result, &entry.Detail, &startedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entry.AppID = uint32(appID)
		entry.Result = Result(result)
		if parsed, parseErr := time.Parse(time.RFC3339, startedAt); parseErr == nil {
			entry.StartedAt = parsed
		}
		if parsed, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			entry.CreatedAt = parsed
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}
	return entries, nil
}
