package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// CreateTimelineEntry inserts one timeline entry for a user.
func (db *DB) CreateTimelineEntry(ctx context.Context, entry types.TimelineEntry) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO timeline_entries (id, user_id, resume_version_id, ats_score, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.UserID, entry.ResumeVersionID, entry.ATSScore, nullable(entry.Notes), entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create timeline entry: %w", err)
	}
	return nil
}

// ListTimelineEntries returns every entry for a user in creation order. The
// history service rebuilds its in-memory timeline from this after a restart.
func (db *DB) ListTimelineEntries(ctx context.Context, userID uuid.UUID) ([]types.TimelineEntry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, resume_version_id, ats_score, COALESCE(notes, ''), created_at, applied_at
		 FROM timeline_entries WHERE user_id = $1 ORDER BY created_at ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline entries: %w", err)
	}
	defer rows.Close()

	var entries []types.TimelineEntry
	for rows.Next() {
		var entry types.TimelineEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.ResumeVersionID, &entry.ATSScore, &entry.Notes, &entry.CreatedAt, &entry.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan timeline entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetMostRecentEntry returns the newest timeline entry for a user, or nil
// when the user has no history yet.
func (db *DB) GetMostRecentEntry(ctx context.Context, userID uuid.UUID) (*types.TimelineEntry, error) {
	var entry types.TimelineEntry
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, resume_version_id, ats_score, COALESCE(notes, ''), created_at, applied_at
		 FROM timeline_entries WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`,
		userID,
	).Scan(&entry.ID, &entry.UserID, &entry.ResumeVersionID, &entry.ATSScore, &entry.Notes, &entry.CreatedAt, &entry.AppliedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get most recent entry: %w", err)
	}
	return &entry, nil
}

// MarkEntryApplied records when an entry's resume version went live.
func (db *DB) MarkEntryApplied(ctx context.Context, entryID uuid.UUID, appliedAt time.Time) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE timeline_entries SET applied_at = $1 WHERE id = $2`,
		appliedAt, entryID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark entry applied: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("timeline entry not found: %s", entryID)
	}
	return nil
}

// DeleteTimelineEntries removes all history for a user.
func (db *DB) DeleteTimelineEntries(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM timeline_entries WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete timeline entries: %w", err)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
