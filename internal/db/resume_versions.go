package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ResumeVersion is one stored snapshot of a resume document.
type ResumeVersion struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Content   map[string]any `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
}

// SaveResumeVersion stores a resume document snapshot and returns its ID.
func (db *DB) SaveResumeVersion(ctx context.Context, userID uuid.UUID, content map[string]any) (uuid.UUID, error) {
	raw, err := json.Marshal(content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume content: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_versions (id, user_id, content) VALUES ($1, $2, $3)`,
		id, userID, raw,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume version: %w", err)
	}
	return id, nil
}

// GetResumeVersion loads one resume snapshot by ID, or nil when absent.
func (db *DB) GetResumeVersion(ctx context.Context, versionID uuid.UUID) (*ResumeVersion, error) {
	var version ResumeVersion
	var raw []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, content, created_at FROM resume_versions WHERE id = $1`,
		versionID,
	).Scan(&version.ID, &version.UserID, &raw, &version.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume version: %w", err)
	}

	if err := json.Unmarshal(raw, &version.Content); err != nil {
		return nil, fmt.Errorf("failed to decode resume version content: %w", err)
	}
	return &version, nil
}

// GetMostRecentResumeVersion loads a user's latest snapshot, or nil.
func (db *DB) GetMostRecentResumeVersion(ctx context.Context, userID uuid.UUID) (*ResumeVersion, error) {
	var version ResumeVersion
	var raw []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, content, created_at FROM resume_versions
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`,
		userID,
	).Scan(&version.ID, &version.UserID, &raw, &version.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get most recent resume version: %w", err)
	}

	if err := json.Unmarshal(raw, &version.Content); err != nil {
		return nil, fmt.Errorf("failed to decode resume version content: %w", err)
	}
	return &version, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
