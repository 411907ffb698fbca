package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveResume inserts a resume or updates its title and sections.
func (db *DB) SaveResume(ctx context.Context, id uuid.UUID, title string, sections any) error {
	jsonBytes, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("failed to marshal resume sections: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (id, title, sections)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET title = $2, sections = $3, updated_at = NOW()`,
		id, title, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// GetResume retrieves a resume by ID. Returns nil if not found or soft
// deleted.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*ResumeRecord, error) {
	var record ResumeRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, sections, created_at, updated_at
		 FROM resumes
		 WHERE id = $1 AND deleted_at IS NULL`,
		id,
	).Scan(&record.ID, &record.Title, &record.Sections, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &record, nil
}

// ListResumes returns all resumes that are not soft deleted, newest first.
func (db *DB) ListResumes(ctx context.Context) ([]ResumeRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, sections, created_at, updated_at
		 FROM resumes
		 WHERE deleted_at IS NULL
		 ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var records []ResumeRecord
	for rows.Next() {
		var record ResumeRecord
		if err := rows.Scan(&record.ID, &record.Title, &record.Sections, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// DeleteResume soft deletes a resume. Review and score rows are kept.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE resumes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}
