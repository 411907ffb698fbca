package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UpsertSuggestions stores the latest AI suggestion payload for a section.
// Each pass replaces the previous one; last write wins.
func (db *DB) UpsertSuggestions(ctx context.Context, resumeID, sectionID uuid.UUID, jobID *uuid.UUID, suggestions json.RawMessage) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO section_reviews (resume_id, section_id, job_id, ai_suggestions)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (resume_id, section_id, COALESCE(job_id, '`+nilJobID+`'::uuid))
		 DO UPDATE SET ai_suggestions = $4, updated_at = NOW()`,
		resumeID, sectionID, jobID, suggestions,
	)
	if err != nil {
		return fmt.Errorf("failed to save section suggestions: %w", err)
	}
	return nil
}

// UpsertFinalEdit stores the user's committed plain-text edit for a
// section. Last write wins.
func (db *DB) UpsertFinalEdit(ctx context.Context, resumeID, sectionID uuid.UUID, jobID *uuid.UUID, text string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO section_reviews (resume_id, section_id, job_id, final_updated)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (resume_id, section_id, COALESCE(job_id, '`+nilJobID+`'::uuid))
		 DO UPDATE SET final_updated = $4, updated_at = NOW()`,
		resumeID, sectionID, jobID, text,
	)
	if err != nil {
		return fmt.Errorf("failed to save section edit: %w", err)
	}
	return nil
}

// UpsertRawData stores the raw payload a section was normalized from.
func (db *DB) UpsertRawData(ctx context.Context, resumeID, sectionID uuid.UUID, jobID *uuid.UUID, raw json.RawMessage) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO section_reviews (resume_id, section_id, job_id, raw_data)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (resume_id, section_id, COALESCE(job_id, '`+nilJobID+`'::uuid))
		 DO UPDATE SET raw_data = $4, updated_at = NOW()`,
		resumeID, sectionID, jobID, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to save section raw data: %w", err)
	}
	return nil
}

// GetReview retrieves the review state for one section. Returns nil if no
// review exists. A nil jobID matches only job-independent rows.
func (db *DB) GetReview(ctx context.Context, resumeID, sectionID uuid.UUID, jobID *uuid.UUID) (*SectionReview, error) {
	var review SectionReview
	err := db.pool.QueryRow(ctx,
		`SELECT resume_id, section_id, job_id, ai_suggestions, final_updated, raw_data, updated_at
		 FROM section_reviews
		 WHERE resume_id = $1 AND section_id = $2
		   AND COALESCE(job_id, '`+nilJobID+`'::uuid) = COALESCE($3, '`+nilJobID+`'::uuid)`,
		resumeID, sectionID, jobID,
	).Scan(&review.ResumeID, &review.SectionID, &review.JobID,
		&review.AISuggestions, &review.FinalUpdated, &review.RawData, &review.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get section review: %w", err)
	}
	return &review, nil
}

// GetSectionEdits returns every committed plain-text edit for a resume,
// keyed by section ID string. Sections without an edit are absent.
func (db *DB) GetSectionEdits(ctx context.Context, resumeID uuid.UUID, jobID *uuid.UUID) (map[string]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT section_id, final_updated
		 FROM section_reviews
		 WHERE resume_id = $1
		   AND COALESCE(job_id, '`+nilJobID+`'::uuid) = COALESCE($2, '`+nilJobID+`'::uuid)
		   AND final_updated IS NOT NULL`,
		resumeID, jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get section edits: %w", err)
	}
	defer rows.Close()

	edits := make(map[string]string)
	for rows.Next() {
		var sectionID uuid.UUID
		var text string
		if err := rows.Scan(&sectionID, &text); err != nil {
			return nil, fmt.Errorf("failed to scan section edit: %w", err)
		}
		edits[sectionID.String()] = text
	}
	return edits, rows.Err()
}
