package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveScore appends one scoring pass to the history and returns its ID.
func (db *DB) SaveScore(ctx context.Context, resumeID uuid.UUID, jobID *uuid.UUID, scoreType string, overall int, breakdown any) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(breakdown)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal score breakdown: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resume_scores (resume_id, job_id, score_type, overall, breakdown)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		resumeID, jobID, scoreType, overall, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save score: %w", err)
	}
	return id, nil
}

// SaveBaseline records the first overall score for a resume/job pair.
// Later calls are no-ops; the baseline never moves once set.
func (db *DB) SaveBaseline(ctx context.Context, resumeID uuid.UUID, jobID *uuid.UUID, overall float64) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO resume_baselines (resume_id, job_id, overall)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (resume_id, COALESCE(job_id, '`+nilJobID+`'::uuid)) DO NOTHING`,
		resumeID, jobID, overall,
	)
	if err != nil {
		return fmt.Errorf("failed to save baseline score: %w", err)
	}
	return nil
}

// GetBaseline retrieves the stored baseline for a resume/job pair.
// Returns nil when no baseline exists yet.
func (db *DB) GetBaseline(ctx context.Context, resumeID uuid.UUID, jobID *uuid.UUID) (*float64, error) {
	var overall float64
	err := db.pool.QueryRow(ctx,
		`SELECT overall FROM resume_baselines
		 WHERE resume_id = $1
		   AND COALESCE(job_id, '`+nilJobID+`'::uuid) = COALESCE($2, '`+nilJobID+`'::uuid)`,
		resumeID, jobID,
	).Scan(&overall)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get baseline score: %w", err)
	}
	return &overall, nil
}

// LatestScore retrieves the most recent scoring pass of a type for a
// resume/job pair. Returns nil when none exists.
func (db *DB) LatestScore(ctx context.Context, resumeID uuid.UUID, jobID *uuid.UUID, scoreType string) (*ScoreSnapshot, error) {
	var snapshot ScoreSnapshot
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_id, job_id, score_type, overall, breakdown, created_at
		 FROM resume_scores
		 WHERE resume_id = $1
		   AND COALESCE(job_id, '`+nilJobID+`'::uuid) = COALESCE($2, '`+nilJobID+`'::uuid)
		   AND score_type = $3
		 ORDER BY created_at DESC
		 LIMIT 1`,
		resumeID, jobID, scoreType,
	).Scan(&snapshot.ID, &snapshot.ResumeID, &snapshot.JobID, &snapshot.ScoreType,
		&snapshot.Overall, &snapshot.Breakdown, &snapshot.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest score: %w", err)
	}
	return &snapshot, nil
}
