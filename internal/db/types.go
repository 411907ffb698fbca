package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ResumeRecord is a stored resume. Sections holds the structured section
// model as JSONB.
type ResumeRecord struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Sections  json.RawMessage `json:"sections"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty"`
}

// SectionReview is the per-section review state: the latest AI suggestion
// pass, the user's committed plain-text edit, and the raw payload the
// section was normalized from. JobID is nil for job-independent reviews.
type SectionReview struct {
	ResumeID      uuid.UUID       `json:"resume_id"`
	SectionID     uuid.UUID       `json:"section_id"`
	JobID         *uuid.UUID      `json:"job_id,omitempty"`
	AISuggestions json.RawMessage `json:"ai_suggestions,omitempty"`
	FinalUpdated  *string         `json:"final_updated,omitempty"`
	RawData       json.RawMessage `json:"raw_data,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ScoreSnapshot is one stored scoring pass.
type ScoreSnapshot struct {
	ID        uuid.UUID       `json:"id"`
	ResumeID  uuid.UUID       `json:"resume_id"`
	JobID     *uuid.UUID      `json:"job_id,omitempty"`
	ScoreType string          `json:"score_type"`
	Overall   int             `json:"overall"`
	Breakdown json.RawMessage `json:"breakdown"`
	CreatedAt time.Time       `json:"created_at"`
}

// Score type constants
const (
	ScoreTypeGeneric = "generic"
	ScoreTypeJob     = "job"
)

// nilJobID stands in for a NULL job id inside unique keys, so generic
// and job-scoped rows conflict separately.
const nilJobID = "00000000-0000-0000-0000-000000000000"
