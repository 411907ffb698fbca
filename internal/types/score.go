package types

// ScoreBreakdown is one scored heuristic category. Details carries
// glyph-annotated, human-readable explanations consumed directly for display.
type ScoreBreakdown struct {
	Category string   `json:"category"`
	Score    float64  `json:"score"`
	MaxScore float64  `json:"max_score"`
	Details  []string `json:"details"`
	Weighted bool     `json:"weighted"`
}

// ScoreReport aggregates category breakdowns into an overall 0-100 score.
type ScoreReport struct {
	Overall   int              `json:"overall"`
	Breakdown []ScoreBreakdown `json:"breakdown"`
}

// Total sums the category scores. The overall score is the rounded total;
// keeping both lets callers verify sum(subscore) == overall.
func (r *ScoreReport) Total() float64 {
	total := 0.0
	for _, b := range r.Breakdown {
		total += b.Score
	}
	return total
}

// KeywordCategory classifies job-description keywords for weighted matching.
type KeywordCategory string

// Keyword categories in decreasing match weight
const (
	KeywordTechnical   KeywordCategory = "technical"
	KeywordMethodology KeywordCategory = "methodology"
	KeywordSoftSkill   KeywordCategory = "soft_skill"
)

// Keyword is one term extracted from a job description. Frequency is how
// often the term appeared in the posting, not in the resume.
type Keyword struct {
	Term      string          `json:"term"`
	Category  KeywordCategory `json:"category"`
	Frequency int             `json:"frequency,omitempty"`
}

// KeywordSet is the categorized keyword collection the job-specific score
// engine matches against.
type KeywordSet struct {
	JobTitle string    `json:"job_title,omitempty"`
	Keywords []Keyword `json:"keywords"`
}
