// Package scoring implements the generic resume score engine: five weighted
// heuristics reduced to a deterministic, explainable 0-100 score. Every
// function here is a pure transformation — no I/O, no mutation, total over
// its input — so scores are reproducible given identical input.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-studio/internal/extraction"
	"github.com/jonathan/resume-studio/internal/types"
)

// Category weights; they sum to 100.
const (
	MaxATSFormatting  = 30.0
	MaxContentQuality = 25.0
	MaxStructure      = 20.0
	MaxFormatting     = 15.0
	MaxActionVerbs    = 10.0
)

// Status glyphs for detail lines, consumed directly by display surfaces.
const (
	GlyphGood = "✓"
	GlyphWarn = "⚠"
	GlyphBad  = "✗"
)

// Input bundles the extracted views of one resume that the heuristics
// share, so extraction runs once per scoring pass.
type Input struct {
	Resume  *types.Resume
	Edits   extraction.SectionEdits
	Text    string
	Lower   string
	Bullets []string
	Views   []extraction.EntryView
	Contact extraction.ContactInfo
}

// NewInput extracts everything the heuristics need from a resume.
func NewInput(resume *types.Resume, edits extraction.SectionEdits) *Input {
	text := extraction.ResumeText(resume, edits)
	return &Input{
		Resume:  resume,
		Edits:   edits,
		Text:    text,
		Lower:   strings.ToLower(text),
		Bullets: extraction.AllBullets(resume, edits),
		Views:   extraction.EntryViews(resume),
		Contact: extraction.Contact(resume, edits),
	}
}

// Score runs the generic engine. The overall score is the rounded sum of
// the category scores; each category is clamped to its maximum.
func Score(resume *types.Resume, edits extraction.SectionEdits) *types.ScoreReport {
	input := NewInput(resume, edits)

	breakdown := []types.ScoreBreakdown{
		ATSFormatting(input),
		ContentQuality(input),
		scoreStructure(input),
		scoreFormatting(input),
		scoreActionVerbs(input),
	}

	report := &types.ScoreReport{Breakdown: breakdown}
	report.Overall = int(math.Round(report.Total()))
	return report
}

// Rescale returns a copy of a breakdown scaled to a different maximum,
// keeping its detail lines. Score engines share heuristics but weight
// them differently.
func Rescale(breakdown types.ScoreBreakdown, category string, max float64) types.ScoreBreakdown {
	if breakdown.MaxScore > 0 {
		breakdown.Score = breakdown.Score / breakdown.MaxScore * max
	}
	breakdown.Category = category
	breakdown.MaxScore = max
	return breakdown
}

// Clamp bounds a score to [0, max].
func Clamp(score, max float64) float64 {
	if score < 0 {
		return 0
	}
	if score > max {
		return max
	}
	return score
}

// RatioPoints scales a 0-1 ratio to points.
func RatioPoints(ratio, max float64) float64 {
	return Clamp(ratio*max, max)
}
