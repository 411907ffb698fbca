// Package tailoring implements the job-specific score engine: it grades a
// resume against one job posting's keyword set and, when a stored baseline
// exists, against the resume's own earlier score. Like the generic engine
// it is pure and total over its input.
package tailoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-studio/internal/extraction"
	"github.com/jonathan/resume-studio/internal/scoring"
	"github.com/jonathan/resume-studio/internal/types"
)

// Category weights; they sum to 100.
const (
	MaxKeywordMatch        = 35.0
	MaxContentQuality      = 20.0
	MaxExperienceRelevance = 15.0
	MaxTailoring           = 15.0
	MaxATSOptimization     = 15.0
)

// Tailoring-effectiveness constants. Without a baseline the category is
// neutral; with one, improvement over the baseline earns up to
// tailoringScaledMax and crossing the strong-score threshold earns the
// flat bonus.
const (
	tailoringNeutral    = 7.5
	tailoringScaledMax  = 10.0
	tailoringDivisor    = 20.0
	tailoringBonus      = 5.0
	tailoringBonusFloor = 80.0
)

// Score runs the job-specific engine. baseline is the overall score from
// a previous pass against the same job, or nil when none is stored.
func Score(resume *types.Resume, edits extraction.SectionEdits, keywords *types.KeywordSet, baseline *float64) *types.ScoreReport {
	input := scoring.NewInput(resume, edits)

	breakdown := []types.ScoreBreakdown{
		scoreKeywordMatch(input, keywords),
		scoring.Rescale(scoring.ContentQuality(input), "contentQuality", MaxContentQuality),
		scoreExperienceRelevance(input, keywords),
		scoring.Rescale(scoring.ATSFormatting(input), "atsOptimization", MaxATSOptimization),
	}

	// The effectiveness category compares against the baseline using the
	// provisional overall implied by the other four categories.
	provisional := 0.0
	for _, category := range breakdown {
		provisional += category.Score
	}
	current := provisional / (100.0 - MaxTailoring) * 100.0
	breakdown = append(breakdown, scoreTailoring(current, baseline))

	report := &types.ScoreReport{Breakdown: breakdown}
	report.Overall = int(math.Round(report.Total()))
	return report
}

// scoreKeywordMatch grades keyword coverage: each matched keyword earns
// its category weight plus a frequency bonus, normalized by the total
// possible weight.
func scoreKeywordMatch(input *scoring.Input, keywords *types.KeywordSet) types.ScoreBreakdown {
	breakdown := types.ScoreBreakdown{
		Category: "keywordMatch",
		MaxScore: MaxKeywordMatch,
		Weighted: true,
	}
	if keywords == nil || len(keywords.Keywords) == 0 {
		breakdown.Details = append(breakdown.Details, scoring.GlyphWarn+" no keywords extracted from the job posting")
		return breakdown
	}

	matches, possible := matchKeywords(input.Text, keywords)
	earned := 0.0
	matched := 0
	var missing []string
	for _, match := range matches {
		earned += match.Earned
		if match.Occurrences > 0 {
			matched++
		} else {
			missing = append(missing, match.Keyword.Term)
		}
	}

	if possible > 0 {
		breakdown.Score = scoring.RatioPoints(earned/possible, MaxKeywordMatch)
	}
	breakdown.Details = append(breakdown.Details,
		fmt.Sprintf("%s %d of %d job keywords found", glyphFor(matched, len(matches)), matched, len(matches)))
	if len(missing) > 0 {
		shown := missing
		if len(shown) > 6 {
			shown = shown[:6]
		}
		breakdown.Details = append(breakdown.Details,
			scoring.GlyphWarn+" missing: "+strings.Join(shown, ", "))
	}

	breakdown.Score = scoring.Clamp(breakdown.Score, breakdown.MaxScore)
	return breakdown
}

// Experience relevance sub-weights
const (
	relevanceTitlePoints   = 7.0
	relevanceKeywordPoints = 8.0
)

// scoreExperienceRelevance grades how directly the experience entries
// speak to this job: title-word overlap with entry roles, and technical
// keyword presence inside the experience entries themselves.
func scoreExperienceRelevance(input *scoring.Input, keywords *types.KeywordSet) types.ScoreBreakdown {
	breakdown := types.ScoreBreakdown{
		Category: "experienceRelevance",
		MaxScore: MaxExperienceRelevance,
		Weighted: true,
	}

	var experience []extraction.EntryView
	for _, view := range input.Views {
		if view.SectionKind == types.KindExperience {
			experience = append(experience, view)
		}
	}
	if len(experience) == 0 {
		breakdown.Details = append(breakdown.Details, scoring.GlyphBad+" no experience entries to evaluate")
		return breakdown
	}

	if keywords != nil && keywords.JobTitle != "" {
		titleWords := significantWords(keywords.JobTitle)
		overlapping := 0
		for _, view := range experience {
			if entryMatchesTitle(view, titleWords) {
				overlapping++
			}
		}
		ratio := float64(overlapping) / float64(len(experience))
		breakdown.Score += scoring.RatioPoints(ratio, relevanceTitlePoints)
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s %d of %d roles align with the job title", glyphFor(overlapping, len(experience)),
				overlapping, len(experience)))
	} else {
		// No title to compare against; grant the sub-score rather than
		// penalize the resume for a sparse posting.
		breakdown.Score += relevanceTitlePoints
	}

	if keywords != nil {
		relevant := 0
		for _, view := range experience {
			if entryMentionsKeyword(view, keywords) {
				relevant++
			}
		}
		ratio := float64(relevant) / float64(len(experience))
		breakdown.Score += scoring.RatioPoints(ratio, relevanceKeywordPoints)
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s %d of %d entries mention job keywords", glyphFor(relevant, len(experience)),
				relevant, len(experience)))
	}

	breakdown.Score = scoring.Clamp(breakdown.Score, breakdown.MaxScore)
	return breakdown
}

// scoreTailoring grades improvement over the stored baseline. With no
// baseline the category is neutral.
func scoreTailoring(current float64, baseline *float64) types.ScoreBreakdown {
	breakdown := types.ScoreBreakdown{
		Category: "tailoringEffectiveness",
		MaxScore: MaxTailoring,
		Weighted: true,
	}

	if baseline == nil {
		breakdown.Score = tailoringNeutral
		breakdown.Details = append(breakdown.Details,
			scoring.GlyphWarn+" no baseline score on record; neutral tailoring credit")
		return breakdown
	}

	improvement := current - *baseline
	scaled := scoring.Clamp(improvement/tailoringDivisor*tailoringScaledMax, tailoringScaledMax)
	breakdown.Score = scaled
	if improvement > 0 {
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s score improved %.1f points over the baseline", scoring.GlyphGood, improvement))
	} else {
		breakdown.Details = append(breakdown.Details,
			scoring.GlyphWarn+" no improvement over the baseline score")
	}
	if current >= tailoringBonusFloor {
		breakdown.Score += tailoringBonus
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s strong overall score (%.0f+)", scoring.GlyphGood, tailoringBonusFloor))
	}

	breakdown.Score = scoring.Clamp(breakdown.Score, breakdown.MaxScore)
	return breakdown
}

// significantWords splits a phrase into lowercase words worth matching,
// dropping short connectives.
func significantWords(phrase string) []string {
	var words []string
	for _, word := range strings.Fields(strings.ToLower(phrase)) {
		word = strings.Trim(word, ".,()/-")
		if len(word) > 2 {
			words = append(words, word)
		}
	}
	return words
}

// entryMatchesTitle reports whether any field of the entry shares a
// significant word with the job title.
func entryMatchesTitle(view extraction.EntryView, titleWords []string) bool {
	for _, value := range view.Fields {
		lower := strings.ToLower(value)
		for _, word := range titleWords {
			if strings.Contains(lower, word) {
				return true
			}
		}
	}
	return false
}

// entryMentionsKeyword reports whether the entry's fields or bullets
// contain any keyword from the set.
func entryMentionsKeyword(view extraction.EntryView, keywords *types.KeywordSet) bool {
	var parts []string
	for _, key := range view.FieldOrder {
		parts = append(parts, view.Fields[key])
	}
	parts = append(parts, view.Bullets...)
	text := strings.Join(parts, "\n")
	for _, keyword := range keywords.Keywords {
		if countOccurrences(text, keyword.Term) > 0 {
			return true
		}
	}
	return false
}

// glyphFor picks a status glyph from a hit ratio.
func glyphFor(hits, total int) string {
	if total == 0 || hits == 0 {
		return scoring.GlyphBad
	}
	if float64(hits)/float64(total) >= 0.5 {
		return scoring.GlyphGood
	}
	return scoring.GlyphWarn
}
