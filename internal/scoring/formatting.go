package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// Formatting quality sub-weights
const (
	formattingEmptyPoints  = 6.0
	formattingLengthPoints = 5.0
	formattingLinePoints   = 4.0
)

// Overall resume length band, in words
const (
	minResumeWords = 150
	maxResumeWords = 1100
)

// maxLineChars is the longest line that still renders cleanly
const maxLineChars = 260

// scoreFormatting grades surface hygiene: no hollow sections, sane overall
// length, and no run-on lines.
func scoreFormatting(input *Input) types.ScoreBreakdown {
	breakdown := types.ScoreBreakdown{
		Category: "formatting",
		MaxScore: MaxFormatting,
		Weighted: true,
	}

	// Hollow sections render as bare headings.
	hollow := 0
	for _, section := range input.Resume.Sections {
		if len(section.Bullets) == 0 && len(section.Entries) == 0 {
			hollow++
		}
	}
	if hollow == 0 {
		breakdown.Score += formattingEmptyPoints
		breakdown.Details = append(breakdown.Details, GlyphGood+" every section has content")
	} else {
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s %d empty sections render as bare headings", GlyphWarn, hollow))
	}

	words := len(strings.Fields(input.Text))
	switch {
	case words >= minResumeWords && words <= maxResumeWords:
		breakdown.Score += formattingLengthPoints
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s resume length is appropriate (%d words)", GlyphGood, words))
	case words < minResumeWords:
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s resume is thin (%d words); expand your experience", GlyphWarn, words))
	default:
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s resume is long (%d words); tighten to the strongest material", GlyphWarn, words))
	}

	long := 0
	for _, line := range strings.Split(input.Text, "\n") {
		if len(line) > maxLineChars {
			long++
		}
	}
	if long == 0 {
		breakdown.Score += formattingLinePoints
		breakdown.Details = append(breakdown.Details, GlyphGood+" no run-on lines")
	} else {
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s %d lines are too long to render cleanly", GlyphWarn, long))
	}

	breakdown.Score = Clamp(breakdown.Score, breakdown.MaxScore)
	return breakdown
}
