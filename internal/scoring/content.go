package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// quantifiedRe detects measurable achievements: percentages, money,
// multipliers, or counts with scale words.
var quantifiedRe = regexp.MustCompile(`(?i)(\d+(\.\d+)?%|\$\s?\d[\d,]*|\d+(\.\d+)?x\b|\b\d[\d,]*\+?\s*(users|customers|requests|records|engineers|people|teams|projects|hours|days|ms|seconds|qps|rps|stars|downloads)\b)`)

// Content quality sub-weights
const (
	contentQuantifiedPoints = 10.0
	contentVerbPoints       = 8.0
	contentDepthPoints      = 7.0
)

// Bullet length band considered substantive
const (
	minBulletChars = 40
	maxBulletChars = 220
)

// ContentQuality grades what the bullets actually say: quantified
// achievements, strong-verb coverage, and substantive bullet depth.
func ContentQuality(input *Input) types.ScoreBreakdown {
	breakdown := types.ScoreBreakdown{
		Category: "contentQuality",
		MaxScore: MaxContentQuality,
		Weighted: true,
	}

	if len(input.Bullets) == 0 {
		breakdown.Details = append(breakdown.Details, GlyphBad+" no bullet content to evaluate")
		return breakdown
	}

	// Quantified-achievement detection.
	quantified := 0
	for _, bullet := range input.Bullets {
		if quantifiedRe.MatchString(bullet) {
			quantified++
		}
	}
	quantRatio := float64(quantified) / float64(len(input.Bullets))
	breakdown.Score += RatioPoints(quantRatio*2, contentQuantifiedPoints) // half the bullets quantified earns full marks
	if quantified == 0 {
		breakdown.Details = append(breakdown.Details,
			GlyphBad+" no quantified achievements; add numbers to show impact")
	} else {
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s %d of %d bullets carry measurable results", GlyphGood, quantified, len(input.Bullets)))
	}

	// Strong-verb coverage of bullets.
	verbTotal, _ := countStrongVerbs(input.Bullets)
	verbRatio := float64(verbTotal) / float64(len(input.Bullets))
	breakdown.Score += RatioPoints(verbRatio, contentVerbPoints)
	if verbTotal == 0 {
		breakdown.Details = append(breakdown.Details,
			GlyphBad+" bullets lack strong openings; add action verbs")
	} else {
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s %d of %d bullets open with a strong verb", GlyphGood, verbTotal, len(input.Bullets)))
	}

	// Substantive depth: bullets inside the useful length band.
	substantive := 0
	for _, bullet := range input.Bullets {
		length := len(strings.TrimSpace(bullet))
		if length >= minBulletChars && length <= maxBulletChars {
			substantive++
		}
	}
	depthRatio := float64(substantive) / float64(len(input.Bullets))
	breakdown.Score += RatioPoints(depthRatio, contentDepthPoints)
	if depthRatio < 0.5 {
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s %d of %d bullets are too thin or too long to land", GlyphWarn,
				len(input.Bullets)-substantive, len(input.Bullets)))
	} else {
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s %d of %d bullets are well-sized", GlyphGood, substantive, len(input.Bullets)))
	}

	breakdown.Score = Clamp(breakdown.Score, breakdown.MaxScore)
	return breakdown
}
