package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// strongVerbs are the action verbs the engine rewards at the start of a
// bullet. Matching is on the first word, lowercased.
var strongVerbs = map[string]bool{
	"accelerated": true, "achieved": true, "architected": true, "automated": true,
	"built": true, "created": true, "delivered": true, "designed": true,
	"developed": true, "drove": true, "established": true, "implemented": true,
	"improved": true, "increased": true, "launched": true, "led": true,
	"managed": true, "mentored": true, "migrated": true, "negotiated": true,
	"optimized": true, "orchestrated": true, "owned": true, "reduced": true,
	"refactored": true, "scaled": true, "shipped": true, "spearheaded": true,
	"streamlined": true, "transformed": true,
}

var leadingWordRe = regexp.MustCompile(`^[^A-Za-z]*([A-Za-z]+)`)

// verbTiers map distinct strong-verb counts onto discrete point tiers.
// Six tiers: 0, 1-2, 3-4, 5-6, 7-8, 9+.
var verbTiers = []struct {
	minDistinct int
	points      float64
}{
	{9, 10.0},
	{7, 8.0},
	{5, 6.0},
	{3, 4.0},
	{1, 2.0},
	{0, 0.0},
}

// countStrongVerbs returns total strong-verb bullet starts and the number
// of distinct verbs used.
func countStrongVerbs(bullets []string) (total int, distinct int) {
	seen := make(map[string]bool)
	for _, bullet := range bullets {
		matches := leadingWordRe.FindStringSubmatch(bullet)
		if matches == nil {
			continue
		}
		verb := strings.ToLower(matches[1])
		if strongVerbs[verb] {
			total++
			seen[verb] = true
		}
	}
	return total, len(seen)
}

// scoreActionVerbs grades strong-verb frequency and variety on the
// six-tier table.
func scoreActionVerbs(input *Input) types.ScoreBreakdown {
	breakdown := types.ScoreBreakdown{
		Category: "actionVerbs",
		MaxScore: MaxActionVerbs,
		Weighted: true,
	}

	total, distinct := countStrongVerbs(input.Bullets)
	for _, tier := range verbTiers {
		if distinct >= tier.minDistinct {
			breakdown.Score = tier.points
			break
		}
	}

	if distinct == 0 {
		breakdown.Details = append(breakdown.Details,
			GlyphBad+" no strong action verbs found; add action verbs to lead your bullets")
	} else {
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s %d strong-verb bullets using %d distinct verbs", GlyphGood, total, distinct))
		if distinct < 5 {
			breakdown.Details = append(breakdown.Details,
				GlyphWarn+" vary your action verbs for more impact")
		}
	}

	breakdown.Score = Clamp(breakdown.Score, breakdown.MaxScore)
	return breakdown
}
