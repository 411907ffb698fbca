package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// essentialKinds are the sections a complete resume is expected to carry.
var essentialKinds = []types.SectionKind{
	types.KindContact,
	types.KindSummary,
	types.KindExperience,
	types.KindEducation,
	types.KindSkills,
}

// conventionalOrder is the expected relative ordering of the major kinds.
var conventionalOrder = map[types.SectionKind]int{
	types.KindContact:    0,
	types.KindSummary:    1,
	types.KindExperience: 2,
	types.KindProjects:   3,
	types.KindEducation:  4,
	types.KindSkills:     5,
}

// Structural completeness sub-weights
const (
	structurePresencePoints = 15.0
	structureOrderPoints    = 5.0
)

// scoreStructure grades essential-section presence and conventional
// section ordering.
func scoreStructure(input *Input) types.ScoreBreakdown {
	breakdown := types.ScoreBreakdown{
		Category: "structure",
		MaxScore: MaxStructure,
		Weighted: true,
	}

	present := make(map[types.SectionKind]bool)
	for _, section := range input.Resume.Sections {
		present[section.Kind] = true
	}

	found := 0
	var missing []string
	for _, kind := range essentialKinds {
		if present[kind] {
			found++
		} else {
			missing = append(missing, string(kind))
		}
	}
	breakdown.Score += RatioPoints(float64(found)/float64(len(essentialKinds)), structurePresencePoints)
	if len(missing) == 0 {
		breakdown.Details = append(breakdown.Details, GlyphGood+" all essential sections present")
	} else {
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s missing sections: %s", GlyphWarn, strings.Join(missing, ", ")))
	}

	if sectionsInConventionalOrder(input.Resume.Sections) {
		breakdown.Score += structureOrderPoints
		breakdown.Details = append(breakdown.Details, GlyphGood+" sections follow conventional ordering")
	} else {
		breakdown.Details = append(breakdown.Details,
			GlyphWarn+" unconventional section order; recruiters expect experience before education")
	}

	breakdown.Score = Clamp(breakdown.Score, breakdown.MaxScore)
	return breakdown
}

// sectionsInConventionalOrder checks that known kinds appear in
// non-decreasing conventional rank.
func sectionsInConventionalOrder(sections []*types.Section) bool {
	lastRank := -1
	for _, section := range sections {
		rank, known := conventionalOrder[section.Kind]
		if !known {
			continue
		}
		if rank < lastRank {
			return false
		}
		lastRank = rank
	}
	return true
}
