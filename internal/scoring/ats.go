package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// standardHeadings are the section names applicant tracking systems
// recognize without configuration.
var standardHeadings = map[types.SectionKind][]string{
	types.KindContact:        {"contact"},
	types.KindSummary:        {"summary", "professional summary", "objective", "profile"},
	types.KindExperience:     {"experience", "work experience", "professional experience", "employment history"},
	types.KindEducation:      {"education"},
	types.KindSkills:         {"skills", "technical skills"},
	types.KindProjects:       {"projects"},
	types.KindCertifications: {"certifications", "licenses"},
}

// ATS formatting sub-weights
const (
	atsHeadingPoints = 16.0
	atsEmailPoints   = 5.0
	atsPhonePoints   = 4.0
	atsBulletPoints  = 5.0
)

// ATSFormatting rewards what tracking systems can parse: standard
// heading names, reachable contact info, and bullet-structured content.
func ATSFormatting(input *Input) types.ScoreBreakdown {
	breakdown := types.ScoreBreakdown{
		Category: "atsFormatting",
		MaxScore: MaxATSFormatting,
		Weighted: true,
	}

	// Standard-heading-name coverage ratio.
	recognized := 0
	for _, section := range input.Resume.Sections {
		if headingIsStandard(section) {
			recognized++
		}
	}
	total := len(input.Resume.Sections)
	ratio := 0.0
	if total > 0 {
		ratio = float64(recognized) / float64(total)
	}
	breakdown.Score += RatioPoints(ratio, atsHeadingPoints)
	if ratio >= 0.75 {
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s %d of %d section headings are ATS-standard", GlyphGood, recognized, total))
	} else {
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s only %d of %d section headings are ATS-standard; prefer conventional names", GlyphWarn, recognized, total))
	}

	if input.Contact.Email != "" {
		breakdown.Score += atsEmailPoints
		breakdown.Details = append(breakdown.Details, GlyphGood+" email address found")
	} else {
		breakdown.Details = append(breakdown.Details, GlyphBad+" no email address found")
	}
	if input.Contact.Phone != "" {
		breakdown.Score += atsPhonePoints
		breakdown.Details = append(breakdown.Details, GlyphGood+" phone number found")
	} else {
		breakdown.Details = append(breakdown.Details, GlyphBad+" no phone number found")
	}

	if len(input.Bullets) > 0 {
		breakdown.Score += atsBulletPoints
		breakdown.Details = append(breakdown.Details,
			fmt.Sprintf("%s %d parseable bullet points", GlyphGood, len(input.Bullets)))
	} else {
		breakdown.Details = append(breakdown.Details, GlyphBad+" no bullet points detected")
	}

	breakdown.Score = Clamp(breakdown.Score, breakdown.MaxScore)
	return breakdown
}

// headingIsStandard reports whether a section's heading is a conventional
// name for its kind.
func headingIsStandard(section *types.Section) bool {
	names, ok := standardHeadings[section.Kind]
	if !ok {
		return false
	}
	heading := strings.ToLower(strings.TrimSpace(section.Heading))
	for _, name := range names {
		if heading == name {
			return true
		}
	}
	return false
}
