package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func simpleSection(heading string, kind types.SectionKind, lines ...string) *types.Section {
	section := &types.Section{Heading: heading, Kind: kind}
	for _, line := range lines {
		section.Bullets = append(section.Bullets, types.NewBulletPoint(line))
	}
	return section
}

func compoundSection(heading string, kind types.SectionKind, primary, secondary string, bullets ...string) *types.Section {
	entry := types.NewEntry()
	entry.SetField("primary", primary)
	entry.SetField("secondary", secondary)
	for _, b := range bullets {
		entry.Bullets = append(entry.Bullets, types.NewBulletPoint(b))
	}
	return &types.Section{Heading: heading, Kind: kind, Entries: []*types.Entry{entry}}
}

func fullResume() *types.Resume {
	return &types.Resume{Sections: []*types.Section{
		simpleSection("Contact", types.KindContact,
			"Jane Doe", "jane.doe@example.com", "(555) 123-4567"),
		simpleSection("Summary", types.KindSummary,
			"Backend engineer with ten years building distributed systems at scale."),
		compoundSection("Experience", types.KindExperience, "Acme Corp", "Senior Engineer",
			"Reduced p99 latency by 40% for a service handling 50,000 requests per day",
			"Led a team of 6 engineers through a zero-downtime datastore migration",
			"Automated the release pipeline, cutting deploy time from 2 hours to 10 minutes",
			"Mentored 4 engineers who were promoted within eighteen months of joining"),
		compoundSection("Education", types.KindEducation, "State University", "BS Computer Science"),
		simpleSection("Skills", types.KindSkills,
			"Go, Python, PostgreSQL, Kubernetes, Terraform"),
	}}
}

func TestScore_OverallIsRoundedSum(t *testing.T) {
	report := Score(fullResume(), nil)

	assert.Equal(t, int(math.Round(report.Total())), report.Overall)
	assert.GreaterOrEqual(t, report.Overall, 0)
	assert.LessOrEqual(t, report.Overall, 100)
}

func TestScore_CategoryWeights(t *testing.T) {
	report := Score(fullResume(), nil)
	require.Len(t, report.Breakdown, 5)

	expected := map[string]float64{
		"atsFormatting":  MaxATSFormatting,
		"contentQuality": MaxContentQuality,
		"structure":      MaxStructure,
		"formatting":     MaxFormatting,
		"actionVerbs":    MaxActionVerbs,
	}
	sum := 0.0
	for _, b := range report.Breakdown {
		require.Contains(t, expected, b.Category)
		assert.Equal(t, expected[b.Category], b.MaxScore, b.Category)
		assert.GreaterOrEqual(t, b.Score, 0.0, b.Category)
		assert.LessOrEqual(t, b.Score, b.MaxScore, b.Category)
		assert.NotEmpty(t, b.Details, b.Category)
		sum += b.MaxScore
	}
	assert.Equal(t, 100.0, sum)
}

func TestScore_EmptyResume(t *testing.T) {
	report := Score(&types.Resume{}, nil)

	require.Len(t, report.Breakdown, 5)
	assert.Equal(t, int(math.Round(report.Total())), report.Overall)
	for _, b := range report.Breakdown {
		assert.GreaterOrEqual(t, b.Score, 0.0, b.Category)
	}
}

func TestContentQuality_NoBullets(t *testing.T) {
	breakdown := ContentQuality(&Input{})

	assert.Zero(t, breakdown.Score)
	require.Len(t, breakdown.Details, 1)
	assert.Contains(t, breakdown.Details[0], GlyphBad)
}

func TestContentQuality_FullMarks(t *testing.T) {
	// Every bullet quantified, strong-verb led, and inside the length band.
	input := &Input{Bullets: []string{
		"Reduced p99 latency by 40% for the checkout path during peak traffic",
		"Increased conversion by 12% after rebuilding the onboarding funnel",
		"Scaled ingestion to 80,000 requests per second on half the hardware",
		"Delivered $2,000,000 in annual savings by consolidating three clusters",
	}}

	breakdown := ContentQuality(input)
	assert.InDelta(t, MaxContentQuality, breakdown.Score, 0.001)
}

func TestContentQuality_WeakBullets(t *testing.T) {
	// No numbers, no strong openings, all below the substantive band.
	input := &Input{Bullets: []string{
		"responsible for things",
		"worked on the website",
	}}

	breakdown := ContentQuality(input)
	assert.Zero(t, breakdown.Score)
	assert.Contains(t, breakdown.Details[0], "no quantified achievements")
	assert.Contains(t, breakdown.Details[1], "add action verbs")
}

func TestScoreActionVerbs_Tiers(t *testing.T) {
	verbs := []string{
		"Led", "Built", "Shipped", "Reduced", "Automated",
		"Mentored", "Scaled", "Designed", "Launched",
	}

	cases := []struct {
		distinct int
		points   float64
	}{
		{0, 0.0},
		{1, 2.0},
		{2, 2.0},
		{3, 4.0},
		{4, 4.0},
		{5, 6.0},
		{6, 6.0},
		{7, 8.0},
		{8, 8.0},
		{9, 10.0},
	}
	for _, tc := range cases {
		bullets := make([]string, 0, tc.distinct)
		for i := 0; i < tc.distinct; i++ {
			bullets = append(bullets, verbs[i]+" the thing")
		}
		breakdown := scoreActionVerbs(&Input{Bullets: bullets})
		assert.Equal(t, tc.points, breakdown.Score, "distinct=%d", tc.distinct)
	}
}

func TestCountStrongVerbs_DistinctVsTotal(t *testing.T) {
	total, distinct := countStrongVerbs([]string{
		"Led the migration",
		"• Led the rollout",
		"Built the pipeline",
		"was responsible for uptime",
	})

	assert.Equal(t, 3, total)
	assert.Equal(t, 2, distinct)
}

func TestATSFormatting_RewardsStandardHeadings(t *testing.T) {
	report := ATSFormatting(NewInput(fullResume(), nil))

	// All five headings standard, email and phone present, bullets exist.
	assert.InDelta(t, MaxATSFormatting, report.Score, 0.001)
}

func TestATSFormatting_PenalizesOddHeadings(t *testing.T) {
	resume := &types.Resume{Sections: []*types.Section{
		simpleSection("My Journey", types.KindOther, "a long and winding road"),
	}}

	report := ATSFormatting(NewInput(resume, nil))
	assert.Less(t, report.Score, MaxATSFormatting/2)
}

func TestScoreStructure_AllEssentialInOrder(t *testing.T) {
	breakdown := scoreStructure(NewInput(fullResume(), nil))
	assert.InDelta(t, MaxStructure, breakdown.Score, 0.001)
}

func TestScoreStructure_OutOfOrder(t *testing.T) {
	resume := fullResume()
	// Education before experience breaks conventional ordering.
	resume.Sections[2], resume.Sections[3] = resume.Sections[3], resume.Sections[2]

	breakdown := scoreStructure(NewInput(resume, nil))
	assert.InDelta(t, structurePresencePoints, breakdown.Score, 0.001)
}

func TestScoreFormatting_HollowSections(t *testing.T) {
	resume := fullResume()
	resume.Sections = append(resume.Sections, &types.Section{Heading: "Awards", Kind: types.KindOther})

	breakdown := scoreFormatting(NewInput(resume, nil))
	assert.NotContains(t, breakdown.Details[0], GlyphGood)
}

func TestRescale(t *testing.T) {
	breakdown := types.ScoreBreakdown{
		Category: "contentQuality",
		Score:    20.0,
		MaxScore: 25.0,
		Details:  []string{GlyphGood + " solid"},
	}

	scaled := Rescale(breakdown, "contentQuality", 20.0)
	assert.Equal(t, 20.0, scaled.MaxScore)
	assert.InDelta(t, 16.0, scaled.Score, 0.001)
	assert.Equal(t, breakdown.Details, scaled.Details)

	// Zero max passes through untouched apart from the rename.
	empty := Rescale(types.ScoreBreakdown{Category: "x"}, "y", 15.0)
	assert.Equal(t, "y", empty.Category)
	assert.Zero(t, empty.Score)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 10))
	assert.Equal(t, 10.0, Clamp(11, 10))
	assert.Equal(t, 5.0, Clamp(5, 10))
}

func TestRatioPoints(t *testing.T) {
	assert.Equal(t, 5.0, RatioPoints(0.5, 10))
	assert.Equal(t, 10.0, RatioPoints(1.5, 10))
}
