package tailoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/scoring"
	"github.com/jonathan/resume-studio/internal/types"
)

func testResume() *types.Resume {
	entry := types.NewEntry()
	entry.SetField("primary", "Acme Corp")
	entry.SetField("secondary", "Senior Backend Engineer")
	entry.Bullets = []types.BulletPoint{
		types.NewBulletPoint("Built Go services backed by PostgreSQL handling 40,000 requests per day"),
		types.NewBulletPoint("Led agile delivery for a team of 6 engineers"),
	}
	return &types.Resume{Sections: []*types.Section{
		{
			Heading: "Contact",
			Kind:    types.KindContact,
			Bullets: []types.BulletPoint{
				types.NewBulletPoint("Jane Doe"),
				types.NewBulletPoint("jane@example.com"),
				types.NewBulletPoint("(555) 123-4567"),
			},
		},
		{Heading: "Experience", Kind: types.KindExperience, Entries: []*types.Entry{entry}},
		{
			Heading: "Skills",
			Kind:    types.KindSkills,
			Bullets: []types.BulletPoint{types.NewBulletPoint("Go, PostgreSQL, Kubernetes")},
		},
	}}
}

func testKeywords() *types.KeywordSet {
	return &types.KeywordSet{
		JobTitle: "Senior Backend Engineer",
		Keywords: []types.Keyword{
			{Term: "go", Category: types.KeywordTechnical},
			{Term: "postgresql", Category: types.KeywordTechnical},
			{Term: "agile", Category: types.KeywordMethodology},
			{Term: "communication", Category: types.KeywordSoftSkill},
		},
	}
}

func TestScore_CategoryWeights(t *testing.T) {
	report := Score(testResume(), nil, testKeywords(), nil)
	require.Len(t, report.Breakdown, 5)

	expected := map[string]float64{
		"keywordMatch":           MaxKeywordMatch,
		"contentQuality":         MaxContentQuality,
		"experienceRelevance":    MaxExperienceRelevance,
		"atsOptimization":        MaxATSOptimization,
		"tailoringEffectiveness": MaxTailoring,
	}
	sum := 0.0
	for _, b := range report.Breakdown {
		require.Contains(t, expected, b.Category)
		assert.Equal(t, expected[b.Category], b.MaxScore, b.Category)
		assert.LessOrEqual(t, b.Score, b.MaxScore, b.Category)
		sum += b.MaxScore
	}
	assert.Equal(t, 100.0, sum)
	assert.Equal(t, int(math.Round(report.Total())), report.Overall)
}

func TestScore_NoKeywords(t *testing.T) {
	report := Score(testResume(), nil, nil, nil)

	require.Len(t, report.Breakdown, 5)
	assert.Zero(t, report.Breakdown[0].Score)
	assert.Contains(t, report.Breakdown[0].Details[0], "no keywords")
}

func TestScoreTailoring_NoBaselineIsNeutral(t *testing.T) {
	breakdown := scoreTailoring(75, nil)

	assert.Equal(t, tailoringNeutral, breakdown.Score)
	assert.Contains(t, breakdown.Details[0], "no baseline")
}

func TestScoreTailoring_ImprovementScales(t *testing.T) {
	baseline := 60.0
	breakdown := scoreTailoring(75, &baseline)

	// 15 points of improvement over a 20-point divisor earns 7.5 of 10,
	// and 75 is below the strong-score threshold.
	assert.InDelta(t, 7.5, breakdown.Score, 0.001)
}

func TestScoreTailoring_StrongScoreBonus(t *testing.T) {
	baseline := 70.0
	breakdown := scoreTailoring(85, &baseline)

	assert.InDelta(t, 7.5+tailoringBonus, breakdown.Score, 0.001)
}

func TestScoreTailoring_CappedAtMax(t *testing.T) {
	baseline := 40.0
	breakdown := scoreTailoring(95, &baseline)

	assert.Equal(t, MaxTailoring, breakdown.Score)
}

func TestScoreTailoring_NoImprovement(t *testing.T) {
	baseline := 80.0
	breakdown := scoreTailoring(70, &baseline)

	assert.Zero(t, breakdown.Score)
	assert.Contains(t, breakdown.Details[0], "no improvement")
}

func TestCountOccurrences_WholeWord(t *testing.T) {
	assert.Equal(t, 1, countOccurrences("Go gopher going strong", "go"))
	assert.Equal(t, 2, countOccurrences("Python and python again", "python"))
	assert.Zero(t, countOccurrences("JavaScript everywhere", "ruby"))
}

func TestCountOccurrences_CompoundAcrossLines(t *testing.T) {
	assert.Equal(t, 1, countOccurrences("applied machine\nlearning at scale", "machine learning"))
}

func TestCountOccurrences_SymbolTerms(t *testing.T) {
	// Word boundaries fail against trailing symbols; the partial pass
	// still counts these.
	assert.GreaterOrEqual(t, countOccurrences("C++ developer", "c++"), 1)
	assert.GreaterOrEqual(t, countOccurrences("ci/cd pipelines", "ci/cd"), 1)
}

func TestCountOccurrences_Empty(t *testing.T) {
	assert.Zero(t, countOccurrences("some text", ""))
	assert.Zero(t, countOccurrences("some text", "   "))
}

func TestMatchKeywords_WeightsAndBonus(t *testing.T) {
	set := &types.KeywordSet{Keywords: []types.Keyword{
		{Term: "go", Category: types.KeywordTechnical},
		{Term: "agile", Category: types.KeywordMethodology},
		{Term: "communication", Category: types.KeywordSoftSkill},
	}}
	text := "Go services in Go, more Go, shipped with agile ceremonies"

	matches, possible := matchKeywords(text, set)
	require.Len(t, matches, 3)
	assert.InDelta(t, 1.5+1.3+1.0, possible, 0.001)

	// Three occurrences: base weight plus two bonus steps, capped.
	assert.Equal(t, 3, matches[0].Occurrences)
	assert.InDelta(t, 1.5+2*frequencyBonusStep, matches[0].Earned, 0.001)

	assert.Equal(t, 1, matches[1].Occurrences)
	assert.InDelta(t, 1.3, matches[1].Earned, 0.001)

	assert.Zero(t, matches[2].Occurrences)
	assert.Zero(t, matches[2].Earned)
}

func TestMatchKeywords_BonusCapped(t *testing.T) {
	set := &types.KeywordSet{Keywords: []types.Keyword{
		{Term: "go", Category: types.KeywordTechnical},
	}}
	text := "go go go go go go"

	matches, _ := matchKeywords(text, set)
	assert.Equal(t, 6, matches[0].Occurrences)
	assert.InDelta(t, 1.5+float64(frequencyBonusCap)*frequencyBonusStep, matches[0].Earned, 0.001)
}

func TestScoreKeywordMatch_MoreMatchesNeverScoreLower(t *testing.T) {
	keywords := testKeywords()
	sparse := scoring.NewInput(&types.Resume{Sections: []*types.Section{{
		Heading: "Skills",
		Kind:    types.KindSkills,
		Bullets: []types.BulletPoint{types.NewBulletPoint("Go")},
	}}}, nil)
	rich := scoring.NewInput(testResume(), nil)

	low := scoreKeywordMatch(sparse, keywords)
	high := scoreKeywordMatch(rich, keywords)
	assert.GreaterOrEqual(t, high.Score, low.Score)
}

func TestScoreKeywordMatch_ListsMissing(t *testing.T) {
	input := scoring.NewInput(testResume(), nil)
	breakdown := scoreKeywordMatch(input, testKeywords())

	require.Len(t, breakdown.Details, 2)
	assert.Contains(t, breakdown.Details[0], "3 of 4 job keywords found")
	assert.Contains(t, breakdown.Details[1], "communication")
}

func TestScoreExperienceRelevance_NoEntries(t *testing.T) {
	input := scoring.NewInput(&types.Resume{Sections: []*types.Section{{
		Heading: "Skills",
		Kind:    types.KindSkills,
		Bullets: []types.BulletPoint{types.NewBulletPoint("Go")},
	}}}, nil)

	breakdown := scoreExperienceRelevance(input, testKeywords())
	assert.Zero(t, breakdown.Score)
	assert.Contains(t, breakdown.Details[0], "no experience entries")
}

func TestScoreExperienceRelevance_TitleAndKeywords(t *testing.T) {
	input := scoring.NewInput(testResume(), nil)

	// The single entry both matches the title and mentions keywords.
	breakdown := scoreExperienceRelevance(input, testKeywords())
	assert.InDelta(t, MaxExperienceRelevance, breakdown.Score, 0.001)
}

func TestScoreExperienceRelevance_MissingTitleGrantsTitlePoints(t *testing.T) {
	input := scoring.NewInput(testResume(), nil)
	keywords := &types.KeywordSet{Keywords: []types.Keyword{
		{Term: "elixir", Category: types.KeywordTechnical},
	}}

	breakdown := scoreExperienceRelevance(input, keywords)
	assert.InDelta(t, relevanceTitlePoints, breakdown.Score, 0.001)
}

func TestSignificantWords(t *testing.T) {
	words := significantWords("Senior Backend Engineer (Go/Platform)")
	assert.Equal(t, []string{"senior", "backend", "engineer", "go/platform"}, words)
}
