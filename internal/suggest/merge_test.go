package suggest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func experienceSection() *types.Section {
	entry := types.NewEntry()
	entry.SetField("primary", "Acme Corp")
	entry.SetField("secondary", "Senior Engineer")
	entry.Bullets = []types.BulletPoint{
		types.NewBulletPoint("Led the rewrite"),
		types.NewBulletPoint("Cut latency by 40%"),
	}

	return &types.Section{
		ID:      "sec-1",
		Heading: "Experience",
		Kind:    types.KindExperience,
		Entries: []*types.Entry{entry},
	}
}

func summarySection() *types.Section {
	return &types.Section{
		ID:      "sec-2",
		Heading: "Summary",
		Kind:    types.KindSummary,
		Bullets: []types.BulletPoint{types.NewBulletPoint("Engineer with ten years of experience")},
	}
}

const validResponse = `{
	"sectionName": "Experience",
	"type": "experience",
	"entries": [{
		"id": "whatever-the-provider-echoed",
		"metadata": {
			"primary": {"original": "Acme Corp", "suggested": "Acme Corporation"},
			"secondary": "Staff Engineer"
		},
		"bullets": [
			{"id": "b1", "original": "Led the rewrite", "suggested": "Drove the platform rewrite"},
			{"id": "b2", "original": "Cut latency by 40%", "suggested": "Cut p99 latency by 40%"}
		]
	}]
}`

func TestParseResponse_DirectJSON(t *testing.T) {
	resp, err := ParseResponse(validResponse)
	require.NoError(t, err)
	assert.Equal(t, "Experience", resp.SectionName)
	require.Len(t, resp.Entries, 1)
}

func TestParseResponse_FencedJSON(t *testing.T) {
	resp, err := ParseResponse("```json\n" + validResponse + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "Experience", resp.SectionName)
}

func TestParseResponse_Malformed(t *testing.T) {
	for _, raw := range []string{"", "not json at all", `{"entries": []}`} {
		_, err := ParseResponse(raw)
		require.Error(t, err, "raw %q", raw)

		var formatErr *ProviderFormatError
		assert.True(t, errors.As(err, &formatErr), "raw %q", raw)
	}
}

func TestMerge_SuggestionsLandInSuggested(t *testing.T) {
	section := experienceSection()
	merged, usedFallback := Overlay(section, validResponse, nil)

	assert.False(t, usedFallback)
	entry := merged.Entries[0]
	assert.Equal(t, "Acme Corporation", entry.Field("primary").Suggested)
	assert.Equal(t, "Staff Engineer", entry.Field("secondary").Suggested)
	assert.Equal(t, "Drove the platform rewrite", entry.Bullets[0].Suggested)

	// Originals are never touched by a suggestion pass.
	assert.Equal(t, "Acme Corp", entry.Field("primary").Original)
	assert.Equal(t, "Led the rewrite", entry.Bullets[0].Original)
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	section := experienceSection()
	_, _ = Overlay(section, validResponse, nil)

	assert.Empty(t, section.Entries[0].Field("primary").Suggested)
	assert.Empty(t, section.Entries[0].Bullets[0].Suggested)
}

func TestMerge_ReplacesPreviousSuggestionsWholesale(t *testing.T) {
	section := experienceSection()
	section.Entries[0].Field("primary").Suggested = "Old Suggestion Inc"
	section.Entries[0].Bullets[1].Suggested = "old bullet suggestion"

	// New response only suggests for the first bullet.
	response := `{
		"sectionName": "Experience",
		"type": "experience",
		"entries": [{
			"id": "e1",
			"bullets": [{"id": "b1", "original": "Led the rewrite", "suggested": "New suggestion"}]
		}]
	}`

	merged, usedFallback := Overlay(section, response, nil)
	require.False(t, usedFallback)

	entry := merged.Entries[0]
	assert.Empty(t, entry.Field("primary").Suggested)
	assert.Empty(t, entry.Bullets[1].Suggested)
	assert.Equal(t, "New suggestion", entry.Bullets[0].Suggested)
}

func TestMerge_FinalSurvivesSuggestionPass(t *testing.T) {
	section := experienceSection()
	section.Entries[0].Bullets[0].Final = "User's own wording"

	merged, _ := Overlay(section, validResponse, nil)

	bullet := merged.Entries[0].Bullets[0]
	assert.Equal(t, "User's own wording", bullet.Final)
	assert.Equal(t, "User's own wording", bullet.Effective())
}

func TestMerge_PositionalEntryMatching(t *testing.T) {
	section := experienceSection()
	second := types.NewEntry()
	second.SetField("primary", "Beta Inc")
	section.Entries = append(section.Entries, second)

	// Provider ids are garbage; position is what counts.
	response := `{
		"sectionName": "Experience",
		"type": "experience",
		"entries": [
			{"id": "zzz", "metadata": {"primary": "First Suggestion"}},
			{"id": "aaa", "metadata": {"primary": "Second Suggestion"}}
		]
	}`

	merged, usedFallback := Overlay(section, response, nil)
	require.False(t, usedFallback)
	assert.Equal(t, "First Suggestion", merged.Entries[0].Field("primary").Suggested)
	assert.Equal(t, "Second Suggestion", merged.Entries[1].Field("primary").Suggested)
}

func TestMerge_ExtraResponseEntriesIgnored(t *testing.T) {
	section := experienceSection()
	response := `{
		"sectionName": "Experience",
		"type": "experience",
		"entries": [
			{"id": "e1", "metadata": {"primary": "Kept"}},
			{"id": "e2", "metadata": {"primary": "Dropped"}}
		]
	}`

	merged, _ := Overlay(section, response, nil)
	require.Len(t, merged.Entries, 1)
	assert.Equal(t, "Kept", merged.Entries[0].Field("primary").Suggested)
}

func TestMerge_UnexpectedProviderFieldAppended(t *testing.T) {
	section := experienceSection()
	response := `{
		"sectionName": "Experience",
		"type": "experience",
		"entries": [{
			"id": "e1",
			"metadata": {
				"primary": "Acme Corporation",
				"impact": {"original": "", "suggested": "Grew the team"}
			}
		}]
	}`

	merged, _ := Overlay(section, response, nil)
	entry := merged.Entries[0]
	assert.Equal(t, []string{"primary", "secondary", "impact"}, entry.FieldOrder)
	assert.Equal(t, "Grew the team", entry.Field("impact").Suggested)
}

func TestMerge_CallerFieldOrderTakesPrecedence(t *testing.T) {
	section := experienceSection()
	response := `{
		"sectionName": "Experience",
		"type": "experience",
		"entries": [{
			"id": "e1",
			"metadata": {"secondary": "Staff Engineer", "primary": "Acme Corporation"}
		}]
	}`

	merged, _ := Overlay(section, response, []string{"primary", "secondary"})
	entry := merged.Entries[0]
	assert.Equal(t, "Acme Corporation", entry.Field("primary").Suggested)
	assert.Equal(t, "Staff Engineer", entry.Field("secondary").Suggested)
	assert.Equal(t, []string{"primary", "secondary"}, entry.FieldOrder)
}

func TestMerge_SummaryBullets(t *testing.T) {
	section := summarySection()
	response := `{
		"sectionName": "Summary",
		"type": "summary",
		"summary": [{"id": "s1", "original": "x", "suggested": "Engineer who ships"}]
	}`

	merged, usedFallback := Overlay(section, response, nil)
	require.False(t, usedFallback)
	assert.Equal(t, "Engineer who ships", merged.Bullets[0].Suggested)
}

func TestMerge_SummaryFallsBackToFirstEntryBullets(t *testing.T) {
	section := summarySection()
	response := `{
		"sectionName": "Summary",
		"type": "summary",
		"entries": [{
			"id": "e1",
			"bullets": [{"id": "b1", "original": "x", "suggested": "Nested under an entry"}]
		}]
	}`

	merged, _ := Overlay(section, response, nil)
	assert.Equal(t, "Nested under an entry", merged.Bullets[0].Suggested)
}

func TestOverlay_MalformedUsesFallback(t *testing.T) {
	section := experienceSection()
	merged, usedFallback := Overlay(section, "total garbage", nil)

	assert.True(t, usedFallback)
	entry := merged.Entries[0]
	// The fallback suggests the original for every node.
	assert.Equal(t, "Acme Corp", entry.Field("primary").Suggested)
	assert.Equal(t, "Led the rewrite", entry.Bullets[0].Suggested)
	assert.Equal(t, entry.Field("primary").Original, entry.Field("primary").Suggested)
}

func TestOverlay_Idempotent(t *testing.T) {
	section := experienceSection()

	once, _ := Overlay(section, validResponse, nil)
	twice, _ := Overlay(once, validResponse, nil)

	assert.Equal(t, once.Entries[0].Field("primary").Suggested, twice.Entries[0].Field("primary").Suggested)
	assert.Equal(t, once.Entries[0].Bullets[0].Suggested, twice.Entries[0].Bullets[0].Suggested)
	assert.Equal(t, once.Entries[0].FieldOrder, twice.Entries[0].FieldOrder)
}

func TestFallback_CoversEveryNode(t *testing.T) {
	section := experienceSection()
	resp := Fallback(section)

	assert.Equal(t, "Experience", resp.SectionName)
	require.Len(t, resp.Entries, 1)
	require.Len(t, resp.Entries[0].Bullets, 2)
	for _, bullet := range resp.Entries[0].Bullets {
		assert.Equal(t, bullet.Original, bullet.Suggested)
	}
}
