package jobdesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

const samplePosting = `Senior Backend Engineer
Acme Corp - Remote

We build payment infrastructure in Go and Python, backed by PostgreSQL
and Kafka. You will own services end to end, from design through
deployment on Kubernetes.

What you'll do:
- Design and ship Go microservices
- Lead code review and mentoring across the team
- Drive agile delivery with strong communication

Requirements:
- 5+ years with Go or Python
- Experience with PostgreSQL, Kafka, Kubernetes
- Comfortable with CI/CD and incident response`

func TestExtractKeywords_Categories(t *testing.T) {
	set := ExtractKeywords("", samplePosting)

	byTerm := make(map[string]types.Keyword)
	for _, k := range set.Keywords {
		byTerm[k.Term] = k
	}

	require.Contains(t, byTerm, "go")
	assert.Equal(t, types.KeywordTechnical, byTerm["go"].Category)
	require.Contains(t, byTerm, "agile")
	assert.Equal(t, types.KeywordMethodology, byTerm["agile"].Category)
	require.Contains(t, byTerm, "communication")
	assert.Equal(t, types.KeywordSoftSkill, byTerm["communication"].Category)
	require.Contains(t, byTerm, "ci/cd")
	require.Contains(t, byTerm, "incident response")
}

func TestExtractKeywords_SniffsTitle(t *testing.T) {
	set := ExtractKeywords("", samplePosting)
	assert.Equal(t, "Senior Backend Engineer", set.JobTitle)
}

func TestExtractKeywords_ExplicitTitleWins(t *testing.T) {
	set := ExtractKeywords("Staff Platform Engineer", samplePosting)
	assert.Equal(t, "Staff Platform Engineer", set.JobTitle)
}

func TestExtractKeywords_FrequencyOrdering(t *testing.T) {
	set := ExtractKeywords("", samplePosting)
	require.NotEmpty(t, set.Keywords)

	for i := 1; i < len(set.Keywords); i++ {
		assert.GreaterOrEqual(t, set.Keywords[i-1].Frequency, set.Keywords[i].Frequency)
	}
}

func TestExtractKeywords_VariantsFolded(t *testing.T) {
	set := ExtractKeywords("", "We use Go and Golang daily. Postgres is our database, also called PostgreSQL.")

	terms := make([]string, 0, len(set.Keywords))
	for _, k := range set.Keywords {
		terms = append(terms, k.Term)
	}
	assert.Contains(t, terms, "go")
	assert.NotContains(t, terms, "golang")
	assert.Contains(t, terms, "postgresql")
	assert.NotContains(t, terms, "postgres")
}

func TestExtractKeywords_NoMatches(t *testing.T) {
	set := ExtractKeywords("", "We sell artisanal cheese at farmers markets.")
	assert.Empty(t, set.Keywords)
}

func TestCountTerm_WholeWord(t *testing.T) {
	assert.Equal(t, 2, countTerm("Go is great. We love Go.", "go"))
	assert.Zero(t, countTerm("Django developer wanted", "go"))
}

func TestCountTerm_SymbolEdgedTerms(t *testing.T) {
	assert.Equal(t, 1, countTerm("Modern C++ experience required", "c++"))
	assert.Equal(t, 2, countTerm("CI/CD pipelines; we live ci/cd", "ci/cd"))
	assert.Equal(t, 1, countTerm("Node.js services", "node.js"))
}

func TestSniffTitle(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected string
	}{
		{"first line", "Platform Engineer\nAcme Corp", "Platform Engineer"},
		{"skips blank and prose", "\nWe are a fast-growing startup. Join us!\nData Scientist\nRemote", "Data Scientist"},
		{"skips long lines", "Senior Staff Principal Distinguished Engineering Leader of Global Platform Infrastructure Teams\nEngineering Manager", "Engineering Manager"},
		{"skips sentences", "Come work as an engineer with us.\nSoftware Developer", "Software Developer"},
		{"no candidate", "Great pay. Free snacks.", ""},
		{"only scans opening lines", "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\nSoftware Engineer", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, sniffTitle(tc.text))
		})
	}
}

func TestWordEdged(t *testing.T) {
	assert.True(t, wordEdged("kubernetes"))
	assert.True(t, wordEdged("github actions"))
	assert.True(t, wordEdged("ci/cd"))
	assert.False(t, wordEdged("c++"))
	assert.False(t, wordEdged(""))
}
