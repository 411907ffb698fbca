package tailoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// categoryWeights biases matching toward terms that gate screening.
var categoryWeights = map[types.KeywordCategory]float64{
	types.KeywordTechnical:   1.5,
	types.KeywordMethodology: 1.3,
	types.KeywordSoftSkill:   1.0,
}

// Frequency bonus per extra occurrence of a matched keyword, capped.
const (
	frequencyBonusStep = 0.5
	frequencyBonusCap  = 2
)

// categoryWeight returns the weight for a category, defaulting to the
// soft-skill weight for unknown categories.
func categoryWeight(category types.KeywordCategory) float64 {
	if w, ok := categoryWeights[category]; ok {
		return w
	}
	return categoryWeights[types.KeywordSoftSkill]
}

// countOccurrences counts keyword occurrences in text. A whole-word match
// is tried first; when that fails, a whitespace-tolerant partial match
// catches compound terms split across line breaks.
func countOccurrences(text, term string) int {
	term = strings.TrimSpace(term)
	if term == "" {
		return 0
	}

	whole, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	if err == nil {
		if n := len(whole.FindAllStringIndex(text, -1)); n > 0 {
			return n
		}
	}

	words := strings.Fields(term)
	parts := make([]string, len(words))
	for i, word := range words {
		parts[i] = regexp.QuoteMeta(word)
	}
	partial, err := regexp.Compile(`(?i)` + strings.Join(parts, `\s+`))
	if err != nil {
		return 0
	}
	return len(partial.FindAllStringIndex(text, -1))
}

// keywordMatch is the result of matching one keyword against the resume.
type keywordMatch struct {
	Keyword     types.Keyword
	Occurrences int
	Weight      float64
	Earned      float64
}

// matchKeywords evaluates every keyword and returns per-keyword results
// plus the total possible weight.
func matchKeywords(text string, set *types.KeywordSet) (matches []keywordMatch, possible float64) {
	for _, keyword := range set.Keywords {
		weight := categoryWeight(keyword.Category)
		possible += weight

		occurrences := countOccurrences(text, keyword.Term)
		earned := 0.0
		if occurrences > 0 {
			extra := occurrences - 1
			if extra > frequencyBonusCap {
				extra = frequencyBonusCap
			}
			earned = weight + float64(extra)*frequencyBonusStep
		}
		matches = append(matches, keywordMatch{
			Keyword:     keyword,
			Occurrences: occurrences,
			Weight:      weight,
			Earned:      earned,
		})
	}
	return matches, possible
}
