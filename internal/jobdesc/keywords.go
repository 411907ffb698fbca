package jobdesc

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// Curated term tables. Matching is case-insensitive whole-word; terms the
// posting never mentions are not extracted.
var (
	technicalTerms = []string{
		"go", "golang", "python", "java", "javascript", "typescript", "c++", "rust",
		"sql", "nosql", "postgresql", "postgres", "mysql", "mongodb", "redis",
		"kafka", "rabbitmq", "graphql", "rest", "grpc", "api design",
		"aws", "gcp", "azure", "docker", "kubernetes", "terraform", "helm",
		"react", "node.js", "vue", "angular", "html", "css",
		"linux", "git", "bash", "ci/cd", "jenkins", "github actions",
		"machine learning", "data analysis", "data pipelines", "etl",
		"microservices", "distributed systems", "observability", "monitoring",
	}
	methodologyTerms = []string{
		"agile", "scrum", "kanban", "tdd", "test-driven development", "bdd",
		"devops", "sre", "code review", "pair programming", "continuous integration",
		"continuous delivery", "infrastructure as code", "design patterns",
		"system design", "capacity planning", "incident response", "on-call",
		"a/b testing", "root cause analysis",
	}
	softSkillTerms = []string{
		"leadership", "communication", "collaboration", "mentoring", "mentorship",
		"problem solving", "problem-solving", "teamwork", "cross-functional",
		"stakeholder management", "ownership", "initiative", "adaptability",
		"attention to detail", "time management", "decision making",
	}
)

// titleLineRe matches a line that looks like a role title rather than
// prose: short, no sentence punctuation, and containing a role noun.
var titleLineRe = regexp.MustCompile(`(?i)\b(engineer|developer|manager|analyst|scientist|designer|architect|consultant|administrator|specialist|lead|director)\b`)

// ExtractKeywords builds a categorized keyword set from job description
// text. jobTitle may be empty, in which case a title is sniffed from the
// opening lines of the text.
func ExtractKeywords(jobTitle, text string) *types.KeywordSet {
	if jobTitle == "" {
		jobTitle = sniffTitle(text)
	}
	set := &types.KeywordSet{JobTitle: jobTitle}

	set.Keywords = append(set.Keywords, matchTerms(text, technicalTerms, types.KeywordTechnical)...)
	set.Keywords = append(set.Keywords, matchTerms(text, methodologyTerms, types.KeywordMethodology)...)
	set.Keywords = append(set.Keywords, matchTerms(text, softSkillTerms, types.KeywordSoftSkill)...)

	// Most frequent first within the set, category order preserved by the
	// stable sort.
	sort.SliceStable(set.Keywords, func(i, j int) bool {
		return set.Keywords[i].Frequency > set.Keywords[j].Frequency
	})
	return set
}

// matchTerms returns a keyword for every curated term the text mentions.
func matchTerms(text string, terms []string, category types.KeywordCategory) []types.Keyword {
	var keywords []types.Keyword
	seen := make(map[string]bool)
	for _, term := range terms {
		canonical := canonicalTerm(term)
		if seen[canonical] {
			continue
		}
		count := countTerm(text, term)
		if count == 0 {
			continue
		}
		seen[canonical] = true
		keywords = append(keywords, types.Keyword{
			Term:      term,
			Category:  category,
			Frequency: count,
		})
	}
	return keywords
}

// canonicalTerm folds spelling variants of the same term.
func canonicalTerm(term string) string {
	normalized := strings.ToLower(strings.ReplaceAll(term, "-", " "))
	switch normalized {
	case "golang":
		return "go"
	case "postgres":
		return "postgresql"
	case "test driven development":
		return "tdd"
	case "mentorship":
		return "mentoring"
	}
	return normalized
}

// countTerm counts case-insensitive whole-word occurrences of term.
// Terms with a non-word edge character (c++) fall back to plain
// substring counting since \b misfires on them.
func countTerm(text, term string) int {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	if err != nil {
		return 0
	}
	if !wordEdged(term) {
		return strings.Count(strings.ToLower(text), strings.ToLower(term))
	}
	return len(re.FindAllStringIndex(text, -1))
}

// wordEdged reports whether both ends of the term are word characters,
// making \b anchors reliable.
func wordEdged(term string) bool {
	if term == "" {
		return false
	}
	isWord := func(r byte) bool {
		return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	}
	return isWord(term[0]) && isWord(term[len(term)-1])
}

// sniffTitle guesses the role title from the opening lines of a posting.
func sniffTitle(text string) string {
	lines := strings.Split(text, "\n")
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || len(strings.Fields(line)) > 8 {
			continue
		}
		if strings.ContainsAny(line, ".!?") {
			continue
		}
		if titleLineRe.MatchString(line) {
			return line
		}
	}
	return ""
}
