// Package jobdesc turns a job posting, given as a URL, an HTML file, or
// plain text, into a categorized keyword set the job-specific score
// engine can grade against.
package jobdesc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the HTTP request timeout for posting fetches.
const DefaultTimeout = 30 * time.Second

const defaultUserAgent = "Mozilla/5.0 (compatible; ResumeStudio/1.0)"

// FetchError represents a failure to retrieve or parse a job posting.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job posting fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("job posting fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Platform is a recognized job board, used to pick content selectors.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformUnknown    Platform = "unknown"
)

// DetectPlatform identifies the job board from a posting URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Host)
	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com"), strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	default:
		return PlatformUnknown
	}
}

// contentSelectors returns the selectors to try for a platform, most
// specific first. Generic job board selectors are the fallback.
func contentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGreenhouse:
		return []string{".job__description.body", ".job__description", "#content", ".job-post-container"}
	case PlatformLever:
		return []string{".posting-page", ".posting-description", ".content"}
	case PlatformWorkday:
		return []string{"[data-automation-id='jobDescription']", ".job-description"}
	default:
		return []string{
			".job-description",
			"#job-description",
			".posting-content",
			".job-details",
			"[data-testid='job-description']",
			"main",
			"article",
			".content",
			"#content",
		}
	}
}

// Fetch retrieves a job posting URL and extracts its description text.
func Fetch(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &FetchError{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: DefaultTimeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to read response body", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	text, err := ExtractText(string(body), DetectPlatform(urlStr))
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to parse posting HTML", Cause: err}
	}
	return text, nil
}

// ExtractText parses posting HTML and returns the description text. Noise
// elements are stripped first; if no content selector matches, the whole
// body is used.
func ExtractText(html string, platform Platform) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range contentSelectors(platform) {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

var (
	multiSpaceRe   = regexp.MustCompile(`[ \t]+`)
	multiNewlineRe = regexp.MustCompile(`\n{3,}`)
)

// cleanWhitespace collapses runs of spaces and blank lines while keeping
// line structure, which the title sniffer depends on.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(multiSpaceRe.ReplaceAllString(line, " "))
	}
	joined := strings.Join(lines, "\n")
	joined = multiNewlineRe.ReplaceAllString(joined, "\n\n")
	return strings.TrimSpace(joined)
}
