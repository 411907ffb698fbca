package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-studio/internal/jobdesc"
	"github.com/jonathan/resume-studio/internal/parsing"
	"github.com/jonathan/resume-studio/internal/types"
)

// loadResume reads a resume from a JSON file. Both shapes are accepted:
// a raw payload (heading + opaque body per section) and an already
// normalized resume written by a previous run.
func loadResume(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	// A normalized resume has section kinds; a raw payload does not.
	var normalized types.Resume
	if err := json.Unmarshal(data, &normalized); err == nil &&
		len(normalized.Sections) > 0 && normalized.Sections[0].Kind != "" {
		return &normalized, nil
	}

	return parsing.ParseDocument(data)
}

// loadJobText resolves the job posting from either a URL or a local file.
// HTML content is stripped to visible text.
func loadJobText(ctx context.Context, jobFile, jobURL string) (string, error) {
	if jobURL != "" {
		return jobdesc.Fetch(ctx, jobURL)
	}
	if jobFile == "" {
		return "", fmt.Errorf("a job posting is required (use --job or --job-url)")
	}

	data, err := os.ReadFile(jobFile)
	if err != nil {
		return "", fmt.Errorf("failed to read job file: %w", err)
	}
	content := string(data)
	if looksLikeHTML(jobFile, content) {
		return jobdesc.ExtractText(content, jobdesc.PlatformUnknown)
	}
	return content, nil
}

func looksLikeHTML(path, content string) bool {
	if strings.HasSuffix(path, ".html") || strings.HasSuffix(path, ".htm") {
		return true
	}
	head := strings.ToLower(strings.TrimSpace(content))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// resolveAPIKey applies flag-over-environment precedence for the Gemini key.
func resolveAPIKey(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
}

// writeJSONFile writes a value as indented JSON.
func writeJSONFile(path string, value any) error {
	jsonBytes, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
