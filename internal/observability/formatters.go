// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 6
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreReport outputs a category-by-category score breakdown.
func (p *Printer) PrintScoreReport(title string, report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %d / 100\n", report.Overall))
	for _, category := range report.Breakdown {
		sb.WriteString(fmt.Sprintf("\n%s: %.1f / %.0f\n", category.Category, category.Score, category.MaxScore))
		for _, detail := range category.Details {
			sb.WriteString(fmt.Sprintf("  %s\n", detail))
		}
	}

	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}

// PrintResumeSummary outputs the section structure of a parsed resume.
func (p *Printer) PrintResumeSummary(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", resume.Title))
	sb.WriteString(fmt.Sprintf("Sections: %d\n\n", len(resume.Sections)))
	for _, section := range resume.Sections {
		if section.Compound() {
			sb.WriteString(fmt.Sprintf("  %s (%s): %d entries\n", section.Heading, section.Kind, len(section.Entries)))
		} else {
			sb.WriteString(fmt.Sprintf("  %s (%s): %d bullets\n", section.Heading, section.Kind, len(section.Bullets)))
		}
	}

	p.printBox("Parsed Resume", strings.TrimRight(sb.String(), "\n"))
}

// PrintTemplate outputs one resume template's metadata.
func (p *Printer) PrintTemplate(meta *templates.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", meta.Name))
	if meta.Description != "" {
		sb.WriteString(fmt.Sprintf("About:     %s\n", meta.Description))
	}
	if meta.FontSize != "" {
		sb.WriteString(fmt.Sprintf("Font size: %s\n", meta.FontSize))
	}
	if meta.Margins != "" {
		sb.WriteString(fmt.Sprintf("Margins:   %s\n", meta.Margins))
	}
	if len(meta.Sections) > 0 {
		sb.WriteString("Sections:\n")
		for _, section := range meta.Sections {
			sb.WriteString(fmt.Sprintf("  • %s\n", section))
		}
	}

	p.printBox("Template", strings.TrimRight(sb.String(), "\n"))
}

// PrintKeywordSet outputs the keywords extracted from a job posting.
func (p *Printer) PrintKeywordSet(set *types.KeywordSet) {
	if set == nil {
		return
	}

	var sb strings.Builder
	if set.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Job title: %s\n\n", set.JobTitle))
	}

	byCategory := make(map[types.KeywordCategory][]string)
	for _, keyword := range set.Keywords {
		byCategory[keyword.Category] = append(byCategory[keyword.Category], keyword.Term)
	}
	for _, category := range []types.KeywordCategory{types.KeywordTechnical, types.KeywordMethodology, types.KeywordSoftSkill} {
		terms := byCategory[category]
		if len(terms) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", category))
		count := len(terms)
		if count > maxItemsToShow {
			count = maxItemsToShow
		}
		for _, term := range terms[:count] {
			sb.WriteString(fmt.Sprintf("  • %s\n", term))
		}
		if len(terms) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(terms)-maxItemsToShow))
		}
	}

	p.printBox("Job Keywords", strings.TrimRight(sb.String(), "\n"))
}
