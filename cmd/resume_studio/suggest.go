package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/suggest"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Run an AI suggestion pass over resume sections",
	Long:  "Generate improvement suggestions for one section or every section of a resume. Unusable provider responses degrade to a no-op suggestion pass rather than failing.",
	RunE:  runSuggest,
}

var (
	suggestInputFile  string
	suggestOutputFile string
	suggestSection    string
	suggestAPIKey     string
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestInputFile, "in", "i", "", "Path to resume JSON (required)")
	suggestCmd.Flags().StringVarP(&suggestOutputFile, "out", "o", "", "Path to write the resume with suggestions (required)")
	suggestCmd.Flags().StringVarP(&suggestSection, "section", "s", "", "Section heading to suggest for (default: all sections)")
	suggestCmd.Flags().StringVar(&suggestAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, _ []string) error {
	cfg, err := fileConfig()
	if err != nil {
		return err
	}
	config.Fill(&suggestInputFile, cfg.Resume)
	config.Fill(&suggestAPIKey, cfg.APIKey)

	if suggestInputFile == "" || suggestOutputFile == "" {
		return fmt.Errorf("--in and --out are required")
	}

	apiKey, err := resolveAPIKey(suggestAPIKey)
	if err != nil {
		return err
	}

	resume, err := loadResume(suggestInputFile)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	fallbacks := 0
	matched := false
	for i, section := range resume.Sections {
		if suggestSection != "" && !strings.EqualFold(section.Heading, suggestSection) {
			continue
		}
		matched = true

		merged, usedFallback, err := suggest.Generate(ctx, client, section, nil, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: provider call failed for %q: %v\n", section.Heading, err)
		}
		if usedFallback {
			fallbacks++
		}
		resume.Sections[i] = merged
	}

	if suggestSection != "" && !matched {
		return fmt.Errorf("section %q not found", suggestSection)
	}

	if err := writeJSONFile(suggestOutputFile, resume); err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintResumeSummary(resume)
	if fallbacks > 0 {
		fmt.Printf("Suggestions written to %s (%d sections fell back to originals)\n", suggestOutputFile, fallbacks)
	} else {
		fmt.Printf("Suggestions written to %s\n", suggestOutputFile)
	}
	return nil
}
