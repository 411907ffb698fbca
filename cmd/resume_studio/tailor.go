package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/jobdesc"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/suggest"
	"github.com/spf13/cobra"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a resume's content to a specific job posting",
	Long:  "Run a job-aware suggestion pass over every section: the posting's keywords and description are woven into the prompts, and the result is scored against the job.",
	RunE:  runTailor,
}

var (
	tailorInputFile  string
	tailorOutputFile string
	tailorJobFile    string
	tailorJobURL     string
	tailorJobTitle   string
	tailorAPIKey     string
	tailorVerbose    bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorInputFile, "in", "i", "", "Path to resume JSON (required)")
	tailorCmd.Flags().StringVarP(&tailorOutputFile, "out", "o", "", "Path to write the tailored resume (required)")
	tailorCmd.Flags().StringVar(&tailorJobFile, "job", "", "Path to job posting text or HTML file")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL to fetch the job posting from")
	tailorCmd.Flags().StringVar(&tailorJobTitle, "job-title", "", "Job title override for keyword extraction")
	tailorCmd.Flags().StringVar(&tailorAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print the extracted keywords and result summary")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	cfg, err := fileConfig()
	if err != nil {
		return err
	}
	config.Fill(&tailorInputFile, cfg.Resume)
	config.Fill(&tailorJobFile, cfg.Job)
	config.Fill(&tailorJobURL, cfg.JobURL)
	config.Fill(&tailorJobTitle, cfg.JobTitle)
	config.Fill(&tailorAPIKey, cfg.APIKey)
	tailorVerbose = tailorVerbose || cfg.Verbose

	if tailorInputFile == "" || tailorOutputFile == "" {
		return fmt.Errorf("--in and --out are required")
	}
	if tailorJobFile != "" && tailorJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	apiKey, err := resolveAPIKey(tailorAPIKey)
	if err != nil {
		return err
	}

	resume, err := loadResume(tailorInputFile)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	ctx := context.Background()
	jobText, err := loadJobText(ctx, tailorJobFile, tailorJobURL)
	if err != nil {
		return err
	}
	keywords := jobdesc.ExtractKeywords(tailorJobTitle, jobText)

	printer := observability.NewPrinter(os.Stdout)
	if tailorVerbose {
		printer.PrintKeywordSet(keywords)
	}

	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	job := &suggest.JobContext{
		Title:       keywords.JobTitle,
		Description: jobText,
		Keywords:    keywords,
	}

	fallbacks := 0
	for i, section := range resume.Sections {
		merged, usedFallback, err := suggest.Generate(ctx, client, section, nil, job)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: provider call failed for %q: %v\n", section.Heading, err)
		}
		if usedFallback {
			fallbacks++
		}
		resume.Sections[i] = merged
	}

	if err := writeJSONFile(tailorOutputFile, resume); err != nil {
		return err
	}

	if tailorVerbose {
		printer.PrintResumeSummary(resume)
	}
	fmt.Printf("Tailored resume written to %s (%d of %d sections fell back)\n",
		tailorOutputFile, fallbacks, len(resume.Sections))
	return nil
}
