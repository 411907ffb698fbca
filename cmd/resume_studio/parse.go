package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Normalize a raw resume payload into the structured section model",
	Long:  "Parse a raw resume payload JSON file into the structured section model: classified sections, ordered entry fields, and identified bullets.",
	RunE:  runParse,
}

var (
	parseInputFile   string
	parseOutputFile  string
	parseDatabaseURL string
	parseVerbose     bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to raw resume payload JSON (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to write the normalized resume JSON")
	parseCmd.Flags().StringVar(&parseDatabaseURL, "db-url", "", "PostgreSQL URL to persist the parsed resume")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print the parsed section structure")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg, err := fileConfig()
	if err != nil {
		return err
	}
	config.Fill(&parseInputFile, cfg.Resume)
	config.Fill(&parseDatabaseURL, cfg.DatabaseURL)
	parseVerbose = parseVerbose || cfg.Verbose

	if parseInputFile == "" {
		return fmt.Errorf("--in is required")
	}

	resume, err := loadResume(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	if parseVerbose {
		observability.NewPrinter(os.Stdout).PrintResumeSummary(resume)
	}

	if parseOutputFile != "" {
		if err := writeJSONFile(parseOutputFile, resume); err != nil {
			return err
		}
		fmt.Printf("Output: %s\n", parseOutputFile)
	}

	if parseDatabaseURL != "" {
		ctx := context.Background()
		store, err := db.Connect(ctx, parseDatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()

		if resume.ID == uuid.Nil {
			resume.ID = uuid.New()
		}
		if err := store.SaveResume(ctx, resume.ID, resume.Title, resume.Sections); err != nil {
			return err
		}
		fmt.Printf("Saved resume %s\n", resume.ID)
	}

	fmt.Printf("Parsed %d sections\n", len(resume.Sections))
	return nil
}
