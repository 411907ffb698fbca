package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/projection"
	"github.com/jonathan/resume-studio/internal/reconcile"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Project a section to plain text, or reconcile an edited text back",
	Long:  "Without --text, prints a section's plain-text projection for editing. With --text, reconciles the edited text back into the structured section and writes the updated resume.",
	RunE:  runEdit,
}

var (
	editInputFile   string
	editOutputFile  string
	editSection     string
	editTextFile    string
	editDatabaseURL string
)

func init() {
	editCmd.Flags().StringVarP(&editInputFile, "in", "i", "", "Path to resume JSON (required)")
	editCmd.Flags().StringVarP(&editOutputFile, "out", "o", "", "Path to write the updated resume (required with --text)")
	editCmd.Flags().StringVarP(&editSection, "section", "s", "", "Section heading to edit (required)")
	editCmd.Flags().StringVar(&editTextFile, "text", "", "Path to the edited plain-text file")
	editCmd.Flags().StringVar(&editDatabaseURL, "db-url", "", "PostgreSQL URL to persist the committed edit")

	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, _ []string) error {
	cfg, err := fileConfig()
	if err != nil {
		return err
	}
	config.Fill(&editInputFile, cfg.Resume)
	config.Fill(&editDatabaseURL, cfg.DatabaseURL)

	if editInputFile == "" || editSection == "" {
		return fmt.Errorf("--in and --section are required")
	}

	resume, err := loadResume(editInputFile)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	index := -1
	for i, section := range resume.Sections {
		if strings.EqualFold(section.Heading, editSection) {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("section %q not found", editSection)
	}
	section := resume.Sections[index]

	// Projection mode: print the editable text and stop.
	if editTextFile == "" {
		fmt.Println(projection.PlainText(section))
		return nil
	}

	if editOutputFile == "" {
		return fmt.Errorf("--out is required with --text")
	}

	data, err := os.ReadFile(editTextFile)
	if err != nil {
		return fmt.Errorf("failed to read edited text: %w", err)
	}
	text := string(data)

	resume.Sections[index] = reconcile.Section(section, text)

	if err := writeJSONFile(editOutputFile, resume); err != nil {
		return err
	}

	if editDatabaseURL != "" && resume.ID != uuid.Nil {
		sectionID, err := uuid.Parse(section.ID)
		if err != nil {
			return fmt.Errorf("section %q has a non-UUID id: %w", section.Heading, err)
		}

		ctx := context.Background()
		store, err := db.Connect(ctx, editDatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.UpsertFinalEdit(ctx, resume.ID, sectionID, nil, text); err != nil {
			return err
		}
		fmt.Printf("Committed edit saved for section %s\n", section.ID)
	}

	fmt.Printf("Updated resume written to %s\n", editOutputFile)
	return nil
}
