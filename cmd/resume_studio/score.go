package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/jobdesc"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/scoring"
	"github.com/jonathan/resume-studio/internal/tailoring"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume, generically and optionally against a job posting",
	Long:  "Compute the generic 0-100 heuristic score for a resume. When a job posting is supplied, the job-specific score is computed alongside it.",
	RunE:  runScore,
}

var (
	scoreInputFile   string
	scoreJobFile     string
	scoreJobURL      string
	scoreJobTitle    string
	scoreJobID       string
	scoreDatabaseURL string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInputFile, "in", "i", "", "Path to resume JSON (required)")
	scoreCmd.Flags().StringVar(&scoreJobFile, "job", "", "Path to job posting text or HTML file")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch the job posting from")
	scoreCmd.Flags().StringVar(&scoreJobTitle, "job-title", "", "Job title override for keyword extraction")
	scoreCmd.Flags().StringVar(&scoreJobID, "job-id", "", "Explicit job UUID for score history and baselines")
	scoreCmd.Flags().StringVar(&scoreDatabaseURL, "db-url", "", "PostgreSQL URL for committed edits, baselines, and score history")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := fileConfig()
	if err != nil {
		return err
	}
	config.Fill(&scoreInputFile, cfg.Resume)
	config.Fill(&scoreJobFile, cfg.Job)
	config.Fill(&scoreJobURL, cfg.JobURL)
	config.Fill(&scoreJobTitle, cfg.JobTitle)
	config.Fill(&scoreDatabaseURL, cfg.DatabaseURL)

	if scoreInputFile == "" {
		return fmt.Errorf("--in is required")
	}
	if scoreJobFile != "" && scoreJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	resume, err := loadResume(scoreInputFile)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	ctx := context.Background()

	var store *db.DB
	if scoreDatabaseURL != "" {
		store, err = db.Connect(ctx, scoreDatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	withJob := scoreJobFile != "" || scoreJobURL != ""

	// Committed edits override structured content during scoring. The
	// store keys them by section ID; the extractors expect headings.
	var edits map[string]string
	if store != nil && resume.ID != uuid.Nil {
		byID, err := store.GetSectionEdits(ctx, resume.ID, nil)
		if err != nil {
			return err
		}
		if len(byID) > 0 {
			edits = make(map[string]string, len(byID))
			for _, section := range resume.Sections {
				if text, ok := byID[section.ID]; ok {
					edits[section.Heading] = text
				}
			}
		}
	}

	// Each posting gets its own identity so score rows and baselines for
	// different jobs never collapse into one.
	var keywords *types.KeywordSet
	var jobID *uuid.UUID
	if withJob {
		jobText, err := loadJobText(ctx, scoreJobFile, scoreJobURL)
		if err != nil {
			return err
		}
		keywords = jobdesc.ExtractKeywords(scoreJobTitle, jobText)
		jobID, err = jobIdentity(scoreJobID, scoreJobURL, jobText)
		if err != nil {
			return err
		}
	}

	var baseline *float64
	if withJob && store != nil && resume.ID != uuid.Nil {
		baseline, err = store.GetBaseline(ctx, resume.ID, jobID)
		if err != nil {
			return err
		}
	}

	// The two engines are independent; run them concurrently when both
	// are requested.
	var generic, jobReport *types.ScoreReport
	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		generic = scoring.Score(resume, edits)
		return nil
	})
	if withJob {
		group.Go(func() error {
			jobReport = tailoring.Score(resume, edits, keywords, baseline)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScoreReport("Generic Score", generic)
	if jobReport != nil {
		printer.PrintKeywordSet(keywords)
		printer.PrintScoreReport("Job-Specific Score", jobReport)
	}

	if store != nil && resume.ID != uuid.Nil {
		if _, err := store.SaveScore(ctx, resume.ID, nil, db.ScoreTypeGeneric, generic.Overall, generic.Breakdown); err != nil {
			return err
		}
		if jobReport != nil {
			if _, err := store.SaveScore(ctx, resume.ID, jobID, db.ScoreTypeJob, jobReport.Overall, jobReport.Breakdown); err != nil {
				return err
			}
			// First pass against this job becomes its baseline; later
			// passes leave it untouched.
			if err := store.SaveBaseline(ctx, resume.ID, jobID, float64(jobReport.Overall)); err != nil {
				return err
			}
		}
	}

	return nil
}

// jobIdentity pins a job posting to a stable UUID. An explicit --job-id
// wins; otherwise the posting URL identifies it, and file-based postings
// hash their text.
func jobIdentity(explicit, jobURL, jobText string) (*uuid.UUID, error) {
	var id uuid.UUID
	switch {
	case explicit != "":
		parsed, err := uuid.Parse(explicit)
		if err != nil {
			return nil, fmt.Errorf("invalid --job-id: %w", err)
		}
		id = parsed
	case jobURL != "":
		id = uuid.NewSHA1(uuid.NameSpaceURL, []byte(jobURL))
	default:
		id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(jobText))
	}
	return &id, nil
}
