// Package main provides the resume-studio CLI: parse resume payloads,
// score them, tailor them to job postings, and round-trip plain-text edits.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-studio/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume-studio",
	Short: "Resume document model, score engines, and suggestion workflow",
	Long:  "Resume Studio normalizes raw resume payloads into a structured section model, scores them generically and against job postings, and manages AI suggestion and plain-text edit round trips.",
}

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a JSON config file supplying flag defaults")
}

// fileConfig loads the --config file when given. Flag values always win;
// callers layer the file's values under unset flags with config.Fill.
func fileConfig() (*config.Config, error) {
	if configFile == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
