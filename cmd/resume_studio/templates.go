package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [name]",
	Short: "List available resume templates or show one template's metadata",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplates,
}

var templatesDir string

func init() {
	templatesCmd.Flags().StringVar(&templatesDir, "dir", "templates", "Directory containing template metadata JSON files")

	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(_ *cobra.Command, args []string) error {
	cache := templates.NewCache(templatesDir)

	if len(args) == 1 {
		meta, err := cache.Get(args[0])
		if err != nil {
			return err
		}
		observability.NewPrinter(os.Stdout).PrintTemplate(meta)
		return nil
	}

	names, err := listTemplateNames(templatesDir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Printf("No templates found in %s\n", templatesDir)
		return nil
	}

	for _, name := range names {
		meta, err := cache.Get(name)
		if err != nil {
			return err
		}
		if meta.Description != "" {
			fmt.Printf("%s - %s\n", name, meta.Description)
		} else {
			fmt.Println(name)
		}
	}
	return nil
}

func listTemplateNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read template directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
	}
	sort.Strings(names)
	return names, nil
}
