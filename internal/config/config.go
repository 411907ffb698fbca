// Package config loads CLI defaults from a JSON config file. Flags always
// win over file values; the file only fills what the user left unset.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the file-configurable CLI settings. Every field is
// optional.
type Config struct {
	Resume      string `json:"resume,omitempty"`
	Job         string `json:"job,omitempty"`
	JobURL      string `json:"job_url,omitempty"`
	JobTitle    string `json:"job_title,omitempty"`
	APIKey      string `json:"api_key,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`
	Verbose     bool   `json:"verbose,omitempty"`
}

// Load reads and parses a config file. Relative paths are resolved
// against the working directory.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// Validate rejects contradictory or dangling settings. Presence of
// required values is checked later, after flags are merged in.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}
	for name, path := range map[string]string{"resume": c.Resume, "job": c.Job} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}
	return nil
}

// Fill sets target to fallback when target is empty. Used to layer file
// values under flag values.
func Fill(target *string, fallback string) {
	if *target == "" {
		*target = fallback
	}
}
