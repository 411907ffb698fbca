// Package prompts holds the suggestion prompt templates, embedded at
// compile time and addressed by key. Placeholders use {{.Name}} syntax
// and are substituted with Format.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed suggest.json
var promptFS embed.FS

const catalogFile = "suggest.json"

var catalog struct {
	mu      sync.RWMutex
	entries map[string]string
}

// load parses the embedded catalog once and memoizes it.
func load() (map[string]string, error) {
	catalog.mu.RLock()
	entries := catalog.entries
	catalog.mu.RUnlock()
	if entries != nil {
		return entries, nil
	}

	data, err := promptFS.ReadFile(catalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt catalog: %w", err)
	}
	parsed := make(map[string]string)
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse prompt catalog: %w", err)
	}

	catalog.mu.Lock()
	catalog.entries = parsed
	catalog.mu.Unlock()
	return parsed, nil
}

// Get returns the template for a prompt key.
func Get(key string) (string, error) {
	entries, err := load()
	if err != nil {
		return "", err
	}
	template, ok := entries[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return template, nil
}

// MustGet returns the template for a key, panicking when absent. The
// catalog is embedded, so a missing key is a build defect.
func MustGet(key string) string {
	template, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Name}} placeholders with values from data.
func Format(template string, data map[string]string) string {
	for key, value := range data {
		template = strings.ReplaceAll(template, "{{."+key+"}}", value)
	}
	return template
}

// Keys lists the catalog's prompt keys, sorted.
func Keys() ([]string, error) {
	entries, err := load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// ClearCache drops the memoized catalog. Test hook.
func ClearCache() {
	catalog.mu.Lock()
	catalog.entries = nil
	catalog.mu.Unlock()
}
