// Package templates caches resume template metadata loaded from JSON
// files. The cache is an explicit object constructed once at startup and
// passed by reference, with invalidation hooks, rather than a module-level
// memoized singleton.
package templates

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Metadata describes one resume template.
type Metadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Sections    []string `json:"sections,omitempty"`
	FontSize    string   `json:"font_size,omitempty"`
	Margins     string   `json:"margins,omitempty"`
}

// Cache loads and memoizes template metadata by template name. Loads are
// lazy; entries stay cached until invalidated.
type Cache struct {
	dir string

	mu      sync.RWMutex
	entries map[string]*Metadata
}

// NewCache creates a cache over a template directory. Each template's
// metadata lives at <dir>/<name>.json.
func NewCache(dir string) *Cache {
	return &Cache{
		dir:     dir,
		entries: make(map[string]*Metadata),
	}
}

// Get returns the metadata for a template, loading it on first use.
func (c *Cache) Get(name string) (*Metadata, error) {
	c.mu.RLock()
	if meta, ok := c.entries[name]; ok {
		c.mu.RUnlock()
		return meta, nil
	}
	c.mu.RUnlock()

	meta, err := c.load(name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[name] = meta
	c.mu.Unlock()
	return meta, nil
}

// Invalidate drops one template from the cache so the next Get reloads it.
func (c *Cache) Invalidate(name string) {
	c.mu.Lock()
	delete(c.entries, name)
	c.mu.Unlock()
}

// Reset drops every cached entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[string]*Metadata)
	c.mu.Unlock()
}

func (c *Cache) load(name string) (*Metadata, error) {
	path := filepath.Join(c.dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template metadata %s: %w", path, err)
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse template metadata %s: %w", path, err)
	}
	if meta.Name == "" {
		meta.Name = name
	}
	return &meta, nil
}
