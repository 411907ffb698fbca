// Package types provides type definitions for structured data used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/google/uuid"
)

// SectionKind is the discriminant assigned once at normalization time.
// Downstream consumers switch on it and never re-inspect raw payload shape.
type SectionKind string

// Known section kinds
const (
	KindContact        SectionKind = "contact"
	KindSummary        SectionKind = "summary"
	KindExperience     SectionKind = "experience"
	KindEducation      SectionKind = "education"
	KindSkills         SectionKind = "skills"
	KindProjects       SectionKind = "projects"
	KindCertifications SectionKind = "certifications"
	KindOther          SectionKind = "other"
)

// BulletPoint is an atomic editable unit. Original is immutable once set;
// Suggested is replaced wholesale on each AI pass; Final is set only by an
// explicit user save and is never auto-cleared.
type BulletPoint struct {
	ID        string `json:"id"`
	Original  string `json:"original"`
	Suggested string `json:"suggested,omitempty"`
	Final     string `json:"final,omitempty"`
}

// NewBulletPoint creates a bullet with a fresh identity.
func NewBulletPoint(original string) BulletPoint {
	return BulletPoint{ID: uuid.NewString(), Original: original}
}

// Effective returns the value a reader should see: final > suggested > original.
func (b BulletPoint) Effective() string {
	if b.Final != "" {
		return b.Final
	}
	if b.Suggested != "" {
		return b.Suggested
	}
	return b.Original
}

// Entry represents one item within a compound section (one job, one degree).
// Fields is keyed by field name; FieldOrder records the sequence the fields
// appeared in the source and is the only sanctioned iteration order.
type Entry struct {
	ID         string                  `json:"id"`
	Fields     map[string]*BulletPoint `json:"fields"`
	FieldOrder []string                `json:"field_order"`
	Bullets    []BulletPoint           `json:"bullets,omitempty"`
}

// NewEntry creates an empty entry with a fresh identity.
func NewEntry() *Entry {
	return &Entry{
		ID:     uuid.NewString(),
		Fields: make(map[string]*BulletPoint),
	}
}

// SetField assigns a field value, appending the key to FieldOrder if new.
func (e *Entry) SetField(key, original string) {
	if e.Fields == nil {
		e.Fields = make(map[string]*BulletPoint)
	}
	if _, exists := e.Fields[key]; !exists {
		e.FieldOrder = append(e.FieldOrder, key)
	}
	bp := NewBulletPoint(original)
	e.Fields[key] = &bp
}

// Field returns the field value for key, or nil if absent.
func (e *Entry) Field(key string) *BulletPoint {
	if e.Fields == nil {
		return nil
	}
	return e.Fields[key]
}

// Section is a named block of a resume. Exactly one of Bullets (simple
// sections) or Entries (compound sections) is populated; Kind records which
// branch the normalizer took.
type Section struct {
	ID      string        `json:"id"`
	Heading string        `json:"heading"`
	Kind    SectionKind   `json:"kind"`
	Bullets []BulletPoint `json:"bullets,omitempty"`
	Entries []*Entry      `json:"entries,omitempty"`
}

// Compound reports whether the section holds entries rather than bullets.
func (s *Section) Compound() bool {
	return s.Entries != nil
}

// Resume is the canonical structured document: an ordered list of sections.
type Resume struct {
	ID       uuid.UUID  `json:"id"`
	Title    string     `json:"title,omitempty"`
	Sections []*Section `json:"sections"`
}

// SectionByHeading returns the first section with the given heading, or nil.
// Headings are assumed unique within one resume; with duplicates this is a
// first-match lookup (side tables are keyed by section ID, not heading).
func (r *Resume) SectionByHeading(heading string) *Section {
	for _, s := range r.Sections {
		if s.Heading == heading {
			return s
		}
	}
	return nil
}
