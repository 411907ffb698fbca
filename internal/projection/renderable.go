package projection

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/parsing"
	"github.com/jonathan/resume-studio/internal/types"
)

// RenderableEntry is the flattened per-entry shape handed to the layout
// collaborator: three header scalars plus the bullet list.
type RenderableEntry struct {
	Primary   string   `json:"primary,omitempty"`
	Secondary string   `json:"secondary,omitempty"`
	Meta      string   `json:"meta,omitempty"`
	Bullets   []string `json:"bullets,omitempty"`
}

// RenderableSection is a section reduced to what layout needs.
type RenderableSection struct {
	Heading string            `json:"heading"`
	Kind    types.SectionKind `json:"kind"`
	Summary []string          `json:"summary,omitempty"`
	Entries []RenderableEntry `json:"entries,omitempty"`
}

// Renderable projects a canonical section to its layout shape using
// effective values.
func Renderable(section *types.Section) *RenderableSection {
	out := &RenderableSection{
		Heading: section.Heading,
		Kind:    section.Kind,
	}

	for _, bullet := range section.Bullets {
		if v := strings.TrimSpace(bullet.Effective()); v != "" {
			out.Summary = append(out.Summary, v)
		}
	}

	for _, entry := range section.Entries {
		out.Entries = append(out.Entries, renderableEntry(entry))
	}

	return out
}

// RenderableFromText builds the layout shape from free text via the line
// classifier. Fallback path only; the structured path is always preferred.
func RenderableFromText(heading, text string) *RenderableSection {
	return Renderable(sectionFromText(heading, text))
}

// renderableEntry flattens one entry. The canonical primary/secondary/meta
// fields map directly; other fields are folded into meta in field order so
// nothing is silently dropped.
func renderableEntry(entry *types.Entry) RenderableEntry {
	out := RenderableEntry{}
	var extras []string

	for _, key := range entry.FieldOrder {
		field := entry.Field(key)
		if field == nil {
			continue
		}
		value := strings.TrimSpace(field.Effective())
		if value == "" {
			continue
		}
		switch key {
		case parsing.FieldPrimary:
			out.Primary = value
		case parsing.FieldSecondary:
			out.Secondary = value
		case parsing.FieldMeta:
			out.Meta = value
		default:
			switch {
			case out.Primary == "":
				out.Primary = value
			case out.Secondary == "":
				out.Secondary = value
			default:
				extras = append(extras, value)
			}
		}
	}

	if len(extras) > 0 {
		if out.Meta != "" {
			extras = append([]string{out.Meta}, extras...)
		}
		out.Meta = strings.Join(extras, " | ")
	}

	for _, bullet := range entry.Bullets {
		if v := strings.TrimSpace(bullet.Effective()); v != "" {
			out.Bullets = append(out.Bullets, v)
		}
	}

	return out
}
