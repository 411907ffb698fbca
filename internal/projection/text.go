// Package projection renders canonical sections to plain text for manual
// editing and to a renderable shape for layout.
package projection

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-studio/internal/parsing"
	"github.com/jonathan/resume-studio/internal/types"
)

// labelPrefixRe matches a leading "label:" (optionally bulleted) so a
// field's own key is not re-emitted as prose.
var labelPrefixRe = regexp.MustCompile(`^\s*(?:[•◦▪‣*-]\s*)?[A-Za-z][A-Za-z _/]{0,29}:\s*`)

// maxLabelStrips bounds repeated label stripping per line
const maxLabelStrips = 3

// StripLabel removes up to three leading "label:" prefixes from a line.
func StripLabel(line string) string {
	for i := 0; i < maxLabelStrips; i++ {
		stripped := labelPrefixRe.ReplaceAllString(line, "")
		if stripped == line {
			break
		}
		line = stripped
	}
	return strings.TrimSpace(line)
}

// PlainText renders a section for the editing surface: heading, then each
// entry's field values and bullets newline-joined, with one blank line
// between entries. Contact sections keep their labels; every other kind
// strips leading "label:" prefixes. Values shown are effective values
// (final over suggested over original).
func PlainText(section *types.Section) string {
	var blocks []string

	if len(section.Entries) > 0 {
		for _, entry := range section.Entries {
			lines := entryLines(entry, section.Kind != types.KindContact)
			if len(lines) > 0 {
				blocks = append(blocks, strings.Join(lines, "\n"))
			}
		}
	}

	if len(section.Bullets) > 0 {
		lines := make([]string, 0, len(section.Bullets))
		for _, bullet := range section.Bullets {
			line := bullet.Effective()
			if section.Kind != types.KindContact {
				line = StripLabel(line)
			}
			if strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}

	body := strings.Join(blocks, "\n\n")
	if body == "" {
		return section.Heading
	}
	return section.Heading + "\n" + body
}

// entryLines renders one entry: fields in FieldOrder, then bullets.
func entryLines(entry *types.Entry, stripLabels bool) []string {
	lines := make([]string, 0, len(entry.FieldOrder)+len(entry.Bullets))
	for _, key := range entry.FieldOrder {
		field := entry.Field(key)
		if field == nil {
			continue
		}
		value := field.Effective()
		if stripLabels {
			value = StripLabel(value)
		}
		if strings.TrimSpace(value) != "" {
			lines = append(lines, value)
		}
	}
	for _, bullet := range entry.Bullets {
		value := bullet.Effective()
		if stripLabels {
			value = StripLabel(value)
		}
		if strings.TrimSpace(value) != "" {
			lines = append(lines, value)
		}
	}
	return lines
}

// PlainTextResume renders all sections, separated by blank lines.
func PlainTextResume(resume *types.Resume) string {
	blocks := make([]string, 0, len(resume.Sections))
	for _, section := range resume.Sections {
		blocks = append(blocks, PlainText(section))
	}
	return strings.Join(blocks, "\n\n")
}

// sectionFromText builds a transient section from free text using the line
// classifier. This is the fallback path when no structured value exists.
func sectionFromText(heading, text string) *types.Section {
	section := &types.Section{
		Heading: heading,
		Kind:    parsing.ClassifyHeading(heading),
	}
	entries := parsing.ParseUnstructured(text)

	// A single anonymous entry with only bullets is really a simple section.
	if len(entries) == 1 && len(entries[0].FieldOrder) == 0 {
		section.Bullets = entries[0].Bullets
		return section
	}
	section.Entries = entries
	return section
}
