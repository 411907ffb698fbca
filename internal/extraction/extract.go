// Package extraction flattens the effective content of a resume into the
// shapes the score engines consume: one text blob, a deduplicated bullet
// list, per-entry views, and best-effort contact fields.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-studio/internal/projection"
	"github.com/jonathan/resume-studio/internal/types"
)

// SectionEdits maps section headings to committed plain-text edits. When an
// edit exists for a heading it is used exclusively, even if structurally
// different from the original section.
type SectionEdits map[string]string

// EntryView is a flattened {fields, bullets} view of one entry for targeted
// heuristics such as job-title matching.
type EntryView struct {
	SectionHeading string
	SectionKind    types.SectionKind
	Fields         map[string]string
	FieldOrder     []string
	Bullets        []string
}

// ContactInfo holds best-effort contact fields sniffed from the resume.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Address  string `json:"address,omitempty"`
}

// SectionText resolves one section to plain text with the committed-edit
// precedence: edit > structured projection.
func SectionText(section *types.Section, edits SectionEdits) string {
	if edits != nil {
		if edited, ok := edits[section.Heading]; ok && strings.TrimSpace(edited) != "" {
			return edited
		}
	}
	return projection.PlainText(section)
}

// ResumeText flattens the whole resume into one text blob using effective
// values and committed edits.
func ResumeText(resume *types.Resume, edits SectionEdits) string {
	blocks := make([]string, 0, len(resume.Sections))
	for _, section := range resume.Sections {
		blocks = append(blocks, SectionText(section, edits))
	}
	return strings.Join(blocks, "\n\n")
}

var bulletGlyphRe = regexp.MustCompile(`^\s*([•◦▪‣*-]|\d+[.)])\s+(.+)$`)

// AllBullets returns a deduplicated ordered list of bullet strings across
// all sections. Structured bullets are collected first; plain-text lines
// with bullet glyphs are scanned as a safety net so content the structured
// path missed is not lost. Exact-string duplicates are filtered.
func AllBullets(resume *types.Resume, edits SectionEdits) []string {
	var bullets []string
	seen := make(map[string]bool)

	add := func(text string) {
		text = strings.TrimSpace(text)
		if text == "" || seen[text] {
			return
		}
		seen[text] = true
		bullets = append(bullets, text)
	}

	for _, section := range resume.Sections {
		edited := ""
		if edits != nil {
			edited = strings.TrimSpace(edits[section.Heading])
		}

		if edited == "" {
			for _, bullet := range section.Bullets {
				add(bullet.Effective())
			}
			for _, entry := range section.Entries {
				for _, bullet := range entry.Bullets {
					add(bullet.Effective())
				}
			}
		}

		// Glyph scan over the plain text, structured or edited.
		for _, line := range strings.Split(SectionText(section, edits), "\n") {
			if matches := bulletGlyphRe.FindStringSubmatch(line); matches != nil {
				add(matches[2])
			}
		}
	}

	return bullets
}

// EntryViews flattens every entry of every compound section, using
// effective values and preserving field order.
func EntryViews(resume *types.Resume) []EntryView {
	var views []EntryView
	for _, section := range resume.Sections {
		for _, entry := range section.Entries {
			view := EntryView{
				SectionHeading: section.Heading,
				SectionKind:    section.Kind,
				Fields:         make(map[string]string, len(entry.FieldOrder)),
				FieldOrder:     append([]string(nil), entry.FieldOrder...),
			}
			for _, key := range entry.FieldOrder {
				if field := entry.Field(key); field != nil {
					view.Fields[key] = field.Effective()
				}
			}
			for _, bullet := range entry.Bullets {
				view.Bullets = append(view.Bullets, bullet.Effective())
			}
			views = append(views, view)
		}
	}
	return views
}

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9\-_%]+`)
)

// Contact sniffs contact fields from the contact section, falling back to
// the whole resume text when no contact section exists.
func Contact(resume *types.Resume, edits SectionEdits) ContactInfo {
	text := ""
	for _, section := range resume.Sections {
		if section.Kind == types.KindContact {
			text = SectionText(section, edits)
			break
		}
	}
	if text == "" {
		text = ResumeText(resume, edits)
	}

	info := ContactInfo{
		Email:    emailRe.FindString(text),
		Phone:    phoneRe.FindString(text),
		LinkedIn: linkedinRe.FindString(text),
	}

	headings := make(map[string]bool, len(resume.Sections))
	for _, section := range resume.Sections {
		headings[strings.ToLower(section.Heading)] = true
	}

	// The first line that is neither a heading nor one of the matched
	// tokens is the best name candidate; a later line with a comma is an
	// address candidate.
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || headings[strings.ToLower(trimmed)] {
			continue
		}
		hasToken := (info.Email != "" && strings.Contains(trimmed, info.Email)) ||
			(info.Phone != "" && strings.Contains(trimmed, info.Phone)) ||
			(info.LinkedIn != "" && strings.Contains(trimmed, info.LinkedIn))
		if hasToken {
			continue
		}
		if info.Name == "" {
			info.Name = trimmed
			continue
		}
		if info.Address == "" && strings.Contains(trimmed, ",") {
			info.Address = trimmed
		}
	}

	if info.Name == "" {
		info.Name = resume.Title
	}
	return info
}
