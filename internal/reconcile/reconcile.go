// Package reconcile absorbs manually edited plain text back into the
// structured section model, preserving entry and bullet identity wherever
// the line count allows so layout formatting is not lost.
package reconcile

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/parsing"
	"github.com/jonathan/resume-studio/internal/types"
)

// Section produces an updated copy of a section from a fresh plain-text
// block. Lines are assigned positionally: per entry, fields first (in
// FieldOrder), then bullets, then the section's own bullets. Running out
// of lines degrades losslessly for the remaining sections of the tree —
// later slots are dropped, never an error. Leftover lines reconcile
// against the section's own bullets when it has any, otherwise they
// append to the last entry, or become new bullets for simple sections.
// The input section is not mutated.
func Section(section *types.Section, text string) *types.Section {
	updated := section.Clone()
	lines := editableLines(section.Heading, text)

	if updated.Compound() {
		rest := reconcileEntries(updated, lines)
		reconcileLeftovers(updated, rest)
		return updated
	}

	reconcileSummary(updated, lines)
	return updated
}

// editableLines splits edited text into non-empty trimmed lines, dropping a
// leading line that is just the section heading (the projection emits it).
func editableLines(heading string, text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}
	if len(lines) > 0 && strings.EqualFold(lines[0], strings.TrimSpace(heading)) {
		lines = lines[1:]
	}
	return lines
}

// reconcileEntries walks entries in order; each consumes as many lines as
// it previously had fields and bullets. Returns the lines left over once
// every entry's slots are filled.
func reconcileEntries(section *types.Section, lines []string) []string {
	next := 0

	for _, entry := range section.Entries {
		// Fields first, in FieldOrder.
		kept := entry.FieldOrder[:0]
		for _, key := range entry.FieldOrder {
			field := entry.Field(key)
			if field == nil {
				continue
			}
			if next >= len(lines) {
				// Out of lines: the remaining slots are dropped.
				delete(entry.Fields, key)
				continue
			}
			assign(field, lines[next])
			kept = append(kept, key)
			next++
		}
		entry.FieldOrder = kept

		// Then bullets, 1:1 positionally.
		count := len(entry.Bullets)
		if remaining := len(lines) - next; remaining < count {
			count = remaining
		}
		for i := 0; i < count; i++ {
			assign(&entry.Bullets[i], lines[next])
			next++
		}
		entry.Bullets = entry.Bullets[:count]
	}

	return lines[next:]
}

// reconcileLeftovers places the lines remaining after the entries. A
// section that carries its own bullets alongside entries (mixed arrays
// normalize this way) projects them after the entry blocks, so leftovers
// reconcile against those bullets positionally. Without section bullets,
// leftovers become additional bullets on the last entry.
func reconcileLeftovers(section *types.Section, lines []string) {
	if len(section.Bullets) > 0 {
		reconcileSummary(section, lines)
		return
	}
	if len(lines) == 0 {
		return
	}
	var last *types.Entry
	if len(section.Entries) > 0 {
		last = section.Entries[len(section.Entries)-1]
	} else {
		last = types.NewEntry()
		section.Entries = append(section.Entries, last)
	}
	for _, line := range lines {
		last.Bullets = append(last.Bullets, types.NewBulletPoint(line))
	}
}

// reconcileSummary replaces a simple section's bullet content with the new
// lines, reusing existing bullet identities positionally.
func reconcileSummary(section *types.Section, lines []string) {
	count := len(section.Bullets)
	if len(lines) < count {
		count = len(lines)
	}
	for i := 0; i < count; i++ {
		assign(&section.Bullets[i], lines[i])
	}
	section.Bullets = section.Bullets[:count]
	for _, line := range lines[count:] {
		section.Bullets = append(section.Bullets, types.NewBulletPoint(line))
	}
}

// assign records an edited line on a bullet or field. The edit lands in
// Final, never touching Original; an unchanged line is not recorded so a
// no-op round trip stays a no-op.
func assign(target *types.BulletPoint, line string) {
	value := parsing.StripBulletGlyph(line)
	if value == target.Effective() {
		return
	}
	target.Final = value
}
