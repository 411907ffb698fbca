package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// lineToken is the classification of one line of unstructured resume text.
type lineToken int

// Token categories recognized by the line classifier
const (
	tokenBlank lineToken = iota
	tokenBullet
	tokenDateRange
	tokenHeaderPair
	tokenShortLine
	tokenText
)

// classifierState tracks where the entry grouping automaton is.
type classifierState int

const (
	stateSeekingEntry classifierState = iota
	stateInEntryHeader
	stateInBullets
)

var (
	dateRangeRe  = regexp.MustCompile(`(?i)\d{4}\s*(-|–|—|to)\s*(\d{4}|present)`)
	bulletLineRe = regexp.MustCompile(`^\s*([•◦▪‣*-]|\d+[.)])\s+`)
	headerPairRe = regexp.MustCompile(`^(.{1,80}?)\s+([—–]|--|\|)\s+(.{1,80})$`)
)

// shortLineMaxWords bounds lines treated as candidate company/title names
const shortLineMaxWords = 7

// classifyLine assigns a token category to one line.
func classifyLine(line string) lineToken {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return tokenBlank
	case bulletLineRe.MatchString(line):
		return tokenBullet
	case dateRangeRe.MatchString(trimmed):
		return tokenDateRange
	case headerPairRe.MatchString(trimmed):
		return tokenHeaderPair
	case len(strings.Fields(trimmed)) <= shortLineMaxWords && !strings.HasSuffix(trimmed, "."):
		return tokenShortLine
	default:
		return tokenText
	}
}

// StripBulletGlyph removes a leading bullet marker or list number.
func StripBulletGlyph(line string) string {
	return strings.TrimSpace(bulletLineRe.ReplaceAllString(line, ""))
}

// ParseUnstructured groups lines of plain resume text into entries using a
// finite-state classifier. This is the best-effort fallback path; the
// structured normalizer is always preferred when raw payload is available.
func ParseUnstructured(text string) []*types.Entry {
	var entries []*types.Entry
	var current *types.Entry
	state := stateSeekingEntry

	open := func() *types.Entry {
		if current == nil {
			current = types.NewEntry()
			entries = append(entries, current)
		}
		return current
	}
	flush := func() {
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		token := classifyLine(line)

		switch state {
		case stateSeekingEntry:
			switch token {
			case tokenBlank:
				// stay
			case tokenHeaderPair:
				flush()
				startHeaderPair(open(), trimmed)
				state = stateInEntryHeader
			case tokenDateRange:
				flush()
				open().SetField(FieldMeta, trimmed)
				state = stateInEntryHeader
			case tokenShortLine:
				flush()
				open().SetField(FieldPrimary, trimmed)
				state = stateInEntryHeader
			case tokenBullet, tokenText:
				entry := open()
				entry.Bullets = append(entry.Bullets, types.NewBulletPoint(StripBulletGlyph(line)))
				state = stateInBullets
			}

		case stateInEntryHeader:
			switch token {
			case tokenBlank:
				state = stateSeekingEntry
			case tokenHeaderPair:
				flush()
				startHeaderPair(open(), trimmed)
			case tokenDateRange:
				if current.Field(FieldMeta) == nil {
					current.SetField(FieldMeta, trimmed)
				} else {
					flush()
					open().SetField(FieldMeta, trimmed)
				}
			case tokenShortLine:
				switch {
				case current.Field(FieldPrimary) == nil:
					current.SetField(FieldPrimary, trimmed)
				case current.Field(FieldSecondary) == nil:
					current.SetField(FieldSecondary, trimmed)
				default:
					flush()
					open().SetField(FieldPrimary, trimmed)
				}
			case tokenBullet, tokenText:
				current.Bullets = append(current.Bullets, types.NewBulletPoint(StripBulletGlyph(line)))
				state = stateInBullets
			}

		case stateInBullets:
			switch token {
			case tokenBlank:
				state = stateSeekingEntry
			case tokenHeaderPair:
				flush()
				startHeaderPair(open(), trimmed)
				state = stateInEntryHeader
			case tokenDateRange, tokenShortLine:
				flush()
				entry := open()
				if token == tokenDateRange {
					entry.SetField(FieldMeta, trimmed)
				} else {
					entry.SetField(FieldPrimary, trimmed)
				}
				state = stateInEntryHeader
			case tokenBullet, tokenText:
				current.Bullets = append(current.Bullets, types.NewBulletPoint(StripBulletGlyph(line)))
			}
		}
	}

	return entries
}

// startHeaderPair seeds an entry from an "A — B" header line.
func startHeaderPair(entry *types.Entry, line string) {
	matches := headerPairRe.FindStringSubmatch(line)
	if matches == nil {
		entry.SetField(FieldPrimary, line)
		return
	}
	entry.SetField(FieldPrimary, strings.TrimSpace(matches[1]))
	entry.SetField(FieldSecondary, strings.TrimSpace(matches[3]))
}
