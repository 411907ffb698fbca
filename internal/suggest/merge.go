// Package suggest overlays provider-suggested edits onto canonical sections.
// The merger is pure: it never calls the network, never mutates its input,
// and never fails — malformed provider output routes to a deterministic
// fallback synthesized from the original section.
package suggest

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/parsing"
	"github.com/jonathan/resume-studio/internal/types"
)

// ParseResponse parses a provider's raw text into a SuggestionResponse.
// Direct JSON is tried first, then a fenced-code-block extraction; anything
// else is a ProviderFormatError.
func ParseResponse(raw string) (*types.SuggestionResponse, error) {
	candidates := []string{raw, llm.CleanJSONBlock(raw)}

	var lastErr error
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if err := validateResponse(candidate); err != nil {
			lastErr = err
			continue
		}
		var resp types.SuggestionResponse
		if err := json.Unmarshal([]byte(candidate), &resp); err != nil {
			lastErr = &ProviderFormatError{Message: "response failed to decode", Cause: err}
			continue
		}
		return &resp, nil
	}

	if lastErr == nil {
		lastErr = &ProviderFormatError{Message: "response is empty"}
	}
	return nil, lastErr
}

// Overlay applies a provider's raw response to a section, falling back to a
// deterministic self-suggestion when the response is unusable. The second
// return reports whether the fallback was taken, so callers can surface it
// without treating it as a failure.
func Overlay(section *types.Section, rawResponse string, fieldOrder []string) (*types.Section, bool) {
	resp, err := ParseResponse(rawResponse)
	if err != nil {
		return Merge(section, Fallback(section), fieldOrder), true
	}
	return Merge(section, resp, fieldOrder), false
}

// Merge produces a new section tree with the response's suggestions applied.
// Entries are matched positionally — providers are not trusted to echo ids
// faithfully — and Original values always come from the canonical section,
// never the provider's echo. A fresh merge replaces all previous Suggested
// values wholesale.
func Merge(section *types.Section, resp *types.SuggestionResponse, fieldOrder []string) *types.Section {
	updated := section.Clone()
	clearSuggestions(updated)

	for i, entry := range updated.Entries {
		if i >= len(resp.Entries) {
			break
		}
		mergeEntry(entry, &resp.Entries[i], fieldOrder)
	}

	// Simple-section bullets matched against summary, falling back to the
	// first response entry's bullets when the provider nested them there.
	bullets := resp.Summary
	if len(bullets) == 0 && !updated.Compound() && len(resp.Entries) > 0 {
		bullets = resp.Entries[0].Bullets
	}
	for i := range updated.Bullets {
		if i >= len(bullets) {
			break
		}
		if usable(bullets[i].Suggested) {
			updated.Bullets[i].Suggested = strings.TrimSpace(bullets[i].Suggested)
		}
	}

	return updated
}

// mergeEntry applies one response entry's metadata and bullets.
func mergeEntry(entry *types.Entry, respEntry *types.SuggestionEntry, fieldOrder []string) {
	metadata, metaOrder := decodeMetadata(respEntry.Metadata)

	// The field order supplied by the caller on the request takes precedence
	// over whatever order the provider's response uses.
	expected := fieldOrder
	if len(expected) == 0 {
		expected = entry.FieldOrder
	}

	applied := make(map[string]bool, len(metadata))
	for _, key := range expected {
		raw, ok := metadata[key]
		if !ok {
			continue
		}
		applied[key] = true
		_, suggested := extractPair(raw)
		if !usable(suggested) {
			continue
		}
		if field := entry.Field(key); field != nil {
			field.Suggested = strings.TrimSpace(suggested)
		}
	}

	// Unexpected provider fields are appended after the expected ones, in
	// the provider's own order.
	for _, key := range metaOrder {
		if applied[key] {
			continue
		}
		original, suggested := extractPair(metadata[key])
		if !usable(suggested) {
			continue
		}
		if field := entry.Field(key); field != nil {
			field.Suggested = strings.TrimSpace(suggested)
			continue
		}
		entry.SetField(key, strings.TrimSpace(original))
		entry.Fields[key].Suggested = strings.TrimSpace(suggested)
	}

	for i := range entry.Bullets {
		if i >= len(respEntry.Bullets) {
			break
		}
		if usable(respEntry.Bullets[i].Suggested) {
			entry.Bullets[i].Suggested = strings.TrimSpace(respEntry.Bullets[i].Suggested)
		}
	}
}

// decodeMetadata unpacks a raw metadata object preserving provider key
// order. Numeric keys (leaked indices) are dropped here too.
func decodeMetadata(raw json.RawMessage) (map[string]json.RawMessage, []string) {
	metadata := make(map[string]json.RawMessage)
	var order []string

	if len(raw) == 0 {
		return metadata, order
	}
	fields, err := parsing.DecodeOrderedObject(raw)
	if err != nil {
		return metadata, order
	}
	for _, f := range fields {
		if f.Key == "" {
			continue
		}
		if _, seen := metadata[f.Key]; seen {
			continue
		}
		metadata[f.Key] = f.Value
		order = append(order, f.Key)
	}
	return metadata, order
}

// clearSuggestions wipes Suggested on every node; each AI pass replaces
// suggestions wholesale while Final survives.
func clearSuggestions(section *types.Section) {
	for i := range section.Bullets {
		section.Bullets[i].Suggested = ""
	}
	for _, entry := range section.Entries {
		for _, field := range entry.Fields {
			field.Suggested = ""
		}
		for i := range entry.Bullets {
			entry.Bullets[i].Suggested = ""
		}
	}
}

// Fallback synthesizes a deterministic response from the section itself:
// suggested equals original for every field and bullet. The caller always
// gets usable data, never an exception leaking provider fragility.
func Fallback(section *types.Section) *types.SuggestionResponse {
	resp := &types.SuggestionResponse{
		SectionName: section.Heading,
		Type:        string(section.Kind),
	}

	for _, entry := range section.Entries {
		respEntry := types.SuggestionEntry{ID: entry.ID}
		metadata := make(map[string]types.SuggestionBullet, len(entry.FieldOrder))
		for _, key := range entry.FieldOrder {
			field := entry.Field(key)
			if field == nil {
				continue
			}
			metadata[key] = types.SuggestionBullet{
				ID:        field.ID,
				Original:  field.Original,
				Suggested: field.Original,
			}
		}
		if len(metadata) > 0 {
			if raw, err := json.Marshal(metadata); err == nil {
				respEntry.Metadata = raw
			}
		}
		for _, bullet := range entry.Bullets {
			respEntry.Bullets = append(respEntry.Bullets, types.SuggestionBullet{
				ID:        bullet.ID,
				Original:  bullet.Original,
				Suggested: bullet.Original,
			})
		}
		resp.Entries = append(resp.Entries, respEntry)
	}

	for _, bullet := range section.Bullets {
		resp.Summary = append(resp.Summary, types.SuggestionBullet{
			ID:        bullet.ID,
			Original:  bullet.Original,
			Suggested: bullet.Original,
		})
	}

	return resp
}
