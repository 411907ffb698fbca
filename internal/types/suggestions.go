package types

import "encoding/json"

// SuggestionResponse is the schema the suggestion provider is asked to
// return for one section. Providers are not trusted to echo it faithfully;
// the merger re-validates everything against the canonical section.
type SuggestionResponse struct {
	SectionName string             `json:"sectionName"`
	Type        string             `json:"type"`
	Entries     []SuggestionEntry  `json:"entries"`
	Summary     []SuggestionBullet `json:"summary,omitempty"`
}

// SuggestionEntry carries per-entry field and bullet suggestions. Metadata
// values may arrive as {original, suggested} objects, bare scalars, or
// deeper nestings, and provider field order matters, so the object stays
// raw until ordered extraction.
type SuggestionEntry struct {
	ID       string             `json:"id"`
	Metadata json.RawMessage    `json:"metadata,omitempty"`
	Bullets  []SuggestionBullet `json:"bullets,omitempty"`
}

// SuggestionBullet pairs the provider's echo of the original text with its
// suggested replacement.
type SuggestionBullet struct {
	ID        string `json:"id"`
	Original  string `json:"original"`
	Suggested string `json:"suggested"`
}
