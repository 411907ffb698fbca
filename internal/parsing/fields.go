package parsing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Canonical field keys. Entry-like objects arrive with a wide variety of key
// names; recognized aliases are coalesced into this small canonical set so
// downstream consumers never branch on the source vocabulary.
const (
	FieldPrimary   = "primary"
	FieldSecondary = "secondary"
	FieldMeta      = "meta"
)

// primaryAliases map onto the identity field of an entry (who/what it is)
var primaryAliases = map[string]bool{
	"company":      true,
	"employer":     true,
	"institution":  true,
	"school":       true,
	"name":         true,
	"projectname":  true,
	"project_name": true,
	"organization": true,
	"issuer":       true,
	"category":     true,
}

// secondaryAliases map onto the role field of an entry (what was done there)
var secondaryAliases = map[string]bool{
	"title":     true,
	"role":      true,
	"position":  true,
	"jobtitle":  true,
	"job_title": true,
	"degree":    true,
}

// metaAliases are composed into a single "meta" field, in this order. A
// literal "meta" source key is itself an alias, so it composes with the
// others instead of fighting them for the reserved slot.
var metaAliasOrder = []string{"meta", "dates", "date", "duration", "location", "gpa"}

var metaAliases = map[string]bool{
	"meta":     true,
	"dates":    true,
	"date":     true,
	"duration": true,
	"location": true,
	"gpa":      true,
}

// bulletAliases hold an entry's bullet list under various names
var bulletAliases = map[string]bool{
	"bullets":          true,
	"summary":          true,
	"highlights":       true,
	"details":          true,
	"responsibilities": true,
	"achievements":     true,
	"description":      true,
}

// RawField is one key/value pair from a source object, in source order.
type RawField struct {
	Key   string
	Value json.RawMessage
}

// DecodeOrderedObject decodes a JSON object into key/value pairs preserving
// the order keys appear in the source text. encoding/json maps discard
// order, and field order is a hard invariant here, so the token stream is
// walked directly.
func DecodeOrderedObject(raw json.RawMessage) ([]RawField, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read object token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("not a JSON object")
	}

	var fields []RawField
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read object key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string")
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to read value for key %q: %w", key, err)
		}
		fields = append(fields, RawField{Key: key, Value: value})
	}

	return fields, nil
}

// isNumericKey reports whether a key looks like a leaked array index.
// Indexing artifacts from upstream serialization would otherwise corrupt
// strings character by character.
func isNumericKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// canonicalKey maps a source field key onto the canonical set. Returns the
// canonical key and true, or the normalized original key and false when the
// key is unrecognized (unrecognized fields are kept under their own name).
func canonicalKey(key string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(key))
	switch {
	case primaryAliases[normalized]:
		return FieldPrimary, true
	case secondaryAliases[normalized]:
		return FieldSecondary, true
	case metaAliases[normalized]:
		return FieldMeta, true
	default:
		return normalized, false
	}
}

// scalarString renders a raw JSON scalar as a plain string. Objects and
// arrays fall back to their compact JSON text.
func scalarString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", n), "0"), ".")
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return fmt.Sprintf("%t", b)
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "null" || trimmed == "" {
		return ""
	}
	return trimmed
}

// composeMeta joins meta-alias values (dates, location, gpa) into one
// display string, in a fixed order independent of source order.
func composeMeta(parts map[string]string) string {
	ordered := make([]string, 0, len(parts))
	for _, alias := range metaAliasOrder {
		if v, ok := parts[alias]; ok && v != "" {
			ordered = append(ordered, v)
		}
	}
	return strings.Join(ordered, " | ")
}
