package suggest

import (
	"bytes"
	"encoding/json"
	"strings"
)

// extractPair resolves a raw metadata value into (original, suggested)
// strings. Values nest unpredictably: bare scalars, {original, suggested}
// objects, or deeper wrappings of the same; unknown shapes fall back to
// their compact JSON text.
func extractPair(raw json.RawMessage) (original, suggested string) {
	original = extractString(raw, "original")
	suggested = extractString(raw, "suggested")
	if suggested == "" {
		suggested = original
	}
	return original, suggested
}

// extractString resolves a raw value to a string, preferring the named key
// when the value is an object, recursing through nested wrappings.
func extractString(raw json.RawMessage, prefer string) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		if inner, ok := obj[prefer]; ok {
			if v := extractString(inner, prefer); v != "" {
				return v
			}
		}
		// Prefer suggested, then original, regardless of the asked key, so
		// a lone {suggested: ...} still resolves.
		for _, key := range []string{"suggested", "original", "value", "text"} {
			if key == prefer {
				continue
			}
			if inner, ok := obj[key]; ok {
				if v := extractString(inner, prefer); v != "" {
					return v
				}
			}
		}
		return compactJSON(raw)
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return compactJSON(raw)
}

// compactJSON renders a raw value as its compact JSON text.
func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return buf.String()
}

// usable reports whether a resolved value should be applied. Empty values
// and the literal string "null" are dropped.
func usable(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed != "" && !strings.EqualFold(trimmed, "null")
}
