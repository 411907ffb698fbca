package llm

import "strings"

// CleanJSONBlock strips the markdown fencing models wrap around JSON
// payloads even when told not to. If no fence is present but the text has
// prose around a JSON object, the outermost brace span is returned.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if fenced, ok := stripFence(text); ok {
		return fenced
	}

	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		return text
	}
	return braceSpan(text)
}

// stripFence removes a leading ``` fence (with optional language tag) and
// its closing fence. ok is false when the text is not fenced.
func stripFence(text string) (string, bool) {
	if !strings.HasPrefix(text, "```") {
		return "", false
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")

	// Drop a language tag like "json" on the fence line.
	if idx := strings.Index(text, "\n"); idx >= 0 {
		tag := strings.TrimSpace(text[:idx])
		if tag != "" && len(tag) < 20 && !strings.ContainsAny(tag, " {[") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text), true
}

// braceSpan returns the span from the first opening brace to the last
// closing brace, or the input unchanged when no such span exists.
func braceSpan(text string) string {
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}
	end := strings.LastIndexAny(text, "}]")
	if end <= start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
