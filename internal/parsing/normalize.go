// Package parsing turns loosely-typed upstream parser output into the
// canonical structured resume model. Section bodies are arbitrary JSON and
// normalization never fails: unrecognized shapes degrade to an opaque
// fallback bullet rather than erroring.
package parsing

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-studio/internal/types"
)

// ParseDocument parses the raw parser payload into a canonical Resume.
// Malformed JSON or a missing sections list is a hard error; individual
// section bodies are normalized best-effort and never fail.
func ParseDocument(data []byte) (*types.Resume, error) {
	var req types.ParsedResumeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, &DocumentParseError{
			Message: "payload is not valid JSON",
			Cause:   err,
		}
	}
	if err := req.Validate(); err != nil {
		return nil, &DocumentParseError{
			Message: "payload failed validation",
			Cause:   err,
		}
	}
	return NormalizeDocument(&req), nil
}

// NormalizeDocument normalizes every section of a validated request.
func NormalizeDocument(req *types.ParsedResumeRequest) *types.Resume {
	resume := &types.Resume{
		ID:       uuid.New(),
		Title:    req.Title,
		Sections: make([]*types.Section, 0, len(req.Sections)),
	}
	for _, raw := range req.Sections {
		resume.Sections = append(resume.Sections, NormalizeSection(raw.Heading, raw.Body))
	}
	return resume
}

// NormalizeSection turns one section's arbitrary body into a valid Section.
// The shape branch taken is recorded once in Kind; downstream consumers
// switch on Kind and never re-inspect the raw payload.
func NormalizeSection(heading string, body json.RawMessage) *types.Section {
	section := &types.Section{
		ID:      uuid.NewString(),
		Heading: heading,
		Kind:    ClassifyHeading(heading),
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		section.Bullets = []types.BulletPoint{}
		return section
	}

	// Array body: entry-like objects become entries, strings become summary
	// lines, both retained when mixed.
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err == nil {
		normalizeArray(section, elements)
		return section
	}

	// Object body: branch on which well-known keys exist.
	fields, err := DecodeOrderedObject(body)
	if err == nil {
		if normalizeObject(section, fields) {
			return section
		}
	}

	// Fallback: stringify the whole value as a single opaque bullet.
	section.Bullets = []types.BulletPoint{types.NewBulletPoint(scalarString(body))}
	return section
}

// normalizeArray handles an array body. Strings become summary bullets,
// objects become entries; other scalars are stringified into bullets.
func normalizeArray(section *types.Section, elements []json.RawMessage) {
	for _, element := range elements {
		trimmed := strings.TrimSpace(string(element))
		if trimmed == "" || trimmed == "null" {
			continue
		}
		if strings.HasPrefix(trimmed, "{") {
			if entry := normalizeEntry(element); entry != nil {
				section.Entries = append(section.Entries, entry)
			}
			continue
		}
		addSummaryLine(section, scalarString(element))
	}

	if section.Entries == nil && section.Bullets == nil {
		section.Bullets = []types.BulletPoint{}
	}
}

// normalizeObject handles an object body carrying a summary or entries key.
// Returns false when the object matches neither branch so the caller can
// fall back to stringification.
func normalizeObject(section *types.Section, fields []RawField) bool {
	var summaryRaw, entriesRaw json.RawMessage
	for _, f := range fields {
		switch strings.ToLower(f.Key) {
		case "summary":
			summaryRaw = f.Value
		case "entries":
			entriesRaw = f.Value
		}
	}

	if entriesRaw != nil {
		var elements []json.RawMessage
		if err := json.Unmarshal(entriesRaw, &elements); err == nil {
			normalizeArray(section, elements)
			return true
		}
	}

	if summaryRaw != nil {
		var lines []string
		if err := json.Unmarshal(summaryRaw, &lines); err == nil {
			for _, line := range lines {
				if strings.TrimSpace(line) == "" {
					continue
				}
				addSummaryLine(section, line)
			}
			if section.Entries == nil && section.Bullets == nil {
				section.Bullets = []types.BulletPoint{}
			}
			return true
		}
	}

	return false
}

// addSummaryLine appends a summary line as a bullet, except in skills
// sections where "Category: name" lines split into a structured entry.
func addSummaryLine(section *types.Section, line string) {
	if section.Kind == types.KindSkills {
		if entry := splitSkillLine(line); entry != nil {
			section.Entries = append(section.Entries, entry)
			return
		}
	}
	section.Bullets = append(section.Bullets, types.NewBulletPoint(line))
}

// splitSkillLine turns "Category: a, b, c" into a skills entry with a
// category field and a name field. Returns nil when the line has no label.
func splitSkillLine(line string) *types.Entry {
	idx := strings.Index(line, ":")
	if idx <= 0 || idx == len(line)-1 {
		return nil
	}
	category := strings.TrimSpace(line[:idx])
	name := strings.TrimSpace(line[idx+1:])
	if category == "" || name == "" {
		return nil
	}

	entry := types.NewEntry()
	entry.SetField("category", category)
	entry.SetField("name", name)
	return entry
}

// normalizeEntry converts one entry-like object into a canonical Entry.
// Recognized aliases coalesce into the canonical field set; unrecognized
// fields keep their own key; numeric keys (leaked array indices) are
// ignored. Returns nil when nothing usable is present.
func normalizeEntry(raw json.RawMessage) *types.Entry {
	fields, err := DecodeOrderedObject(raw)
	if err != nil {
		return nil
	}

	// Explicit {fieldOrder, fields, bullets} shape takes precedence.
	if entry := normalizeExplicitEntry(fields); entry != nil {
		return entry
	}

	entry := types.NewEntry()
	metaParts := make(map[string]string)
	metaPlaced := false

	for _, f := range fields {
		if isNumericKey(f.Key) {
			continue
		}
		normalized := strings.ToLower(strings.TrimSpace(f.Key))
		if normalized == "" || normalized == "id" {
			continue
		}

		if bulletAliases[normalized] {
			for _, text := range stringList(f.Value) {
				entry.Bullets = append(entry.Bullets, types.NewBulletPoint(text))
			}
			continue
		}

		if metaAliases[normalized] {
			if v := scalarString(f.Value); v != "" {
				metaParts[normalized] = v
				if !metaPlaced {
					// Reserve the meta slot at the first alias position.
					entry.SetField(FieldMeta, "")
					metaPlaced = true
				}
			}
			continue
		}

		value := scalarString(f.Value)
		if value == "" {
			continue
		}
		key, _ := canonicalKey(f.Key)
		if existing := entry.Field(key); existing != nil && existing.Original != "" {
			// Canonical slot already taken: keep the source key so no
			// data is dropped.
			key = normalized
		}
		entry.SetField(key, value)
	}

	if metaPlaced {
		composed := composeMeta(metaParts)
		if composed == "" {
			removeField(entry, FieldMeta)
		} else {
			entry.Fields[FieldMeta].Original = composed
		}
	}

	if len(entry.FieldOrder) == 0 && len(entry.Bullets) == 0 {
		return nil
	}
	return entry
}

// normalizeExplicitEntry handles the {fieldOrder: [...], fields: [{key,value}],
// bullets: [...]} shape. Returns nil when the object is not that shape.
func normalizeExplicitEntry(fields []RawField) *types.Entry {
	var orderRaw, fieldsRaw, bulletsRaw json.RawMessage
	for _, f := range fields {
		switch strings.ToLower(f.Key) {
		case "fieldorder", "field_order":
			orderRaw = f.Value
		case "fields":
			fieldsRaw = f.Value
		case "bullets":
			bulletsRaw = f.Value
		}
	}
	if fieldsRaw == nil {
		return nil
	}

	var kvs []struct {
		Key   string          `json:"key"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(fieldsRaw, &kvs); err != nil {
		return nil
	}

	entry := types.NewEntry()
	byKey := make(map[string]string, len(kvs))
	sourceOrder := make([]string, 0, len(kvs))
	for _, kv := range kvs {
		if kv.Key == "" || isNumericKey(kv.Key) {
			continue
		}
		byKey[kv.Key] = scalarString(kv.Value)
		sourceOrder = append(sourceOrder, kv.Key)
	}

	// The explicit fieldOrder wins; fields it omits follow in source order.
	var order []string
	if orderRaw != nil {
		_ = json.Unmarshal(orderRaw, &order)
	}
	seen := make(map[string]bool, len(order))
	for _, key := range order {
		if v, ok := byKey[key]; ok && !seen[key] {
			entry.SetField(key, v)
			seen[key] = true
		}
	}
	for _, key := range sourceOrder {
		if !seen[key] {
			entry.SetField(key, byKey[key])
			seen[key] = true
		}
	}

	if bulletsRaw != nil {
		for _, text := range stringList(bulletsRaw) {
			entry.Bullets = append(entry.Bullets, types.NewBulletPoint(text))
		}
	}

	if len(entry.FieldOrder) == 0 && len(entry.Bullets) == 0 {
		return nil
	}
	return entry
}

// stringList decodes a raw value into a list of non-empty strings. A bare
// string becomes a one-element list; other scalars are stringified.
func stringList(raw json.RawMessage) []string {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		if s := scalarString(raw); s != "" {
			return []string{s}
		}
		return nil
	}
	out := make([]string, 0, len(list))
	for _, element := range list {
		if s := scalarString(element); strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// removeField deletes a field and its FieldOrder slot.
func removeField(entry *types.Entry, key string) {
	delete(entry.Fields, key)
	for i, k := range entry.FieldOrder {
		if k == key {
			entry.FieldOrder = append(entry.FieldOrder[:i], entry.FieldOrder[i+1:]...)
			return
		}
	}
}

var headingKindPatterns = []struct {
	pattern *regexp.Regexp
	kind    types.SectionKind
}{
	{regexp.MustCompile(`(?i)contact|personal\s+info`), types.KindContact},
	{regexp.MustCompile(`(?i)summary|objective|profile|about`), types.KindSummary},
	{regexp.MustCompile(`(?i)experience|employment|work\s+history`), types.KindExperience},
	{regexp.MustCompile(`(?i)education|academic`), types.KindEducation},
	{regexp.MustCompile(`(?i)skill|technolog|competenc`), types.KindSkills},
	{regexp.MustCompile(`(?i)project`), types.KindProjects},
	{regexp.MustCompile(`(?i)certification|license|credential`), types.KindCertifications},
}

// ClassifyHeading maps a section heading onto a SectionKind.
func ClassifyHeading(heading string) types.SectionKind {
	for _, hk := range headingKindPatterns {
		if hk.pattern.MatchString(heading) {
			return hk.kind
		}
	}
	return types.KindOther
}
