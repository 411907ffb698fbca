package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/prompts"
	"github.com/jonathan/resume-studio/internal/types"
)

// JobContext carries the posting a tailoring pass targets. Nil means a
// plain improvement pass.
type JobContext struct {
	Title       string
	Description string
	Keywords    *types.KeywordSet
}

// Generate runs one suggestion pass for a section: build the prompt, call
// the provider, overlay the response. The returned bool reports whether
// the deterministic fallback was used. A transport failure still yields a
// usable fallback section alongside the error.
func Generate(ctx context.Context, client llm.Client, section *types.Section, fieldOrder []string, job *JobContext) (*types.Section, bool, error) {
	prompt, tier := buildPrompt(section, fieldOrder, job)

	raw, err := client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		merged, _ := Overlay(section, "", fieldOrder)
		return merged, true, err
	}

	merged, usedFallback := Overlay(section, raw, fieldOrder)
	return merged, usedFallback, nil
}

// buildPrompt renders the prompt template for a section and picks the
// model tier: tailoring passes carry more context and get the stronger
// model.
func buildPrompt(section *types.Section, fieldOrder []string, job *JobContext) (string, llm.ModelTier) {
	data := map[string]string{
		"SectionName": section.Heading,
		"SectionType": string(section.Kind),
		"FieldOrder":  strings.Join(fieldOrder, ", "),
		"Payload":     sectionPayload(section),
	}

	if job == nil {
		return prompts.Format(prompts.MustGet("rewrite-section"), data), llm.TierStandard
	}

	data["JobTitle"] = job.Title
	data["JobDescription"] = job.Description
	data["Keywords"] = keywordTerms(job.Keywords)
	return prompts.Format(prompts.MustGet("tailor-section"), data), llm.TierAdvanced
}

// sectionPayload serializes a section in the shape the response schema
// mirrors. Entry metadata is written in field order so the provider sees
// the order it must preserve.
func sectionPayload(section *types.Section) string {
	var buf bytes.Buffer
	buf.WriteString(`{"sectionName":`)
	writeJSON(&buf, section.Heading)
	buf.WriteString(`,"type":`)
	writeJSON(&buf, string(section.Kind))

	buf.WriteString(`,"entries":[`)
	for i, entry := range section.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"id":`)
		writeJSON(&buf, entry.ID)
		buf.WriteString(`,"metadata":`)
		writeOrderedFields(&buf, entry)
		buf.WriteString(`,"bullets":[`)
		for j, bullet := range entry.Bullets {
			if j > 0 {
				buf.WriteByte(',')
			}
			writeBullet(&buf, bullet)
		}
		buf.WriteString(`]}`)
	}
	buf.WriteByte(']')

	buf.WriteString(`,"summary":[`)
	for i, bullet := range section.Bullets {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeBullet(&buf, bullet)
	}
	buf.WriteString(`]}`)
	return buf.String()
}

// writeOrderedFields emits an entry's fields as a JSON object in field
// order, which encoding/json's map marshaling would not preserve.
func writeOrderedFields(buf *bytes.Buffer, entry *types.Entry) {
	buf.WriteByte('{')
	written := 0
	for _, key := range entry.FieldOrder {
		field := entry.Field(key)
		if field == nil {
			continue
		}
		if written > 0 {
			buf.WriteByte(',')
		}
		written++
		writeJSON(buf, key)
		buf.WriteByte(':')
		writeJSON(buf, field.Effective())
	}
	buf.WriteByte('}')
}

func writeBullet(buf *bytes.Buffer, bullet types.BulletPoint) {
	buf.WriteString(`{"id":`)
	writeJSON(buf, bullet.ID)
	buf.WriteString(`,"original":`)
	writeJSON(buf, bullet.Effective())
	buf.WriteByte('}')
}

func writeJSON(buf *bytes.Buffer, value string) {
	encoded, _ := json.Marshal(value)
	buf.Write(encoded)
}

func keywordTerms(set *types.KeywordSet) string {
	if set == nil {
		return ""
	}
	terms := make([]string, len(set.Keywords))
	for i, keyword := range set.Keywords {
		terms[i] = keyword.Term
	}
	return strings.Join(terms, ", ")
}
