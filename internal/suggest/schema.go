package suggest

import (
	"github.com/xeipuuv/gojsonschema"
)

// responseSchema is the JSON Schema a provider response must satisfy before
// merging. Kept permissive on value shapes (metadata values nest
// unpredictably) while pinning the envelope.
const responseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["sectionName", "type"],
  "properties": {
    "sectionName": {"type": "string"},
    "type": {"type": "string"},
    "entries": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "metadata": {"type": "object"},
          "bullets": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {
                "id": {"type": "string"},
                "original": {"type": "string"},
                "suggested": {"type": "string"}
              }
            }
          }
        }
      }
    },
    "summary": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "original": {"type": "string"},
          "suggested": {"type": "string"}
        }
      }
    }
  }
}`

// validateResponse checks a raw provider response against the envelope
// schema.
func validateResponse(jsonText string) error {
	schemaLoader := gojsonschema.NewStringLoader(responseSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonText)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &ProviderFormatError{
			Message: "response is not a JSON document",
			Cause:   err,
		}
	}
	if !result.Valid() {
		first := ""
		if errs := result.Errors(); len(errs) > 0 {
			first = errs[0].String()
		}
		return &ProviderFormatError{
			Message: "response does not match suggestion schema: " + first,
		}
	}
	return nil
}
