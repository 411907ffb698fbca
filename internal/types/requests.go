package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// ParsedResumeRequest is the input contract from the parsing collaborator.
// Bodies are untrusted JSON and must survive arbitrary malformation, so they
// stay raw here; the normalizer deals with shape.
type ParsedResumeRequest struct {
	Title    string       `json:"title,omitempty"`
	Sections []RawSection `json:"sections" validate:"required,min=1,dive"`
}

// RawSection is one named block as emitted by the upstream parser.
type RawSection struct {
	Heading string          `json:"heading" validate:"required,min=1"`
	Body    json.RawMessage `json:"body"`
}

// Validate validates the ParsedResumeRequest using the validator.
func (r *ParsedResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
