package suggest

import "fmt"

// ProviderFormatError represents a suggestion response that could not be
// parsed or failed schema validation. It is recovered via the deterministic
// fallback and reported, never thrown past the merge step.
type ProviderFormatError struct {
	Message string
	Cause   error
}

func (e *ProviderFormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider response rejected: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider response rejected: %s", e.Message)
}

func (e *ProviderFormatError) Unwrap() error {
	return e.Cause
}
