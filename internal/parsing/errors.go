package parsing

import "fmt"

// DocumentParseError represents a failure to read the top-level parser
// payload. Section bodies always degrade to a fallback shape, but an
// unreadable document is a hard error so the caller gets an explicit
// signal to retry upstream.
type DocumentParseError struct {
	Message string
	Cause   error
}

func (e *DocumentParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document parse failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("document parse failed: %s", e.Message)
}

func (e *DocumentParseError) Unwrap() error {
	return e.Cause
}
