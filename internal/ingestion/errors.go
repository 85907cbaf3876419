package ingestion

import "fmt"

// ExtractionError is the single failure type surfaced by text extraction.
// The ranking pipeline treats it as a per-candidate failure and continues
// with the remaining candidates.
type ExtractionError struct {
	Path  string
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
