package ingestion

import "fmt"

// IngestionError represents a failure to read or convert input text
type IngestionError struct {
	Source  string
	Message string
	Cause   error
}

func (e *IngestionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingestion error (%s): %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingestion error (%s): %s", e.Source, e.Message)
}

func (e *IngestionError) Unwrap() error {
	return e.Cause
}
