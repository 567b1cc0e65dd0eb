package transfer

import (
	"errors"
	"fmt"
)

// ErrQuotaExhausted stops an import early: once the daily API quota is gone,
// every further subscribe call would fail too. Outcomes gathered before the
// stop are preserved and reported.
var ErrQuotaExhausted = errors.New("API quota exhausted")

// ExtractionError represents a failed extraction run after bounded retries.
// The partial count is reported so the operator can judge whether to re-run;
// nothing partial is ever written to the backup file.
type ExtractionError struct {
	Gathered int   // Subscriptions gathered before the failure
	Cause    error // Underlying error cause
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed after gathering %d subscriptions: %v", e.Gathered, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// IsExtractionError checks if an error is an extraction error.
func IsExtractionError(err error) bool {
	var extractionErr *ExtractionError
	return errors.As(err, &extractionErr)
}
