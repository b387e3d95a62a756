package extract

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the caller passes empty or whitespace-only
// input text. The provider is never called in this case.
var ErrEmptyInput = errors.New("input text is empty")

// CollaboratorError wraps a transport, auth, or quota failure from the
// model provider. The core does not retry these.
type CollaboratorError struct {
	Provider string
	Err      error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("provider %s unavailable: %v", e.Provider, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// SchemaViolationError reports model output that does not conform to the
// declared schema: wrong type, value outside an enumerated set or numeric
// bound, or a missing required field.
type SchemaViolationError struct {
	SchemaName string
	Err        error
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema %s violated: %v", e.SchemaName, e.Err)
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Err
}
