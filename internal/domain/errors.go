package domain

import "fmt"

// ValidationError reports a field value that breaks its domain rule.
// It is always recoverable: the caller rejects the single operation or
// prompts for the value again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateIDError reports an Add that targets an id already in the
// inventory. The add is rejected and the collection stays unchanged.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("a product with id %q already exists", e.ID)
}
