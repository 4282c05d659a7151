package record

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrInvalidID      = errors.New("invalid record id")
	ErrInvalidPayload = errors.New("invalid payload")
)

// FieldError reports a stored document missing a field a read path needs.
// Writes are not validated, so absence only surfaces when a view is built.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("record is missing field %q", e.Field)
}
