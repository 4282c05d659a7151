package user

import (
	"errors"
	"fmt"
)

var (
	ErrEmailTaken     = errors.New("this mail already exist")
	ErrInvalidPayload = errors.New("invalid payload")
)

// ValidationError names the registration field that failed and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
