package user

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	MinPasswordLen = 6
	MaxPasswordLen = 36
)

var requiredFields = []string{"first_name", "last_name", "email", "password"}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Validator interface {
	Validate(doc bson.M) error
}

// SchemaValidator checks a registration payload field by field. The schema
// is permissive: unknown extra keys are accepted and persisted untouched.
type SchemaValidator struct{}

func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{}
}

func (v *SchemaValidator) Validate(doc bson.M) error {
	for _, field := range requiredFields {
		raw, ok := doc[field]
		if !ok {
			return &ValidationError{Field: field, Reason: "missing data for required field"}
		}
		if _, ok := raw.(string); !ok {
			return &ValidationError{Field: field, Reason: "not a valid string"}
		}
	}

	if !emailRe.MatchString(doc["email"].(string)) {
		return &ValidationError{Field: "email", Reason: "not a valid email address"}
	}

	if n := utf8.RuneCountInString(doc["password"].(string)); n < MinPasswordLen || n > MaxPasswordLen {
		return &ValidationError{
			Field:  "password",
			Reason: fmt.Sprintf("length must be between %d and %d", MinPasswordLen, MaxPasswordLen),
		}
	}

	return nil
}
