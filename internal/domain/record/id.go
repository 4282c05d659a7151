package record

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID decodes the external identifier string into the store's ObjectID.
// Only syntax is checked here; existence is the store's problem.
func ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// FormatID is the inverse of ParseID and always succeeds.
func FormatID(id primitive.ObjectID) string {
	return id.Hex()
}
