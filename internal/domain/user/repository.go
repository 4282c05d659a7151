package user

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

type Repository interface {
	// Insert stores a validated registration document. An insert that loses
	// the uniqueness race to a concurrent registration returns ErrEmailTaken.
	Insert(ctx context.Context, doc bson.M) error
	// EmailExists reports whether a user with this exact email is stored.
	EmailExists(ctx context.Context, email string) (bool, error)
}
