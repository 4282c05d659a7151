package record

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	// List returns every record in the collection's natural order.
	List(ctx context.Context) ([]Record, error)
	// Insert stores an arbitrary document and returns its assigned id.
	Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	// FindByID returns ErrNotFound when no document matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Record, error)
	// UpdateByID merges fields into the matching document ($set semantics)
	// and reports how many documents matched.
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
	// DeleteByID reports how many documents were removed.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	// SearchByTitle matches the needle as a case-insensitive literal
	// substring of title. An empty needle matches everything.
	SearchByTitle(ctx context.Context, needle string) ([]Record, error)
	// IncrementLike atomically adds one to like on the document that has the
	// given id and a like field, reporting how many documents matched.
	IncrementLike(ctx context.Context, id primitive.ObjectID) (int64, error)
}
