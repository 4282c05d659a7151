package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"

	"linkboard/internal/domain/user"
)

type UserRepository struct {
	collection *mongo.Collection
	log        *slog.Logger
}

func NewUserRepository(storage *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		collection: storage.db.Collection(usersCollection),
		log:        log,
	}
}

func (r *UserRepository) Insert(ctx context.Context, doc bson.M) error {
	_, err := r.collection.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		// Lost the race against a concurrent registration; the unique
		// email index had the final word.
		return user.ErrEmailTaken
	}
	return err
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
