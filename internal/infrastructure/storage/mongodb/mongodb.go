package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"linkboard/internal/config"
)

const (
	recordsCollection = "records"
	usersCollection   = "users"
)

// Storage holds the one pooled client shared by every repository.
// It is built at process start and closed on shutdown.
type Storage struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DB.URI))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	s := &Storage{
		client: client,
		db:     client.Database(cfg.DB.Database),
	}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	return s, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// ensureIndexes backs the registration uniqueness check with a unique index,
// so the check-then-insert window cannot produce two users with one email.
func (s *Storage) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
