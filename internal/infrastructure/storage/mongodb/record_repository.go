package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"

	"linkboard/internal/domain/record"
)

type RecordRepository struct {
	collection *mongo.Collection
	log        *slog.Logger
}

func NewRecordRepository(storage *Storage, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		collection: storage.db.Collection(recordsCollection),
		log:        log,
	}
}

func (r *RecordRepository) List(ctx context.Context) ([]record.Record, error) {
	return r.find(ctx, bson.M{})
}

func (r *RecordRepository) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

func (r *RecordRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*record.Record, error) {
	var rec record.Record
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, record.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *RecordRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *RecordRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *RecordRepository) SearchByTitle(ctx context.Context, needle string) ([]record.Record, error) {
	// Quoted so the needle matches as a literal substring, not a pattern.
	filter := bson.M{"title": primitive.Regex{Pattern: regexp.QuoteMeta(needle), Options: "i"}}
	return r.find(ctx, filter)
}

func (r *RecordRepository) IncrementLike(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "like": bson.M{"$exists": true}},
		bson.M{"$inc": bson.M{"like": 1}},
	)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *RecordRepository) find(ctx context.Context, filter bson.M) ([]record.Record, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var records []record.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
