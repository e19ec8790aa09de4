package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindOne decodes the single document matching filter into T.
func FindOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var result T
	if err := coll.FindOne(ctx, filter).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FindAll decodes every document matching filter.
func FindAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M,
	opts ...*options.FindOptions) ([]T, error) {

	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
