package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roamstay/vacation-rental-backend/db"
)

// Resort documents carry no enforced schema; they are stored and returned
// as-is.
type mongoResortStore struct {
	coll *mongo.Collection
}

func (s *mongoResortStore) Add(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	id := primitive.NewObjectID()
	doc["_id"] = id
	// Bookings reference resorts by the string resortId, so every resort
	// needs one for the lookup join to match.
	if _, ok := doc["resortId"]; !ok {
		doc["resortId"] = id.Hex()
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return primitive.NilObjectID, translate(err)
	}
	return id, nil
}

func (s *mongoResortStore) All(ctx context.Context) ([]bson.M, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	resorts, err := db.FindAll[bson.M](ctx, s.coll, bson.M{})
	if err != nil {
		return nil, translate(err)
	}
	return resorts, nil
}

func (s *mongoResortStore) ByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	doc, err := db.FindOne[bson.M](ctx, s.coll, bson.M{"_id": id})
	if err != nil {
		return nil, translate(err)
	}
	return *doc, nil
}
