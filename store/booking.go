package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roamstay/vacation-rental-backend/apperr"
	"github.com/roamstay/vacation-rental-backend/db"
	"github.com/roamstay/vacation-rental-backend/models"
)

type mongoBookingStore struct {
	coll *mongo.Collection
}

func (s *mongoBookingStore) Reconcile(ctx context.Context, key models.BookingKey, fields bson.M) (db.Result, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{"email": key.Email, "resortId": key.ResortID}
	res, err := db.Reconcile(ctx, s.coll, filter, fields)
	if err != nil {
		return db.Result{}, translate(err)
	}
	return res, nil
}

func (s *mongoBookingStore) ByEmail(ctx context.Context, email string) ([]bson.M, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	bookings, err := db.FindAll[bson.M](ctx, s.coll, bson.M{"email": email})
	if err != nil {
		return nil, translate(err)
	}
	return bookings, nil
}

// ByEmailWithResorts joins each booking with its resort document. Bookings
// whose resortId no longer matches a resort come back without one.
func (s *mongoBookingStore) ByEmailWithResorts(ctx context.Context, email string) ([]bson.M, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{
			{Key: "$match", Value: bson.M{"email": email}},
		},
		{
			{Key: "$lookup", Value: bson.M{
				"from":         "resorts",
				"localField":   "resortId",
				"foreignField": "resortId",
				"as":           "resort",
			}},
		},
		{
			{Key: "$unwind", Value: bson.M{
				"path":                       "$resort",
				"preserveNullAndEmptyArrays": true,
			}},
		},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var joined []bson.M
	if err := cursor.All(ctx, &joined); err != nil {
		return nil, translate(err)
	}
	return joined, nil
}

func (s *mongoBookingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
