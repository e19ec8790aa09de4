package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roamstay/vacation-rental-backend/apperr"
)

const queryTimeout = 5 * time.Second

// NewMongoStores wires every store to its collection.
func NewMongoStores(database *mongo.Database) *Stores {
	return &Stores{
		Users:      &mongoUserStore{coll: database.Collection("users")},
		Bookings:   &mongoBookingStore{coll: database.Collection("bookings")},
		Resorts:    &mongoResortStore{coll: database.Collection("resorts")},
		Properties: &mongoPropertyStore{coll: database.Collection("properties")},
		Earnings:   &mongoEarningsStore{coll: database.Collection("yearly_earnings")},
	}
}

// EnsureIndexes creates the unique indexes that back the upsert fast paths:
// users.email and the bookings (email, resortId) composite key.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	_, err = database.Collection("bookings").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "resortId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("bookings composite index: %w", err)
	}

	_, err = database.Collection("yearly_earnings").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "year", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("earnings year index: %w", err)
	}
	return nil
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

// translate maps driver errors onto the apperr taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperr.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return apperr.ErrConflict
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err), mongo.IsNetworkError(err):
		return fmt.Errorf("%w: %v", apperr.ErrUnavailable, err)
	default:
		return err
	}
}
