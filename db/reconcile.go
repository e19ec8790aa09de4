// Package db holds the upsert-reconciliation core shared by every
// create-or-update call site (bookings, yearly earnings, user profile).
package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Updater is the slice of *mongo.Collection the reconcile operations need.
type Updater interface {
	UpdateOne(ctx context.Context, filter interface{}, update interface{},
		opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

// Result reports which branch a reconcile took. Created means the document
// did not exist and was inserted; Affected means an existing document's
// fields actually changed. A repeated identical call reports both false.
// UpsertedID carries the _id of a newly inserted document.
type Result struct {
	Created    bool        `json:"created"`
	Affected   bool        `json:"affected"`
	UpsertedID interface{} `json:"-"`
}

// Reconcile locates at most one document matching filter and merges payload
// into it, inserting filter+payload as a new document when none matches.
// The whole operation is a single atomic upsert, so it is safe to retry:
// applying the same (filter, payload) twice leaves the store unchanged.
func Reconcile(ctx context.Context, coll Updater, filter, payload bson.M) (Result, error) {
	res, err := coll.UpdateOne(ctx, filter, bson.M{"$set": payload},
		options.Update().SetUpsert(true))
	if err != nil {
		return Result{}, err
	}
	return fromUpdateResult(res), nil
}

// ReconcileOnInsert inserts doc if no document matches filter, and leaves an
// existing match untouched. Created=false signals the record already existed.
// This replaces a separate existence check followed by an insert, which two
// concurrent callers can both pass.
func ReconcileOnInsert(ctx context.Context, coll Updater, filter, doc bson.M) (Result, error) {
	res, err := coll.UpdateOne(ctx, filter, bson.M{"$setOnInsert": doc},
		options.Update().SetUpsert(true))
	if err != nil {
		return Result{}, err
	}
	return fromUpdateResult(res), nil
}

// Update merges payload into an existing match only. A filter matching
// nothing is a no-op, never an insert; use it when the record's existence was
// already established and a concurrent delete must not resurrect it.
func Update(ctx context.Context, coll Updater, filter, payload bson.M) (Result, error) {
	res, err := coll.UpdateOne(ctx, filter, bson.M{"$set": payload})
	if err != nil {
		return Result{}, err
	}
	return fromUpdateResult(res), nil
}

func fromUpdateResult(res *mongo.UpdateResult) Result {
	return Result{
		Created:    res.UpsertedCount > 0,
		Affected:   res.ModifiedCount > 0,
		UpsertedID: res.UpsertedID,
	}
}
