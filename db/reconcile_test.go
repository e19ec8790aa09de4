package db

import (
	"context"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type recordingUpdater struct {
	filter interface{}
	update interface{}
	upsert bool
	result *mongo.UpdateResult
	err    error
}

func (u *recordingUpdater) UpdateOne(_ context.Context, filter, update interface{},
	opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {

	u.filter = filter
	u.update = update
	for _, opt := range opts {
		if opt.Upsert != nil && *opt.Upsert {
			u.upsert = true
		}
	}
	return u.result, u.err
}

func TestReconcile_Insert(t *testing.T) {
	coll := &recordingUpdater{result: &mongo.UpdateResult{UpsertedCount: 1}}

	res, err := Reconcile(context.Background(), coll,
		bson.M{"email": "a@b.com", "resortId": "r1"}, bson.M{"nights": 3})
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if !res.Created || res.Affected {
		t.Errorf("expected created without affected, got %+v", res)
	}
	if !coll.upsert {
		t.Error("Reconcile must run as an upsert")
	}
	want := bson.M{"$set": bson.M{"nights": 3}}
	if !reflect.DeepEqual(coll.update, want) {
		t.Errorf("unexpected update document: %v", coll.update)
	}
}

func TestReconcile_Update(t *testing.T) {
	coll := &recordingUpdater{result: &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}}

	res, err := Reconcile(context.Background(), coll, bson.M{"year": 2025}, bson.M{"amount": 10.0})
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if res.Created || !res.Affected {
		t.Errorf("expected affected without created, got %+v", res)
	}
}

func TestReconcile_NoChange(t *testing.T) {
	// Matched but nothing modified: the repeat of an identical call.
	coll := &recordingUpdater{result: &mongo.UpdateResult{MatchedCount: 1}}

	res, err := Reconcile(context.Background(), coll, bson.M{"year": 2025}, bson.M{"amount": 10.0})
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if res.Created || res.Affected {
		t.Errorf("identical repeat should report neither flag, got %+v", res)
	}
}

func TestUpdate_NeverUpserts(t *testing.T) {
	// A filter matching nothing must stay a no-op, not create a stub.
	coll := &recordingUpdater{result: &mongo.UpdateResult{}}

	res, err := Update(context.Background(), coll,
		bson.M{"email": "gone@b.com"}, bson.M{"lastLogin": "now"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if coll.upsert {
		t.Error("Update must not run as an upsert")
	}
	if res.Created || res.Affected {
		t.Errorf("unmatched update should report neither flag, got %+v", res)
	}
	want := bson.M{"$set": bson.M{"lastLogin": "now"}}
	if !reflect.DeepEqual(coll.update, want) {
		t.Errorf("unexpected update document: %v", coll.update)
	}
}

func TestReconcileOnInsert(t *testing.T) {
	oid := "u-123"
	coll := &recordingUpdater{result: &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: oid}}

	res, err := ReconcileOnInsert(context.Background(), coll,
		bson.M{"email": "a@b.com"}, bson.M{"email": "a@b.com", "name": "Ana"})
	if err != nil {
		t.Fatalf("ReconcileOnInsert failed: %v", err)
	}
	if !res.Created {
		t.Error("expected created=true for a first insert")
	}
	if res.UpsertedID != oid {
		t.Errorf("expected UpsertedID %q surfaced, got %v", oid, res.UpsertedID)
	}
	if !coll.upsert {
		t.Error("ReconcileOnInsert must run as an upsert")
	}
	update, ok := coll.update.(bson.M)
	if !ok {
		t.Fatalf("unexpected update type %T", coll.update)
	}
	if _, ok := update["$setOnInsert"]; !ok {
		t.Error("existing documents must not be modified: update lacks $setOnInsert")
	}
	if _, ok := update["$set"]; ok {
		t.Error("ReconcileOnInsert must not carry a $set stage")
	}
}

func TestReconcileOnInsert_AlreadyExists(t *testing.T) {
	coll := &recordingUpdater{result: &mongo.UpdateResult{MatchedCount: 1}}

	res, err := ReconcileOnInsert(context.Background(), coll,
		bson.M{"email": "a@b.com"}, bson.M{"email": "a@b.com"})
	if err != nil {
		t.Fatalf("ReconcileOnInsert failed: %v", err)
	}
	if res.Created || res.Affected {
		t.Errorf("existing record should report neither flag, got %+v", res)
	}
}
