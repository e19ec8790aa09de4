package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roamstay/vacation-rental-backend/apperr"
	"github.com/roamstay/vacation-rental-backend/db"
	"github.com/roamstay/vacation-rental-backend/models"
)

type mongoUserStore struct {
	coll *mongo.Collection
}

func (s *mongoUserStore) Register(ctx context.Context, u models.User) (bool, *models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	doc := bson.M{
		"uid":       u.UID,
		"name":      u.Name,
		"email":     u.Email,
		"password":  u.Password,
		"imageURL":  u.ImageURL,
		"isAdmin":   u.IsAdmin,
		"createdAt": u.CreatedAt,
	}
	res, err := db.ReconcileOnInsert(ctx, s.coll, bson.M{"email": u.Email}, doc)
	if err != nil {
		return false, nil, translate(err)
	}
	if res.Created {
		if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
			u.ID = id
		}
		return true, &u, nil
	}

	existing, err := db.FindOne[models.User](ctx, s.coll, bson.M{"email": u.Email})
	if err != nil {
		return false, nil, translate(err)
	}
	return false, existing, nil
}

func (s *mongoUserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	u, err := db.FindOne[models.User](ctx, s.coll, bson.M{"email": email})
	if err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (s *mongoUserStore) All(ctx context.Context) ([]models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	users, err := db.FindAll[models.User](ctx, s.coll, bson.M{})
	if err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (s *mongoUserStore) SetAdmin(ctx context.Context, id primitive.ObjectID, isAdmin bool) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isAdmin": isAdmin}})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// UpdateLastLogin is deliberately not an upsert: login already proved the
// user exists, and a concurrent delete must not leave a stub document behind.
func (s *mongoUserStore) UpdateLastLogin(ctx context.Context, email string, at time.Time) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := db.Update(ctx, s.coll, bson.M{"email": email}, bson.M{"lastLogin": at})
	return translate(err)
}

func (s *mongoUserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
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
