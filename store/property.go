package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roamstay/vacation-rental-backend/db"
	"github.com/roamstay/vacation-rental-backend/models"
)

type mongoPropertyStore struct {
	coll *mongo.Collection
}

func (s *mongoPropertyStore) Add(ctx context.Context, p models.Property) (models.Property, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	p.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, p); err != nil {
		return models.Property{}, translate(err)
	}
	return p, nil
}

func (s *mongoPropertyStore) All(ctx context.Context) ([]models.Property, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	properties, err := db.FindAll[models.Property](ctx, s.coll, bson.M{})
	if err != nil {
		return nil, translate(err)
	}
	return properties, nil
}
