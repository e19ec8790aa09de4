package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roamstay/vacation-rental-backend/db"
	"github.com/roamstay/vacation-rental-backend/models"
)

// Earnings are stored one document per year, reconciled by upsert on "year".
type mongoEarningsStore struct {
	coll *mongo.Collection
}

func (s *mongoEarningsStore) Reconcile(ctx context.Context, year int, amount float64) (db.Result, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := db.Reconcile(ctx, s.coll, bson.M{"year": year}, bson.M{"amount": amount})
	if err != nil {
		return db.Result{}, translate(err)
	}
	return res, nil
}

func (s *mongoEarningsStore) All(ctx context.Context) ([]models.YearlyEarning, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	earnings, err := db.FindAll[models.YearlyEarning](ctx, s.coll, bson.M{},
		options.Find().SetSort(bson.D{{Key: "year", Value: 1}}))
	if err != nil {
		return nil, translate(err)
	}
	return earnings, nil
}

func (s *mongoEarningsStore) ByYear(ctx context.Context, year int) (*models.YearlyEarning, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	e, err := db.FindOne[models.YearlyEarning](ctx, s.coll, bson.M{"year": year})
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}
