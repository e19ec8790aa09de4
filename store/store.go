// Package store provides the data access layer. Handlers depend on these
// interfaces so tests can substitute in-memory doubles for MongoDB.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roamstay/vacation-rental-backend/db"
	"github.com/roamstay/vacation-rental-backend/models"
)

type UserStore interface {
	// Register creates the user unless one with the same email already
	// exists. stored is the new record (with its assigned id) when
	// created, or the existing record when not.
	Register(ctx context.Context, u models.User) (created bool, stored *models.User, err error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)
	SetAdmin(ctx context.Context, id primitive.ObjectID, isAdmin bool) error
	UpdateLastLogin(ctx context.Context, email string, at time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BookingStore interface {
	// Reconcile upserts on the (email, resortId) composite key, merging
	// fields into the existing booking if one is present.
	Reconcile(ctx context.Context, key models.BookingKey, fields bson.M) (db.Result, error)
	ByEmail(ctx context.Context, email string) ([]bson.M, error)
	ByEmailWithResorts(ctx context.Context, email string) ([]bson.M, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ResortStore interface {
	Add(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	All(ctx context.Context) ([]bson.M, error)
	ByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
}

type PropertyStore interface {
	Add(ctx context.Context, p models.Property) (models.Property, error)
	All(ctx context.Context) ([]models.Property, error)
}

type EarningsStore interface {
	// Reconcile upserts the earnings document for a year.
	Reconcile(ctx context.Context, year int, amount float64) (db.Result, error)
	// All returns earnings sorted ascending by year.
	All(ctx context.Context) ([]models.YearlyEarning, error)
	ByYear(ctx context.Context, year int) (*models.YearlyEarning, error)
}

// Stores bundles every collection's store for injection into the routes.
type Stores struct {
	Users      UserStore
	Bookings   BookingStore
	Resorts    ResortStore
	Properties PropertyStore
	Earnings   EarningsStore
}
