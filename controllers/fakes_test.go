package controllers

import (
	"context"
	"reflect"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roamstay/vacation-rental-backend/apperr"
	"github.com/roamstay/vacation-rental-backend/db"
	"github.com/roamstay/vacation-rental-backend/models"
)

// In-memory doubles implementing the store interfaces with the same
// reconcile semantics as the Mongo implementations. Each fake counts calls
// so tests can assert validation happens before any store access.

type fakeUserStore struct {
	users map[string]models.User // keyed by email
	calls int
	err   error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) Register(_ context.Context, u models.User) (bool, *models.User, error) {
	f.calls++
	if f.err != nil {
		return false, nil, f.err
	}
	if existing, ok := f.users[u.Email]; ok {
		return false, &existing, nil
	}
	u.ID = primitive.NewObjectID()
	f.users[u.Email] = u
	return true, &u, nil
}

func (f *fakeUserStore) ByEmail(_ context.Context, email string) (*models.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) All(_ context.Context) ([]models.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	all := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, u)
	}
	return all, nil
}

func (f *fakeUserStore) SetAdmin(_ context.Context, id primitive.ObjectID, isAdmin bool) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	for email, u := range f.users {
		if u.ID == id {
			u.IsAdmin = isAdmin
			f.users[email] = u
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (f *fakeUserStore) UpdateLastLogin(_ context.Context, email string, at time.Time) error {
	f.calls++
	if u, ok := f.users[email]; ok {
		u.LastLogin = at
		f.users[email] = u
	}
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
			return nil
		}
	}
	return apperr.ErrNotFound
}

type fakeBookingStore struct {
	docs  map[models.BookingKey]bson.M
	calls int
	err   error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{docs: make(map[models.BookingKey]bson.M)}
}

func (f *fakeBookingStore) Reconcile(_ context.Context, key models.BookingKey, fields bson.M) (db.Result, error) {
	f.calls++
	if f.err != nil {
		return db.Result{}, f.err
	}
	doc, ok := f.docs[key]
	if !ok {
		doc = bson.M{"_id": primitive.NewObjectID(), "email": key.Email, "resortId": key.ResortID}
		for k, v := range fields {
			doc[k] = v
		}
		f.docs[key] = doc
		return db.Result{Created: true}, nil
	}
	affected := false
	for k, v := range fields {
		if !reflect.DeepEqual(doc[k], v) {
			doc[k] = v
			affected = true
		}
	}
	return db.Result{Created: false, Affected: affected}, nil
}

func (f *fakeBookingStore) ByEmail(_ context.Context, email string) ([]bson.M, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []bson.M
	for key, doc := range f.docs {
		if key.Email == email {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) ByEmailWithResorts(ctx context.Context, email string) ([]bson.M, error) {
	return f.ByEmail(ctx, email)
}

func (f *fakeBookingStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	for key, doc := range f.docs {
		if doc["_id"] == id {
			delete(f.docs, key)
			return nil
		}
	}
	return apperr.ErrNotFound
}

type fakeResortStore struct {
	docs  map[primitive.ObjectID]bson.M
	calls int
	err   error
}

func newFakeResortStore() *fakeResortStore {
	return &fakeResortStore{docs: make(map[primitive.ObjectID]bson.M)}
}

func (f *fakeResortStore) Add(_ context.Context, doc bson.M) (primitive.ObjectID, error) {
	f.calls++
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	id := primitive.NewObjectID()
	doc["_id"] = id
	if _, ok := doc["resortId"]; !ok {
		doc["resortId"] = id.Hex()
	}
	f.docs[id] = doc
	return id, nil
}

func (f *fakeResortStore) All(_ context.Context) ([]bson.M, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []bson.M
	for _, doc := range f.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (f *fakeResortStore) ByID(_ context.Context, id primitive.ObjectID) (bson.M, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return doc, nil
}

type fakePropertyStore struct {
	docs  []models.Property
	calls int
	err   error
}

func (f *fakePropertyStore) Add(_ context.Context, p models.Property) (models.Property, error) {
	f.calls++
	if f.err != nil {
		return models.Property{}, f.err
	}
	p.ID = primitive.NewObjectID()
	f.docs = append(f.docs, p)
	return p, nil
}

func (f *fakePropertyStore) All(_ context.Context) ([]models.Property, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

// fakeEarningsStore fails every Reconcile after failAfter successful ones
// when failAfter >= 0, to exercise partial batch application.
type fakeEarningsStore struct {
	amounts   map[int]float64
	calls     int
	failAfter int
}

func newFakeEarningsStore() *fakeEarningsStore {
	return &fakeEarningsStore{amounts: make(map[int]float64), failAfter: -1}
}

func (f *fakeEarningsStore) Reconcile(_ context.Context, year int, amount float64) (db.Result, error) {
	if f.failAfter >= 0 && f.calls >= f.failAfter {
		return db.Result{}, apperr.ErrUnavailable
	}
	f.calls++
	prev, existed := f.amounts[year]
	f.amounts[year] = amount
	return db.Result{Created: !existed, Affected: existed && prev != amount}, nil
}

func (f *fakeEarningsStore) All(_ context.Context) ([]models.YearlyEarning, error) {
	years := make([]int, 0, len(f.amounts))
	for y := range f.amounts {
		years = append(years, y)
	}
	sort.Ints(years)
	out := make([]models.YearlyEarning, 0, len(years))
	for _, y := range years {
		out = append(out, models.YearlyEarning{Year: y, Amount: f.amounts[y]})
	}
	return out, nil
}

func (f *fakeEarningsStore) ByYear(_ context.Context, year int) (*models.YearlyEarning, error) {
	amount, ok := f.amounts[year]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &models.YearlyEarning{Year: year, Amount: amount}, nil
}
