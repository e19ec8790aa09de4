package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// YearlyEarning is one document per year, reconciled by upsert on "year".
type YearlyEarning struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Year   int                `bson:"year" json:"year"`
	Amount float64            `bson:"amount" json:"amount"`
}
