package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UID             string             `bson:"uid,omitempty" json:"uid,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password,omitempty" json:"-"`
	ImageURL        string             `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
	IsAdmin         bool               `bson:"isAdmin" json:"isAdmin"`
	Age             int                `bson:"age,omitempty" json:"age,omitempty"`
	SecurityDeposit int                `bson:"securityDeposit,omitempty" json:"securityDeposit,omitempty"`
	IDNumber        string             `bson:"idNumber,omitempty" json:"idNumber,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	LastLogin       time.Time          `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
}
