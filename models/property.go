package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type PropertyDetails struct {
	Name    string `bson:"name" json:"name" validate:"required"`
	Country string `bson:"country" json:"country" validate:"required"`
	Address string `bson:"address" json:"address" validate:"required"`
	City    string `bson:"city" json:"city" validate:"required"`
	State   string `bson:"state" json:"state" validate:"required"`
	ZipCode string `bson:"zipCode" json:"zipCode" validate:"required"`
}

type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PropertyType string             `bson:"propertyType" json:"propertyType" validate:"required"`
	Location     string             `bson:"location" json:"location" validate:"required"`
	Details      PropertyDetails    `bson:"details" json:"details" validate:"required"`
	Price        int                `bson:"price,omitempty" json:"price,omitempty"`
	Bedrooms     int                `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms    int                `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	ImageURL     string             `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
	CreatedBy    string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
}
