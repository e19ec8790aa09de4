package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	"github.com/roamstay/vacation-rental-backend/apperr"
	"github.com/roamstay/vacation-rental-backend/models"
	"github.com/roamstay/vacation-rental-backend/store"
)

const propertyListCacheKey = "properties:all"

var validate = validator.New()

// AddProperty validates the full property shape before any write: a missing
// propertyType, location or details sub-field rejects the request and stores
// nothing.
func AddProperty(properties store.PropertyStore, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var property models.Property
		if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
			writeError(w, r, apperr.Invalid("invalid request payload"))
			return
		}

		if err := validate.Struct(property); err != nil {
			writeError(w, r, apperr.Invalid("missing required property fields: %v", err))
			return
		}

		created, err := properties.Add(r.Context(), property)
		if err != nil {
			writeError(w, r, err)
			return
		}
		invalidateCache(redisClient, propertyListCacheKey)

		writeJSON(w, http.StatusCreated, models.APIResponse{
			Success: true,
			Message: "Property added",
			Data:    created,
		})
	}
}

func GetProperties(properties store.PropertyStore, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if serveCached(redisClient, w, r, propertyListCacheKey) {
			return
		}

		all, err := properties.All(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		if all == nil {
			all = []models.Property{}
		}

		body, err := json.Marshal(all)
		if err != nil {
			writeError(w, r, err)
			return
		}
		cacheResult(redisClient, r, propertyListCacheKey, body)

		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}
}
