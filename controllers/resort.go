package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roamstay/vacation-rental-backend/apperr"
	"github.com/roamstay/vacation-rental-backend/models"
	"github.com/roamstay/vacation-rental-backend/store"
)

const resortListCacheKey = "resorts:all"

// AddResort stores a resort document as-is; resorts carry no enforced schema.
func AddResort(resorts store.ResortStore, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc bson.M
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			writeError(w, r, apperr.Invalid("invalid request payload"))
			return
		}
		if len(doc) == 0 {
			writeError(w, r, apperr.Invalid("empty resort document"))
			return
		}
		delete(doc, "_id")

		id, err := resorts.Add(r.Context(), doc)
		if err != nil {
			writeError(w, r, err)
			return
		}
		invalidateCache(redisClient, resortListCacheKey)

		writeJSON(w, http.StatusCreated, models.APIResponse{
			Success: true,
			Message: "Resort added",
			Data:    bson.M{"id": id.Hex()},
		})
	}
}

func GetResorts(resorts store.ResortStore, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if serveCached(redisClient, w, r, resortListCacheKey) {
			return
		}

		all, err := resorts.All(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		if all == nil {
			all = []bson.M{}
		}

		body, err := json.Marshal(all)
		if err != nil {
			writeError(w, r, err)
			return
		}
		cacheResult(redisClient, r, resortListCacheKey, body)

		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}
}

func GetResortByID(resorts store.ResortStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, r, apperr.Invalid("invalid resort ID"))
			return
		}

		doc, err := resorts.ByID(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}
