package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roamstay/vacation-rental-backend/apperr"
	"github.com/roamstay/vacation-rental-backend/models"
	"github.com/roamstay/vacation-rental-backend/store"
	"github.com/roamstay/vacation-rental-backend/utils"
)

// UpsertBooking reconciles a booking on its (email, resortId) composite key:
// a first PUT creates the booking, later PUTs merge the remaining fields into
// it. At most one booking exists per pair.
func UpsertBooking(bookings store.BookingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, r, apperr.Invalid("invalid request payload"))
			return
		}

		email, _ := payload["email"].(string)
		resortID, _ := payload["resortId"].(string)
		if !utils.ValidEmail(email) {
			writeError(w, r, apperr.Invalid("invalid email"))
			return
		}
		if resortID == "" {
			writeError(w, r, apperr.Invalid("resortId is required"))
			return
		}

		delete(payload, "_id")
		delete(payload, "id")

		fields := bson.M{}
		for k, v := range payload {
			fields[k] = v
		}

		key := models.BookingKey{Email: email, ResortID: resortID}
		result, err := bookings.Reconcile(r.Context(), key, fields)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.ReconcileResponse{
			Created:  result.Created,
			Affected: result.Affected,
		})
	}
}

func GetBookings(bookings store.BookingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if !utils.ValidEmail(email) {
			writeError(w, r, apperr.Invalid("invalid email"))
			return
		}

		var (
			results []bson.M
			err     error
		)
		if r.URL.Query().Get("withResorts") == "true" {
			results, err = bookings.ByEmailWithResorts(r.Context(), email)
		} else {
			results, err = bookings.ByEmail(r.Context(), email)
		}
		if err != nil {
			writeError(w, r, err)
			return
		}
		if results == nil {
			results = []bson.M{}
		}
		writeJSON(w, http.StatusOK, results)
	}
}

func DeleteBooking(bookings store.BookingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, r, apperr.Invalid("invalid booking ID"))
			return
		}

		if err := bookings.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Booking deleted",
		})
	}
}
