package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roamstay/vacation-rental-backend/apperr"
	"github.com/roamstay/vacation-rental-backend/models"
	"github.com/roamstay/vacation-rental-backend/store"
	"github.com/roamstay/vacation-rental-backend/utils"
)

type registerRequest struct {
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ImageURL string `json:"imageURL"`
}

// CreateUser registers a new user. A duplicate email is a 409; the registration
// never creates a second record for an email.
func CreateUser(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, apperr.Invalid("invalid request payload"))
			return
		}

		if req.Name == "" {
			writeError(w, r, apperr.Invalid("name is required"))
			return
		}
		if !utils.ValidEmail(req.Email) {
			writeError(w, r, apperr.Invalid("invalid email"))
			return
		}

		user := models.User{
			UID:       req.UID,
			Name:      req.Name,
			Email:     req.Email,
			ImageURL:  req.ImageURL,
			CreatedAt: time.Now(),
		}
		if req.Password != "" {
			hashed, err := utils.HashPassword(req.Password)
			if err != nil {
				writeError(w, r, err)
				return
			}
			user.Password = hashed
		}

		created, stored, err := users.Register(r.Context(), user)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if !created {
			log.Info().Str("email", stored.Email).Msg("registration for existing email")
			writeError(w, r, apperr.ErrConflict)
			return
		}

		writeJSON(w, http.StatusCreated, models.APIResponse{
			Success: true,
			Message: "User registered successfully",
			Data:    stored,
		})
	}
}

// GetUser serves both /users/{email} and /users?email=.
func GetUser(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)["email"]
		if email == "" {
			email = r.URL.Query().Get("email")
		}
		if !utils.ValidEmail(email) {
			writeError(w, r, apperr.Invalid("invalid email"))
			return
		}

		user, err := users.ByEmail(r.Context(), email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

func GetAllUsers(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := users.All(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		if all == nil {
			all = []models.User{}
		}
		writeJSON(w, http.StatusOK, all)
	}
}

// UpdateUserRole flips the stored isAdmin flag. The value must be a JSON
// boolean; a quoted "true" is rejected.
func UpdateUserRole(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, r, apperr.Invalid("invalid user ID"))
			return
		}

		var body struct {
			IsAdmin *bool `json:"isAdmin"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.IsAdmin == nil {
			writeError(w, r, apperr.Invalid("isAdmin must be a boolean"))
			return
		}

		if err := users.SetAdmin(r.Context(), id, *body.IsAdmin); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "User role updated",
		})
	}
}

// DeleteUser removes a user by id. Deleting an id twice reports not found on
// the second call.
func DeleteUser(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, r, apperr.Invalid("invalid user ID"))
			return
		}

		if err := users.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "User deleted",
		})
	}
}
