package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/roamstay/vacation-rental-backend/apperr"
	"github.com/roamstay/vacation-rental-backend/models"
	"github.com/roamstay/vacation-rental-backend/store"
	"github.com/roamstay/vacation-rental-backend/utils"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// Login checks credentials and issues a session token. Nothing in the API
// requires the token; it exists for clients that track their own session.
func Login(users store.UserStore, tokens *utils.JWTManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials loginRequest
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			writeError(w, r, apperr.Invalid("invalid payload"))
			return
		}
		if !utils.ValidEmail(credentials.Email) {
			writeError(w, r, apperr.Invalid("invalid email"))
			return
		}

		user, err := users.ByEmail(r.Context(), credentials.Email)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
				return
			}
			writeError(w, r, err)
			return
		}

		if !utils.CheckPasswordHash(credentials.Password, user.Password) {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
			return
		}

		token, err := tokens.Generate(user.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := users.UpdateLastLogin(r.Context(), user.Email, time.Now()); err != nil {
			log.Warn().Err(err).Str("email", user.Email).Msg("failed to record last login")
		}

		writeJSON(w, http.StatusOK, loginResponse{Message: "Login successful", Token: token})
	}
}
