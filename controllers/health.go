package controllers

import (
	"context"
	"net/http"

	"github.com/roamstay/vacation-rental-backend/apperr"
	"github.com/roamstay/vacation-rental-backend/models"
)

// Health pings the store; a failed ping is a 500 so load balancers can drop
// the instance.
func Health(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ping(r.Context()); err != nil {
			writeError(w, r, apperr.ErrUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, models.APIResponse{Success: true, Message: "ok"})
	}
}
