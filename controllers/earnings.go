package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/roamstay/vacation-rental-backend/apperr"
	"github.com/roamstay/vacation-rental-backend/models"
	"github.com/roamstay/vacation-rental-backend/store"
)

type earningEntry struct {
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
}

// UpsertEarnings accepts either a single {year, amount} object or an array of
// them. The batch form applies entries one by one and is not atomic: on
// failure the response reports how many entries were already written and
// which year failed.
func UpsertEarnings(earnings store.EarningsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			writeError(w, r, apperr.Invalid("invalid request payload"))
			return
		}

		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var entries []earningEntry
			if err := json.Unmarshal(raw, &entries); err != nil {
				writeError(w, r, apperr.Invalid("invalid earnings array"))
				return
			}
			upsertEarningsBatch(w, r, earnings, entries)
			return
		}

		var entry earningEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			writeError(w, r, apperr.Invalid("invalid earnings payload"))
			return
		}
		if entry.Year <= 0 {
			writeError(w, r, apperr.Invalid("year must be positive"))
			return
		}

		result, err := earnings.Reconcile(r.Context(), entry.Year, entry.Amount)
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

func upsertEarningsBatch(w http.ResponseWriter, r *http.Request, earnings store.EarningsStore, entries []earningEntry) {
	for _, entry := range entries {
		if entry.Year <= 0 {
			writeError(w, r, apperr.Invalid("year must be positive"))
			return
		}
	}

	applied := 0
	for _, entry := range entries {
		if _, err := earnings.Reconcile(r.Context(), entry.Year, entry.Amount); err != nil {
			// Entries before this one are already written.
			failed := entry.Year
			writeJSON(w, apperr.Status(err), models.BulkEarningsResponse{
				Applied:    applied,
				Total:      len(entries),
				FailedYear: &failed,
			})
			return
		}
		applied++
	}

	writeJSON(w, http.StatusOK, models.BulkEarningsResponse{
		Applied: applied,
		Total:   len(entries),
	})
}

// GetEarnings returns every yearly record sorted ascending by year.
func GetEarnings(earnings store.EarningsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := earnings.All(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		if all == nil {
			all = []models.YearlyEarning{}
		}
		writeJSON(w, http.StatusOK, all)
	}
}

func GetEarningsByYear(earnings store.EarningsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := strconv.Atoi(mux.Vars(r)["year"])
		if err != nil || year <= 0 {
			writeError(w, r, apperr.Invalid("invalid year"))
			return
		}

		record, err := earnings.ByYear(r.Context(), year)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}
