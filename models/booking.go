package models

// Bookings are stored as free-form documents keyed by (email, resortId); any
// extra fields sent by the client are merged into the stored document on
// reconcile. BookingKey carries just the natural key extracted from a payload.
type BookingKey struct {
	Email    string `json:"email"`
	ResortID string `json:"resortId"`
}
