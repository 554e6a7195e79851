package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/api/shared"
)

// getUserIDFromContext extracts the learner's UUID from the request
// context. The identity middleware places it there; a missing value
// means the middleware chain is misconfigured.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// requireUserID extracts the learner ID or writes a 401 and reports
// failure.
func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return uuid.Nil, false
	}
	return userID, true
}
