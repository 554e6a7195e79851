package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/aldirar/mufradat-api/internal/api/shared"
)

// UserIDHeader carries the learner's identity. Authentication lives at
// the gateway in front of this service; by the time a request reaches
// us the header is trusted.
const UserIDHeader = "X-User-ID"

// IdentityMiddleware extracts the learner ID from the X-User-ID header
// and places it in the request context. Requests without a parseable
// learner ID are rejected before reaching any handler.
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Missing X-User-ID header")
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil || userID == uuid.Nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
