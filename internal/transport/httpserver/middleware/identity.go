package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey int

const userIDKey contextKey = iota

// NewUserIdentity stamps the configured user ID onto every request.
// The service is single-tenant, so there is no credential to check;
// the rest of the stack still scopes every query by the context user.
func NewUserIdentity(userID string) func(http.Handler) http.Handler {
	userID = strings.TrimSpace(userID)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID == "" {
				http.Error(w, "user identity not configured", http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
