package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
)

// Tokener defines the minimal token extraction interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves a session token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, tokenString string) (*models.UserDB, error)
}

// userContextKey is an unexported type for the authenticated-user
// context entry.
type userContextKey struct{}

var userKey = userContextKey{}

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user set by AuthMiddleware,
// or nil when the request was not authenticated.
func UserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}

// AuthMiddleware returns a middleware that gates every wrapped route:
// the bearer token is resolved to a user before the handler runs, and
// the user is injected into the request context. Any failure rejects
// the request with 401 before side effects.
func AuthMiddleware(tokener Tokener, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
				return
			}

			user, err := auth.Authenticate(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}
