package middlewares

import (
	"context"
	"net/http"

	"github.com/mkarasev/loginapp/internal/jwt"
	"github.com/mkarasev/loginapp/internal/logger"
	"github.com/mkarasev/loginapp/internal/models"
	"github.com/mkarasev/loginapp/internal/sessions"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// SessionGetter is the subset of the session store the middleware needs.
type SessionGetter interface {
	Get(id string) (*sessions.Session, bool)
}

// Tokener validates bearer tokens for API clients.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext returns the authenticated user placed into the
// request context by AuthMiddleware.
func UserFromContext(ctx context.Context) (models.UserView, bool) {
	user, ok := ctx.Value(userContextKey).(models.UserView)
	return user, ok
}

// AuthMiddleware authenticates a request from the session cookie (UI
// clients) or, failing that, from an Authorization bearer token (API
// clients). On success the sanitized user view is placed into the
// request context.
func AuthMiddleware(store SessionGetter, tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if id, ok := sessions.FromRequest(r); ok {
				if sess, ok := store.Get(id); ok {
					ctx = context.WithValue(ctx, userContextKey, sess.User)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = context.WithValue(ctx, userContextKey, models.UserView{
				Username: claims.Username,
				Role:     claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated requests whose user does not carry
// the given role. Must run after AuthMiddleware.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user.Role != role {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
