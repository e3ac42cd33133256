package middleware

import (
	"context"
	"net/http"
	"strings"

	"ems/internal/auth"
	"ems/internal/domain/identity"
	"ems/internal/transport/http/api"
)

type ctxKey string

const ctxKeyUser ctxKey = "user"

// Auth resolves the bearer token into the request context. The token is
// only accepted while the session's current-user pointer still names the
// same user; after logout the pointer is gone and the token is dead
// weight. Requests without a usable token pass through anonymous.
func Auth(secret string, identitySvc *identity.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			current, ok, err := identitySvc.CurrentUser()
			if err != nil || !ok || current.ID != claims.UserID {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, current)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (identity.User, bool) {
	user, ok := ctx.Value(ctxKeyUser).(identity.User)
	return user, ok
}

// RequireRole gates a route to one role. An authenticated user with the
// wrong role is not failed outright: the 403 payload carries the home
// path for their actual role so the caller can land them there instead.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}
			if !identity.Authorize(user, role) {
				api.FailWithDetails(w, http.StatusForbidden, "forbidden", "role not permitted for this view",
					map[string]string{"role": user.Role, "redirect": identity.HomePath(user.Role)},
					GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
