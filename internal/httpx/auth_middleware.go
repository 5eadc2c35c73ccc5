package httpx

import (
	"net/http"
	"strings"

	"bookreviews/internal/auth"
)

// AuthMiddleware validates the bearer token on the Authorization
// header and puts the resolved user id on the request context. The
// token may be sent raw or with a "Bearer " prefix; either way every
// authentication failure is a 401, never a 404.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get("Authorization"))
			token = strings.TrimPrefix(token, "Bearer ")
			if token == "" {
				JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token", nil)
				return
			}

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token", nil)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.Sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
