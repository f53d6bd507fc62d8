package auth

import (
	"net/http"
	"strings"
)

// RequireAdmin gates admin-only routes. A request passes with either an
// authenticated admin session cookie or a valid bearer token; anything else
// is rejected before the wrapped handler runs.
func RequireAdmin(sessions *SessionManager, jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessions.IsAdmin(r) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				tokenStr := strings.TrimPrefix(header, "Bearer ")
				if claims, err := ValidateToken(jwtSecret, tokenStr); err == nil && claims.Role == "admin" {
					next.ServeHTTP(w, r)
					return
				}
			}

			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		})
	}
}
