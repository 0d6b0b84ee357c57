package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/tjwls100/souldiary-be/internal/auth"
	"github.com/tjwls100/souldiary-be/internal/http/respond"
)

// Auth verifies the bearer credential and stores the resolved identity in
// the request context. A missing credential yields 401; a malformed or
// expired one yields 403.
func Auth(tokens *auth.TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearerToken(r.Header.Get("Authorization"))
		if tokenStr == "" {
			respond.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			log.Printf("token verification failed: %v", err)
			respond.Error(w, http.StatusForbidden, "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), claims)))
	})
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
