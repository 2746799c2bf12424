package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// BearerToken exige "Authorization: Bearer <token>" en cada request salvo las
// rutas de open. Con token vacío no hace nada (modo local).
func BearerToken(token string, open ...string) func(http.Handler) http.Handler {
	token = strings.TrimSpace(token)

	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range open {
				if r.URL.Path == p || (strings.HasSuffix(p, "*") && strings.HasPrefix(r.URL.Path, strings.TrimSuffix(p, "*"))) {
					next.ServeHTTP(w, r)
					return
				}
			}

			got := bearerToken(r.Header.Get("Authorization"))
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
