package auth

import (
	"net/http"
	"strings"
)

// TokenRelay lifts the bearer token off the incoming Authorization header into
// the request context so the upstream client can replay it. The gateway never
// validates the token; the backend is the authority. Requests without a token
// pass through untouched and simply hit the backend unauthenticated.
func TokenRelay(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
			r = r.WithContext(WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}
