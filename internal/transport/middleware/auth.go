package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/accessgraph-backend/internal/auth"
	"github.com/heartmarshall/accessgraph-backend/pkg/ctxutil"
)

type tokenValidator interface {
	Verify(token string) (auth.Identity, error)
}

// Auth verifies the bearer token, when present, and stores the caller's
// ID and role in the request context. Requests without a token pass through
// anonymously; a token that fails verification is rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := validator.Verify(token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}
			ctx := ctxutil.WithCaller(r.Context(), id.UserID, id.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
