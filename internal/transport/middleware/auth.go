package middleware

import (
	"net/http"
	"strings"

	authcodec "github.com/avoronin/stockpile-backend/internal/auth"
	"github.com/avoronin/stockpile-backend/pkg/ctxutil"
)

type tokenAuthenticator interface {
	Authenticate(token string) (*authcodec.Claims, error)
}

// Auth verifies a bearer token when one is present and stores the user ID in
// the request context. Requests without a token pass through anonymously;
// RequireAuth decides whether that is acceptable per route.
func Auth(authenticator tokenAuthenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			claims, err := authenticator.Authenticate(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests whose context carries no authenticated user.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
