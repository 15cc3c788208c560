package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/notedeck/notedeck-go/internal/crypto"
)

type contextKey string

const userClaimsKey contextKey = "userClaims"

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header and attaches the verified claims to the request
// context. Handlers behind it never run on a bad token.
func JWTAuth(tokens *crypto.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user's claims from the request context.
func UserFromContext(ctx context.Context) (*crypto.Claims, bool) {
	claims, ok := ctx.Value(userClaimsKey).(*crypto.Claims)
	return claims, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
