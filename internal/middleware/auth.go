package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"auth-gateway/internal/auth"
	"auth-gateway/internal/auth/resolver"
)

// unexported, collision-proof context keys
type identityContextKeyType struct{}
type tokenContextKeyType struct{}

var (
	identityKey = identityContextKeyType{}
	tokenKey    = tokenContextKeyType{}
)

// IdentityFromContext extracts the resolved caller identity.
func IdentityFromContext(ctx context.Context) (*auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*auth.Identity)
	return id, ok
}

// TokenFromContext extracts the caller's bearer token.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

type AuthMiddleware struct {
	Resolver resolver.Resolver
}

func NewAuthMiddleware(r resolver.Resolver) *AuthMiddleware {
	return &AuthMiddleware{Resolver: r}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Extract bearer token; absence is terminal before any provider call
		token, err := auth.TokenFromHeader(r.Header.Get("Authorization"))
		if err != nil {
			unauthorized(w, "No token provided")
			return
		}

		// 2. Resolve caller identity against the provider
		identity, err := a.Resolver.Resolve(r.Context(), token)
		if err != nil {
			unauthorized(w, "Invalid or expired token")
			return
		}

		// 3. Attach token and identity to context
		ctx := context.WithValue(r.Context(), tokenKey, token)
		ctx = context.WithValue(ctx, identityKey, identity)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
