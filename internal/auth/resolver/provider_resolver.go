package resolver

import (
	"context"
	"fmt"

	"auth-gateway/internal/auth"
	"auth-gateway/internal/provider"
)

// ProviderResolver resolves tokens through the provider's
// token-introspection endpoint. Every provider rejection (expired,
// revoked, malformed) maps to ErrInvalidToken so the caller-facing
// result is an authorization failure, never a generic server error.
type ProviderResolver struct {
	api provider.AuthAPI
}

func NewProviderResolver(api provider.AuthAPI) *ProviderResolver {
	return &ProviderResolver{api: api}
}

func (r *ProviderResolver) Resolve(
	ctx context.Context,
	token string,
) (*auth.Identity, error) {

	if token == "" {
		return nil, auth.ErrMissingToken
	}

	user, err := r.api.GetUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", auth.ErrInvalidToken, err)
	}

	if user.ID == "" {
		return nil, auth.ErrInvalidToken
	}

	return &auth.Identity{
		ID:    user.ID,
		Email: user.Email,
	}, nil
}
