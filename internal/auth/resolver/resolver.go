package resolver

import (
	"context"

	"auth-gateway/internal/auth"
)

// Resolver exchanges an opaque bearer token for a verified caller
// identity. It is the ONLY gate between a caller-supplied token and
// any privileged code path.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*auth.Identity, error)
}
