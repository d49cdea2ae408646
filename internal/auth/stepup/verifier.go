package stepup

import (
	"context"

	"auth-gateway/internal/auth"
	"auth-gateway/internal/logger"
	"auth-gateway/internal/provider"
)

// Verifier re-confirms that the caller currently knows their password
// before a sensitive mutation proceeds. It attempts a fresh sign-in
// through the provider's primary entry point; the gateway never holds
// or compares a stored hash.
type Verifier struct {
	api provider.AuthAPI
}

func NewVerifier(api provider.AuthAPI) *Verifier {
	return &Verifier{api: api}
}

// Verify runs the step-up check. Any sign-in failure maps to
// ErrSecretMismatch; the supplied secret is used exactly once and
// never logged.
func (v *Verifier) Verify(
	ctx context.Context,
	identity *auth.Identity,
	secret string,
) error {

	if identity == nil || identity.Email == "" {
		return auth.ErrSecretMismatch
	}

	_, err := v.api.SignInWithPassword(ctx, provider.Credentials{
		Email:    identity.Email,
		Password: secret,
	})
	if err != nil {
		logger.Warn("step-up verification failed", map[string]any{
			"user_id": identity.ID,
		})
		return auth.ErrSecretMismatch
	}

	return nil
}
