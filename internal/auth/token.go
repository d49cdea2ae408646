package auth

import (
	"errors"
	"strings"
)

var (
	// ErrMissingToken means the Authorization header was absent or not
	// of the form "Bearer <token>". No provider call is made in that case.
	ErrMissingToken = errors.New("no token provided")

	// ErrInvalidToken means the provider rejected the presented token.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrSecretMismatch means step-up verification of the caller's
	// current password failed.
	ErrSecretMismatch = errors.New("current password is incorrect")
)

const bearerPrefix = "Bearer "

// TokenFromHeader extracts the opaque bearer token from an
// Authorization header value. Pure function, no side effects.
func TokenFromHeader(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrMissingToken
	}

	token := header[len(bearerPrefix):]
	if token == "" {
		return "", ErrMissingToken
	}

	return token, nil
}
