package provider

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a classified provider failure. Status is the provider's HTTP
// status, Code its machine-readable error code when present, Message
// the human-readable text surfaced to callers.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("provider: %s (%d %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("provider: %s (%d)", e.Message, e.Status)
}

// AsError unwraps err into a *Error if one is in the chain.
func AsError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a provider auth failure
// (expired, revoked, or malformed credential).
func IsUnauthorized(err error) bool {
	pe, ok := AsError(err)
	if !ok {
		return false
	}
	return pe.Status == http.StatusUnauthorized || pe.Status == http.StatusForbidden
}

// IsNotFound reports whether err means the record no longer exists.
func IsNotFound(err error) bool {
	pe, ok := AsError(err)
	if !ok {
		return false
	}
	return pe.Status == http.StatusNotFound
}
