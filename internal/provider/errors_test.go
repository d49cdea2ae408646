package provider

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		unauthorized bool
		notFound     bool
	}{
		{
			name:         "expired token",
			err:          &Error{Status: 401, Code: "bad_jwt", Message: "token is expired"},
			unauthorized: true,
		},
		{
			name:         "forbidden",
			err:          &Error{Status: 403, Message: "forbidden"},
			unauthorized: true,
		},
		{
			name:     "user already gone",
			err:      &Error{Status: 404, Code: "user_not_found", Message: "user not found"},
			notFound: true,
		},
		{
			name: "provider outage",
			err:  &Error{Status: 500, Message: "internal error"},
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
		},
		{
			name: "nil",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unauthorized, IsUnauthorized(tt.err))
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
		})
	}
}

func TestClassificationThroughWrapping(t *testing.T) {
	inner := &Error{Status: 401, Message: "invalid claim"}
	wrapped := fmt.Errorf("resolve caller: %w", inner)

	assert.True(t, IsUnauthorized(wrapped))

	pe, ok := AsError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, 401, pe.Status)
}

func TestErrorString(t *testing.T) {
	withCode := &Error{Status: 401, Code: "bad_jwt", Message: "token is expired"}
	assert.Equal(t, "provider: token is expired (401 bad_jwt)", withCode.Error())

	bare := &Error{Status: 500, Message: "internal error"}
	assert.Equal(t, "provider: internal error (500)", bare.Error())
}
