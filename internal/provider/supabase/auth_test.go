package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth-gateway/internal/provider"
)

func TestSignUpPendingConfirmation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		assert.Equal(t, "https://app.example.com/dashboard.html", r.URL.Query().Get("redirect_to"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@example.com", body["email"])
		assert.Equal(t,
			map[string]any{"first_name": "Ada", "last_name": "Lovelace"},
			body["data"],
		)

		json.NewEncoder(w).Encode(map[string]any{
			"id":    "user-1",
			"email": "a@example.com",
		})
	}))
	defer srv.Close()

	auth := NewAuth(srv.URL, "anon-key", time.Second)

	res, err := auth.SignUp(context.Background(), provider.SignUpParams{
		Email:      "a@example.com",
		Password:   "Secret123",
		Data:       map[string]any{"first_name": "Ada", "last_name": "Lovelace"},
		RedirectTo: "https://app.example.com/dashboard.html",
	})
	require.NoError(t, err)

	require.NotNil(t, res.User)
	assert.Equal(t, "user-1", res.User.ID)
	assert.Nil(t, res.Session)
}

func TestSignUpAutoConfirmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "tok",
			"token_type":    "bearer",
			"expires_in":    3600,
			"refresh_token": "refresh",
			"user":          map[string]any{"id": "user-1", "email": "a@example.com"},
		})
	}))
	defer srv.Close()

	auth := NewAuth(srv.URL, "anon-key", time.Second)

	res, err := auth.SignUp(context.Background(), provider.SignUpParams{
		Email:    "a@example.com",
		Password: "Secret123",
	})
	require.NoError(t, err)

	require.NotNil(t, res.Session)
	assert.Equal(t, "tok", res.Session.AccessToken)
	require.NotNil(t, res.User)
	assert.Equal(t, "user-1", res.User.ID)
}

func TestSignInWithPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok",
			"user":         map[string]any{"id": "user-1", "email": "a@example.com"},
		})
	}))
	defer srv.Close()

	auth := NewAuth(srv.URL, "anon-key", time.Second)

	sess, err := auth.SignInWithPassword(context.Background(), provider.Credentials{
		Email:    "a@example.com",
		Password: "Secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok", sess.AccessToken)
	assert.Equal(t, "user-1", sess.User.ID)
}

func TestSignInWrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	}))
	defer srv.Close()

	auth := NewAuth(srv.URL, "anon-key", time.Second)

	_, err := auth.SignInWithPassword(context.Background(), provider.Credentials{
		Email:    "a@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	pe, ok := provider.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, pe.Status)
	assert.Equal(t, "Invalid login credentials", pe.Message)
}

func TestGetUserForwardsCallerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer caller-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"id":            "user-1",
			"email":         "a@example.com",
			"user_metadata": map[string]any{"first_name": "Ada"},
		})
	}))
	defer srv.Close()

	auth := NewAuth(srv.URL, "anon-key", time.Second)

	user, err := auth.GetUser(context.Background(), "caller-token")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "Ada", user.UserMetadata["first_name"])
}

func TestGetUserExpiredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":401,"error_code":"bad_jwt","msg":"invalid JWT: token is expired"}`))
	}))
	defer srv.Close()

	auth := NewAuth(srv.URL, "anon-key", time.Second)

	_, err := auth.GetUser(context.Background(), "stale")
	require.Error(t, err)
	assert.True(t, provider.IsUnauthorized(err))

	pe, _ := provider.AsError(err)
	assert.Equal(t, "bad_jwt", pe.Code)
}

func TestUpdateUserMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer caller-token", r.Header.Get("Authorization"))

		var attrs map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&attrs))
		assert.NotContains(t, attrs, "password")
		assert.Equal(t, map[string]any{"first_name": "A", "last_name": "B"}, attrs["data"])

		json.NewEncoder(w).Encode(map[string]any{
			"id":            "user-1",
			"user_metadata": attrs["data"],
		})
	}))
	defer srv.Close()

	auth := NewAuth(srv.URL, "anon-key", time.Second)

	user, err := auth.UpdateUser(context.Background(), "caller-token", provider.UserAttributes{
		Data: map[string]any{"first_name": "A", "last_name": "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, "A", user.UserMetadata["first_name"])
}

func TestResendAndRecover(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path+"?"+r.URL.RawQuery)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	auth := NewAuth(srv.URL, "anon-key", time.Second)
	ctx := context.Background()

	require.NoError(t, auth.Resend(ctx, "signup", "a@example.com", "https://app/confirm"))
	require.NoError(t, auth.ResetPasswordForEmail(ctx, "a@example.com", "https://app/reset"))

	require.Len(t, paths, 2)
	assert.Contains(t, paths[0], "/auth/v1/resend")
	assert.Contains(t, paths[0], "redirect_to=")
	assert.Contains(t, paths[1], "/auth/v1/recover")
}

func TestSignOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		assert.Equal(t, "Bearer caller-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	auth := NewAuth(srv.URL, "anon-key", time.Second)
	require.NoError(t, auth.SignOut(context.Background(), "caller-token"))
}

func TestTableErrorDialect(t *testing.T) {
	err := parseError(http.StatusConflict, []byte(`{"code":"23505","message":"duplicate key value"}`))
	assert.Equal(t, "23505", err.Code)
	assert.Equal(t, "duplicate key value", err.Message)
}

func TestNonJSONErrorBody(t *testing.T) {
	err := parseError(http.StatusBadGateway, []byte("upstream timed out"))
	assert.Equal(t, http.StatusBadGateway, err.Status)
	assert.Equal(t, "upstream timed out", err.Message)
}
