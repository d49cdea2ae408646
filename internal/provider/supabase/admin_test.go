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

func TestUpdateUserByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/auth/v1/admin/users/user-1", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		var attrs map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&attrs))
		assert.Equal(t, "NewPass1", attrs["password"])

		json.NewEncoder(w).Encode(map[string]any{"id": "user-1"})
	}))
	defer srv.Close()

	admin := NewAdmin(srv.URL, "service-key", time.Second)

	user, err := admin.UpdateUserByID(context.Background(), "user-1", provider.UserAttributes{
		Password: "NewPass1",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestDeleteUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/auth/v1/admin/users/user-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	admin := NewAdmin(srv.URL, "service-key", time.Second)
	require.NoError(t, admin.DeleteUser(context.Background(), "user-1"))
}

func TestDeleteUserAlreadyGone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":404,"error_code":"user_not_found","msg":"User not found"}`))
	}))
	defer srv.Close()

	admin := NewAdmin(srv.URL, "service-key", time.Second)

	err := admin.DeleteUser(context.Background(), "user-1")
	require.Error(t, err)
	assert.True(t, provider.IsNotFound(err))
}

func TestSignOutUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/admin/users/user-1/logout", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	admin := NewAdmin(srv.URL, "service-key", time.Second)
	require.NoError(t, admin.SignOutUser(context.Background(), "user-1"))
}
