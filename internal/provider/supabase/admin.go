package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"auth-gateway/internal/provider"
)

const adminUsersPath = "/auth/v1/admin/users"

// Admin is the elevated-scope client, authenticated with the
// service-role key. It never carries a caller token.
type Admin struct {
	client
}

var _ provider.AdminAPI = (*Admin)(nil)

func NewAdmin(baseURL, serviceKey string, timeout time.Duration) *Admin {
	return &Admin{client: newClient(baseURL, serviceKey, timeout)}
}

func (a *Admin) UpdateUserByID(
	ctx context.Context,
	id string,
	attrs provider.UserAttributes,
) (*provider.User, error) {

	var user provider.User
	err := a.do(ctx, http.MethodPut, adminUsersPath+"/"+url.PathEscape(id), "", nil, attrs, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *Admin) DeleteUser(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, adminUsersPath+"/"+url.PathEscape(id), "", nil, nil, nil)
}

func (a *Admin) SignOutUser(ctx context.Context, id string) error {
	path := adminUsersPath + "/" + url.PathEscape(id) + "/logout"
	return a.do(ctx, http.MethodPost, path, "", nil, nil, nil)
}
