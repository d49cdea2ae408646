package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"auth-gateway/internal/provider"
)

// Auth API endpoint paths.
const (
	signupPath   = "/auth/v1/signup"
	passwordPath = "/auth/v1/token?grant_type=password"
	logoutPath   = "/auth/v1/logout"
	resendPath   = "/auth/v1/resend"
	recoverPath  = "/auth/v1/recover"
	userPath     = "/auth/v1/user"
)

// Auth is the public-scope client, authenticated with the anon key.
type Auth struct {
	client
}

var _ provider.AuthAPI = (*Auth)(nil)

func NewAuth(baseURL, anonKey string, timeout time.Duration) *Auth {
	return &Auth{client: newClient(baseURL, anonKey, timeout)}
}

func (a *Auth) SignUp(
	ctx context.Context,
	params provider.SignUpParams,
) (*provider.SignUpResult, error) {

	body := map[string]any{
		"email":    params.Email,
		"password": params.Password,
	}
	if len(params.Data) > 0 {
		body["data"] = params.Data
	}

	var raw json.RawMessage
	err := a.do(ctx, http.MethodPost, withRedirect(signupPath, params.RedirectTo), "", nil, body, &raw)
	if err != nil {
		return nil, err
	}

	// Auto-confirming instances answer with a session, the rest with a
	// bare user awaiting email confirmation.
	var sess provider.Session
	if err := json.Unmarshal(raw, &sess); err == nil && sess.AccessToken != "" {
		return &provider.SignUpResult{User: sess.User, Session: &sess}, nil
	}

	var user provider.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, &provider.Error{
			Status:  http.StatusBadGateway,
			Message: "unexpected signup response",
		}
	}

	return &provider.SignUpResult{User: &user}, nil
}

func (a *Auth) SignInWithPassword(
	ctx context.Context,
	creds provider.Credentials,
) (*provider.Session, error) {

	body := map[string]any{
		"email":    creds.Email,
		"password": creds.Password,
	}

	var sess provider.Session
	if err := a.do(ctx, http.MethodPost, passwordPath, "", nil, body, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

func (a *Auth) SignOut(ctx context.Context, token string) error {
	return a.do(ctx, http.MethodPost, logoutPath, token, nil, nil, nil)
}

func (a *Auth) Resend(ctx context.Context, typ, email, redirectTo string) error {
	body := map[string]any{
		"type":  typ,
		"email": email,
	}
	return a.do(ctx, http.MethodPost, withRedirect(resendPath, redirectTo), "", nil, body, nil)
}

func (a *Auth) ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error {
	body := map[string]any{"email": email}
	return a.do(ctx, http.MethodPost, withRedirect(recoverPath, redirectTo), "", nil, body, nil)
}

func (a *Auth) GetUser(ctx context.Context, token string) (*provider.User, error) {
	var user provider.User
	if err := a.do(ctx, http.MethodGet, userPath, token, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *Auth) UpdateUser(
	ctx context.Context,
	token string,
	attrs provider.UserAttributes,
) (*provider.User, error) {

	var user provider.User
	if err := a.do(ctx, http.MethodPut, userPath, token, nil, attrs, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// withRedirect appends the confirmation-link target as a query
// parameter, joining onto paths that already carry one.
func withRedirect(path, redirectTo string) string {
	if redirectTo == "" {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "redirect_to=" + url.QueryEscape(redirectTo)
}
