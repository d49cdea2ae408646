package provider

import "context"

// User is the provider-authoritative user record. Only the fields the
// gateway reads are modeled; unknown provider fields are dropped rather
// than forwarded verbatim.
type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Role         string         `json:"role,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	CreatedAt    string         `json:"created_at,omitempty"`
	UpdatedAt    string         `json:"updated_at,omitempty"`
}

// Session is an authenticated provider session as returned by the
// password sign-in entry point.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user,omitempty"`
}

// SignUpParams carries the registration payload. Data becomes the
// provider-side user metadata; RedirectTo is embedded in the
// confirmation email link.
type SignUpParams struct {
	Email      string
	Password   string
	Data       map[string]any
	RedirectTo string
}

// SignUpResult holds whichever shape the provider returned: a bare user
// when email confirmation is pending, or a full session when the
// instance auto-confirms.
type SignUpResult struct {
	User    *User    `json:"user,omitempty"`
	Session *Session `json:"session,omitempty"`
}

type Credentials struct {
	Email    string
	Password string
}

// UserAttributes is the mutable subset of a user record. Zero-valued
// fields are omitted from the provider request.
type UserAttributes struct {
	Password string         `json:"password,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// Profile is the denormalized profile row kept alongside the identity
// record, keyed by the identity id.
type Profile struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	EmailVerified bool   `json:"email_verified"`
}

// AuthAPI is the public-scope capability surface of the auth provider.
// Every call is a single network round trip; implementations classify
// provider failures into *Error values.
type AuthAPI interface {
	SignUp(ctx context.Context, params SignUpParams) (*SignUpResult, error)
	SignInWithPassword(ctx context.Context, creds Credentials) (*Session, error)
	SignOut(ctx context.Context, token string) error
	Resend(ctx context.Context, typ, email, redirectTo string) error
	ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error
	GetUser(ctx context.Context, token string) (*User, error)
	UpdateUser(ctx context.Context, token string, attrs UserAttributes) (*User, error)
}

// AdminAPI is the elevated capability surface. Implementations
// authenticate with the service-role key only; no caller token is ever
// accepted here.
type AdminAPI interface {
	UpdateUserByID(ctx context.Context, id string, attrs UserAttributes) (*User, error)
	DeleteUser(ctx context.Context, id string) error

	// SignOutUser invalidates every active session for the user.
	SignOutUser(ctx context.Context, id string) error
}

// ProfileStore is the dependent-record store for profile rows.
type ProfileStore interface {
	Insert(ctx context.Context, p Profile) error
	Delete(ctx context.Context, id string) error
}
