package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"auth-gateway/internal/provider"
)

const profilesTable = "user_profiles"

// Profiles stores the denormalized profile row through the provider's
// table API, using the service-role scope.
type Profiles struct {
	client
}

var _ provider.ProfileStore = (*Profiles)(nil)

func NewProfiles(baseURL, serviceKey string, timeout time.Duration) *Profiles {
	return &Profiles{client: newClient(baseURL, serviceKey, timeout)}
}

func (p *Profiles) Insert(ctx context.Context, profile provider.Profile) error {
	headers := map[string]string{"Prefer": "return=minimal"}
	return p.do(ctx, http.MethodPost, "/rest/v1/"+profilesTable, "", headers, profile, nil)
}

func (p *Profiles) Delete(ctx context.Context, id string) error {
	path := "/rest/v1/" + profilesTable + "?id=eq." + url.QueryEscape(id)
	return p.do(ctx, http.MethodDelete, path, "", nil, nil, nil)
}
