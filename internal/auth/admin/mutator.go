package admin

import (
	"context"
	"fmt"

	"auth-gateway/internal/provider"
)

// Mutator performs state-changing operations with the elevated
// credential scope. It is constructed from the service-role clients
// only; no caller token can reach it, so every call site must have
// passed identity resolution (and, where required, step-up
// verification) to obtain the user id it operates on.
type Mutator struct {
	api      provider.AdminAPI
	profiles provider.ProfileStore
}

func NewMutator(api provider.AdminAPI, profiles provider.ProfileStore) *Mutator {
	return &Mutator{api: api, profiles: profiles}
}

// UpdateCredential rotates the user's password.
func (m *Mutator) UpdateCredential(ctx context.Context, id, newPassword string) error {
	_, err := m.api.UpdateUserByID(ctx, id, provider.UserAttributes{
		Password: newPassword,
	})
	if err != nil {
		return fmt.Errorf("update credential: %w", err)
	}
	return nil
}

// InvalidateSessions revokes every active session for the user.
func (m *Mutator) InvalidateSessions(ctx context.Context, id string) error {
	if err := m.api.SignOutUser(ctx, id); err != nil {
		return fmt.Errorf("invalidate sessions: %w", err)
	}
	return nil
}

// DeleteIdentity removes the identity record itself.
func (m *Mutator) DeleteIdentity(ctx context.Context, id string) error {
	if err := m.api.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	return nil
}

// DeleteProfile removes the dependent profile row.
func (m *Mutator) DeleteProfile(ctx context.Context, id string) error {
	if err := m.profiles.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// CreateProfile inserts the dependent profile row for a new identity.
func (m *Mutator) CreateProfile(ctx context.Context, p provider.Profile) error {
	if err := m.profiles.Insert(ctx, p); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}
