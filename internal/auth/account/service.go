package account

import (
	"context"

	"auth-gateway/internal/auth"
	"auth-gateway/internal/provider"
)

// StepUpVerifier re-confirms the caller's current secret before a
// privileged mutation runs.
type StepUpVerifier interface {
	Verify(ctx context.Context, identity *auth.Identity, secret string) error
}

// PrivilegedMutator is the elevated-scope mutation surface the plans
// are built from.
type PrivilegedMutator interface {
	UpdateCredential(ctx context.Context, id, newPassword string) error
	InvalidateSessions(ctx context.Context, id string) error
	DeleteIdentity(ctx context.Context, id string) error
	DeleteProfile(ctx context.Context, id string) error
	CreateProfile(ctx context.Context, p provider.Profile) error
}

// Service sequences the multi-step privileged operations. Each
// operation takes an already-resolved identity; resolution happens at
// the request gate, before any body field is trusted.
type Service struct {
	verifier StepUpVerifier
	mutator  PrivilegedMutator
}

func NewService(verifier StepUpVerifier, mutator PrivilegedMutator) *Service {
	return &Service{
		verifier: verifier,
		mutator:  mutator,
	}
}

// ChangePassword verifies the current password, rotates the
// credential, then invalidates all active sessions. Invalidation is
// best-effort: once the rotation succeeded the security-relevant
// outcome is in place, so its failure is logged but does not fail the
// operation.
func (s *Service) ChangePassword(
	ctx context.Context,
	identity *auth.Identity,
	currentPassword string,
	newPassword string,
) error {

	p := plan{
		name: "password-change",
		steps: []step{
			{
				name: "verify current password",
				run: func(ctx context.Context) error {
					return s.verifier.Verify(ctx, identity, currentPassword)
				},
			},
			{
				name: "rotate credential",
				run: func(ctx context.Context) error {
					return s.mutator.UpdateCredential(ctx, identity.ID, newPassword)
				},
			},
			{
				name:       "invalidate sessions",
				bestEffort: true,
				run: func(ctx context.Context) error {
					return s.mutator.InvalidateSessions(ctx, identity.ID)
				},
			},
		},
	}

	return p.execute(ctx)
}

// DeleteAccount verifies the password, removes the dependent profile
// row, then deletes the identity. The profile row goes first: deleting
// the identity first would orphan the row with no owner left to
// reconcile it, so a profile-delete failure aborts the plan.
func (s *Service) DeleteAccount(
	ctx context.Context,
	identity *auth.Identity,
	password string,
) error {

	p := plan{
		name: "account-deletion",
		steps: []step{
			{
				name: "verify password",
				run: func(ctx context.Context) error {
					return s.verifier.Verify(ctx, identity, password)
				},
			},
			{
				name: "delete profile row",
				run: func(ctx context.Context) error {
					return s.mutator.DeleteProfile(ctx, identity.ID)
				},
			},
			{
				name: "delete identity",
				run: func(ctx context.Context) error {
					return s.mutator.DeleteIdentity(ctx, identity.ID)
				},
			},
		},
	}

	return p.execute(ctx)
}

// ProvisionProfile inserts the dependent profile row for a freshly
// created identity.
func (s *Service) ProvisionProfile(
	ctx context.Context,
	userID string,
	firstName string,
	lastName string,
) error {

	return s.mutator.CreateProfile(ctx, provider.Profile{
		ID:            userID,
		FirstName:     firstName,
		LastName:      lastName,
		EmailVerified: false,
	})
}
