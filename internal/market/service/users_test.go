package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/stretchr/testify/require"
)

func TestUserServiceListings(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := &UserService{Store: env.store}

	pending := env.register(t, domain.RoleFarmer)
	env.register(t, domain.RoleExpert)
	env.approved(t, domain.RoleDealer)

	users, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		require.Equal(t, domain.StatusPending, u.Status)
	}

	users, total, err := svc.ListUsers(ctx, domain.UserFilter{Role: domain.RoleFarmer, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, pending.ID, users[0].ID)

	_, err = svc.GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserServiceSetActive(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := &UserService{Store: env.store}
	admin := env.approved(t, domain.RoleAdmin)
	farmer := env.approved(t, domain.RoleFarmer)

	got, err := svc.SetActive(ctx, admin, farmer.ID(), false)
	require.NoError(t, err)
	require.False(t, got.Active)

	// Deactivated accounts never authenticate, whatever their status.
	token, _, err := env.tokens.Issue(farmer.ID(), farmer.Role(), farmer.User.Email, 0)
	require.NoError(t, err)
	_, err = env.gate.Authenticate(ctx, token)
	require.ErrorIs(t, err, ErrAccountDeactivated)

	got, err = svc.SetActive(ctx, admin, farmer.ID(), true)
	require.NoError(t, err)
	require.True(t, got.Active)
	_, err = env.gate.Authenticate(ctx, token)
	require.NoError(t, err)

	_, err = svc.SetActive(ctx, admin, admin.ID(), false)
	require.ErrorIs(t, err, ErrInvalid)
}
