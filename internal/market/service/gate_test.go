package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/stretchr/testify/require"
)

func TestInitialStatusByRole(t *testing.T) {
	env := newTestEnv(t)

	for _, role := range domain.Roles {
		t.Run(string(role), func(t *testing.T) {
			u := env.register(t, role)
			stored, err := env.store.Users().GetUserByID(context.Background(), u.ID)
			require.NoError(t, err)

			if role == domain.RoleAdmin {
				require.Equal(t, domain.StatusApproved, stored.Status)
			} else {
				require.Equal(t, domain.StatusPending, stored.Status)
			}
		})
	}
}

func TestGateAuthenticate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	tests := []struct {
		role    domain.Role
		status  domain.Status
		active  bool
		wantErr error
	}{
		{domain.RoleFarmer, domain.StatusApproved, true, nil},
		{domain.RoleFarmer, domain.StatusPending, true, ErrForbidden},
		{domain.RoleFarmer, domain.StatusRejected, true, ErrForbidden},
		{domain.RoleExpert, domain.StatusApproved, false, ErrAccountDeactivated},
		{domain.RoleDealer, domain.StatusPending, false, ErrAccountDeactivated},
		{domain.RoleDealer, domain.StatusRejected, false, ErrAccountDeactivated},
		{domain.RoleAdmin, domain.StatusApproved, true, nil},
		{domain.RoleAdmin, domain.StatusApproved, false, ErrAccountDeactivated},
		// Admins bypass the approval check even if their row says otherwise.
		{domain.RoleAdmin, domain.StatusRejected, true, nil},
	}
	for _, tt := range tests {
		name := string(tt.role) + "/" + string(tt.status)
		if !tt.active {
			name += "/inactive"
		}
		t.Run(name, func(t *testing.T) {
			u := env.register(t, tt.role)
			if u.Status != tt.status {
				require.NoError(t, env.store.Users().UpdateStatus(ctx, u.ID, tt.status, env.now))
			}
			if !tt.active {
				require.NoError(t, env.store.Users().SetActive(ctx, u.ID, false))
			}

			token, _, err := env.tokens.Issue(u.ID, u.Role, u.Email, 0)
			require.NoError(t, err)

			p, err := env.gate.Authenticate(ctx, token)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, u.ID, p.ID())
			require.Equal(t, tt.role, p.Role())
		})
	}
}

func TestGateNotApprovedCarriesStatus(t *testing.T) {
	env := newTestEnv(t)
	u := env.register(t, domain.RoleExpert)

	token, _, err := env.tokens.Issue(u.ID, u.Role, u.Email, 0)
	require.NoError(t, err)

	_, err = env.gate.Authenticate(context.Background(), token)
	var notApproved *NotApprovedError
	require.ErrorAs(t, err, &notApproved)
	require.Equal(t, domain.StatusPending, notApproved.Status)
	require.Equal(t, "Account is pending. Please wait for admin approval.", err.Error())
}

func TestGateRejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.approved(t, domain.RoleFarmer)

	other, err := NewTokenIssuer(TokenIssuerConfig{Secret: []byte(strings.Repeat("x", 32)), Issuer: "harvest-test"})
	require.NoError(t, err)
	forged, _, err := other.Issue(u.ID(), u.Role(), u.User.Email, 0)
	require.NoError(t, err)

	past, err := NewTokenIssuer(TokenIssuerConfig{
		Secret: []byte(strings.Repeat("s", 32)),
		Issuer: "harvest-test",
		Now:    func() time.Time { return time.Now().Add(-2 * time.Hour) },
	})
	require.NoError(t, err)
	expired, _, err := past.Issue(u.ID(), u.Role(), u.User.Email, time.Minute)
	require.NoError(t, err)

	foreign, err := NewTokenIssuer(TokenIssuerConfig{
		Secret:   []byte(strings.Repeat("s", 32)),
		Issuer:   "harvest-test",
		Audience: "harvest-advisory",
	})
	require.NoError(t, err)
	otherAudience, _, err := foreign.Issue(u.ID(), u.Role(), u.User.Email, 0)
	require.NoError(t, err)

	ghost, _, err := env.tokens.Issue("01J0000000000000000000GHST", domain.RoleFarmer, "", 0)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":         "not-a-jwt",
		"wrong secret":    forged,
		"expired":         expired,
		"wrong audience":  otherAudience,
		"unknown subject": ghost,
		"empty":           "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := env.gate.Authenticate(ctx, token)
			require.ErrorIs(t, err, ErrUnauthenticated)
		})
	}
}

func TestRequireRole(t *testing.T) {
	p := domain.Principal{User: domain.User{ID: "u1", Role: domain.RoleDealer}}

	got, err := RequireRole(p, domain.RoleDealer)
	require.NoError(t, err)
	require.Equal(t, p, got)

	for _, role := range []domain.Role{domain.RoleFarmer, domain.RoleExpert, domain.RoleAdmin} {
		_, err := RequireRole(p, role)
		require.ErrorIs(t, err, ErrForbidden)
		require.Equal(t, "Access denied. "+role.Title()+" role required.", err.Error())
	}
}
