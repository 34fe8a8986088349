package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestApproveAlreadyApproved(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.register(t, domain.RoleFarmer)

	_, err := env.approval.Approve(ctx, u.ID)
	require.NoError(t, err)

	_, err = env.approval.Approve(ctx, u.ID)
	require.ErrorIs(t, err, ErrAlreadyInState)

	stored, err := env.store.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, stored.Status)
}

func TestRejectAlreadyRejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.register(t, domain.RoleDealer)

	_, err := env.approval.Reject(ctx, u.ID, WithReason("incomplete documents"))
	require.NoError(t, err)

	_, err = env.approval.Reject(ctx, u.ID)
	require.ErrorIs(t, err, ErrAlreadyInState)
}

func TestTransitionsArePermissive(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	type step func(ctx context.Context, id string, opts ...TransitionOption) (domain.User, error)
	tests := []struct {
		name  string
		steps []step
		want  domain.Status
	}{
		{"approve then reject", []step{env.approval.Approve, env.approval.Reject}, domain.StatusRejected},
		{"reject then approve", []step{env.approval.Reject, env.approval.Approve}, domain.StatusApproved},
		{"approve reject approve", []step{env.approval.Approve, env.approval.Reject, env.approval.Approve}, domain.StatusApproved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := env.register(t, domain.RoleFarmer)
			for _, s := range tt.steps {
				_, err := s(ctx, u.ID)
				require.NoError(t, err)
			}
			stored, err := env.store.Users().GetUserByID(ctx, u.ID)
			require.NoError(t, err)
			require.Equal(t, tt.want, stored.Status)
		})
	}
}

func TestTransitionStampsClock(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u := env.register(t, domain.RoleExpert)

	env.now = time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)
	admin := env.approved(t, domain.RoleAdmin)
	got, err := env.approval.Approve(ctx, u.ID, WithActor(domain.ActorFrom(admin)))
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, got.Status)

	stored, err := env.store.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, stored.UpdatedAt.Equal(env.now))
}

func TestTransitionUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.approval.Approve(context.Background(), "01J00000000000000000000000")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTransitionCounter(t *testing.T) {
	env := newTestEnv(t)
	u := env.register(t, domain.RoleFarmer)

	before := testutil.ToFloat64(approvalTransitions.WithLabelValues("rejected"))
	_, err := env.approval.Reject(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, before+1, testutil.ToFloat64(approvalTransitions.WithLabelValues("rejected")))
}

func TestTokenOutlivesRejection(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	p := env.approved(t, domain.RoleFarmer)

	token, _, err := env.tokens.Issue(p.ID(), p.Role(), p.User.Email, 0)
	require.NoError(t, err)

	_, err = env.approval.Reject(ctx, p.ID())
	require.NoError(t, err)

	// The token itself is still valid; there is no revocation.
	id, err := env.tokens.Validate(token)
	require.NoError(t, err)
	require.Equal(t, p.ID(), id.Subject)

	// The gate re-reads status and refuses it.
	_, err = env.gate.Authenticate(ctx, token)
	var notApproved *NotApprovedError
	require.ErrorAs(t, err, &notApproved)
	require.Equal(t, domain.StatusRejected, notApproved.Status)
}
