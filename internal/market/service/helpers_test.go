package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store/drivers/sqlite"
	"github.com/aussiebroadwan/harvest/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

const testPassword = "harvest-password"

type testEnv struct {
	store    *sqlite.Store
	tokens   *TokenIssuer
	auth     *AuthService
	gate     *Gate
	approval *ApprovalService
	now      time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	env := &testEnv{store: s, now: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)}

	env.tokens, err = NewTokenIssuer(TokenIssuerConfig{
		Secret: []byte(strings.Repeat("s", 32)),
		Issuer: "harvest-test",
		TTL:    30 * time.Minute,
	})
	require.NoError(t, err)

	env.auth = &AuthService{Store: s, Hasher: cryptox.NewHasher("test-pepper"), Tokens: env.tokens}
	env.gate = &Gate{Tokens: env.tokens, Store: s}
	env.approval = &ApprovalService{Store: s, Now: func() time.Time { return env.now }}
	return env
}

var userSeq atomic.Int64

// register creates a user with the given role. Admins go through the same
// internal path bootstrap uses.
func (e *testEnv) register(t *testing.T, role domain.Role) domain.User {
	t.Helper()

	n := userSeq.Add(1)
	in := RegisterInput{
		Email:    fmt.Sprintf("%s-%d@example.com", role, n),
		Phone:    fmt.Sprintf("+91%010d", n),
		Name:     role.Title() + " User",
		Password: testPassword,
		Role:     role,
	}

	var (
		u   domain.User
		err error
	)
	if role == domain.RoleAdmin {
		u, err = e.auth.createUser(context.Background(), in)
	} else {
		u, err = e.auth.Register(context.Background(), in)
	}
	require.NoError(t, err)
	return u
}

// approved registers and approves a user, returning its principal.
func (e *testEnv) approved(t *testing.T, role domain.Role) domain.Principal {
	t.Helper()

	u := e.register(t, role)
	if role != domain.RoleAdmin {
		var err error
		u, err = e.approval.Approve(context.Background(), u.ID)
		require.NoError(t, err)
	}
	return domain.Principal{User: u}
}

func (e *testEnv) login(t *testing.T, u domain.User) domain.Principal {
	t.Helper()

	issued, err := e.auth.Login(context.Background(), u.Email, testPassword)
	require.NoError(t, err)
	p, err := e.gate.Authenticate(context.Background(), issued.AccessToken)
	require.NoError(t, err)
	return p
}
