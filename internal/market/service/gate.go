package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
)

// Gate resolves a bearer token into a Principal.
type Gate struct {
	Tokens *TokenIssuer
	Store  store.Store
}

// Authenticate validates token and re-reads the user on every call, so a
// deactivation or rejection takes effect before the token expires.
func (g *Gate) Authenticate(ctx context.Context, token string) (domain.Principal, error) {
	l := slogx.FromContext(ctx)

	// 1. Token must verify
	id, err := g.Tokens.Validate(token)
	if err != nil {
		l.Debug("token rejected", slog.Any("error", err))
		return domain.Principal{}, ErrUnauthenticated
	}

	// 2. Subject must still exist
	user, err := g.Store.Users().GetUserByID(ctx, id.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("token subject not found", slog.String("user_id", id.Subject))
			return domain.Principal{}, ErrUnauthenticated
		}
		return domain.Principal{}, err
	}

	// 3. Account state
	if err := checkAccount(user); err != nil {
		return domain.Principal{}, err
	}

	return domain.Principal{User: user}, nil
}

// checkAccount applies the active and approval checks shared by the gate and
// login.
func checkAccount(u domain.User) error {
	if !u.Active {
		return withMessage(ErrAccountDeactivated, "Account is deactivated")
	}
	if !u.IsAdmin() && u.Status != domain.StatusApproved {
		return &NotApprovedError{Status: u.Status}
	}
	return nil
}

// RequireRole passes p through when it holds role.
func RequireRole(p domain.Principal, role domain.Role) (domain.Principal, error) {
	if !p.Is(role) {
		return domain.Principal{}, &RoleRequiredError{Role: role}
	}
	return p, nil
}
