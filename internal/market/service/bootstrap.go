package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/pkg/cryptox"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
)

var (
	ErrBootstrapDisabled     = errors.New("bootstrap disabled")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
	ErrBootstrapAlready      = errors.New("already bootstrapped")
)

type BootstrapInput struct {
	Email    string
	Phone    string
	Name     string
	Country  string
	Password string
}

// BootstrapService creates the first admin account.
type BootstrapService struct {
	Auth  *AuthService
	Token string // BOOTSTRAP_TOKEN; empty disables bootstrap
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	return s.Auth.Store.Users().AdminExists(ctx)
}

func (s *BootstrapService) Bootstrap(ctx context.Context, token string, in BootstrapInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	// 1. Bootstrap must be configured
	if s.Token == "" {
		return domain.User{}, ErrBootstrapDisabled
	}

	// 2. Validate provided token
	if !cryptox.TokensEqual(token, s.Token) {
		l.Warn("unauthorized bootstrap attempt")
		return domain.User{}, ErrBootstrapUnauthorized
	}

	// 3. Check if already bootstrapped
	bootstrapped, err := s.IsBootstrapped(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if bootstrapped {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return domain.User{}, ErrBootstrapAlready
	}

	// 4. Create the admin through the registration path
	admin, err := s.Auth.createUser(ctx, RegisterInput{
		Email:    in.Email,
		Phone:    in.Phone,
		Name:     in.Name,
		Country:  in.Country,
		Password: in.Password,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return domain.User{}, err
	}

	l.Info("successfully bootstrapped system", slog.String("admin_user_id", admin.ID))
	return admin, nil
}
