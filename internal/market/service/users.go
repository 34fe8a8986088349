package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
)

// UserService holds the account queries behind /v1/auth/me and the admin
// user listings.
type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, withMessage(ErrNotFound, "User not found")
	}
	return u, err
}

// ListPending returns every user waiting for approval, oldest first.
func (s *UserService) ListPending(ctx context.Context) ([]domain.User, error) {
	users, _, err := s.Store.Users().ListUsers(ctx, domain.UserFilter{
		Status: domain.StatusPending,
		Limit:  -1,
	})
	return users, err
}

func (s *UserService) ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error) {
	return s.Store.Users().ListUsers(ctx, f)
}

// SetActive deactivates or restores an account. Admins cannot deactivate
// themselves.
func (s *UserService) SetActive(ctx context.Context, actor domain.Principal, userID string, active bool) (domain.User, error) {
	if !active && actor.ID() == userID {
		return domain.User{}, withMessage(ErrInvalid, "Cannot deactivate your own account")
	}

	if err := s.Store.Users().SetActive(ctx, userID, active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, withMessage(ErrNotFound, "User not found")
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user active flag changed",
		slog.String("user_id", userID),
		slog.Bool("active", active),
		slog.String("actor_id", actor.ID()),
	)
	return s.Store.Users().GetUserByID(ctx, userID)
}
