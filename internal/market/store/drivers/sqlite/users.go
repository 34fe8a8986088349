package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	created := u.CreatedAt
	if created.IsZero() {
		created = r.now()
	}
	updated := u.UpdatedAt
	if updated.IsZero() {
		updated = created
	}

	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		Email:        u.Email,
		Phone:        u.Phone,
		Name:         u.Name,
		Country:      u.Country,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Status:       string(u.Status),
		Active:       u.Active,
		Verified:     u.Verified,
		CreatedAt:    created,
		UpdatedAt:    updated,
	})
	return mapConstraint(err)
}

func (r *usersRepo) UpdateContact(ctx context.Context, u domain.User) error {
	n, err := r.q.UpdateUserContact(ctx, gen.UpdateUserContactParams{
		Name:      u.Name,
		Phone:     u.Phone,
		Country:   u.Country,
		UpdatedAt: r.now(),
		ID:        u.ID,
	})
	return requireRow(n, mapConstraint(err))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, hash string) error {
	return requireRow(r.q.UpdateUserPasswordHash(ctx, gen.UpdateUserPasswordHashParams{
		PasswordHash: hash,
		UpdatedAt:    r.now(),
		ID:           userID,
	}))
}

func (r *usersRepo) UpdateStatus(ctx context.Context, userID string, status domain.Status, at time.Time) error {
	return requireRow(r.q.UpdateUserStatus(ctx, gen.UpdateUserStatusParams{
		Status:    string(status),
		UpdatedAt: at,
		ID:        userID,
	}))
}

func (r *usersRepo) SetActive(ctx context.Context, userID string, active bool) error {
	return requireRow(r.q.SetUserActive(ctx, gen.SetUserActiveParams{
		Active:    active,
		UpdatedAt: r.now(),
		ID:        userID,
	}))
}

func (r *usersRepo) ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error) {
	total, err := r.q.CountUsers(ctx, gen.CountUsersParams{
		Role:   string(f.Role),
		Status: string(f.Status),
	})
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.q.ListUsers(ctx, gen.ListUsersParams{
		Role:   string(f.Role),
		Status: string(f.Status),
		Limit:  int64(f.Limit),
		Offset: int64(f.Offset),
	})
	if err != nil {
		return nil, 0, err
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = mapUser(row)
	}
	return users, int(total), nil
}

func (r *usersRepo) CountByStatus(ctx context.Context, status domain.Status) (int, error) {
	n, err := r.q.CountUsersByStatus(ctx, string(status))
	return int(n), err
}

func (r *usersRepo) AdminExists(ctx context.Context) (bool, error) {
	n, err := r.q.CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
