package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/store"
	"github.com/aussiebroadwan/harvest/pkg/cryptox"
	"github.com/aussiebroadwan/harvest/pkg/idx"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
)

// DefaultCountry is stored when registration omits a country.
const DefaultCountry = "India"

type RegisterInput struct {
	Email    string
	Phone    string
	Name     string
	Country  string
	Password string
	Role     domain.Role
}

// UpdateMeInput changes contact details. Empty fields are left unchanged.
type UpdateMeInput struct {
	Name    string
	Phone   string
	Country string
}

// IssuedToken is the result of a login or refresh.
type IssuedToken struct {
	AccessToken string
	ExpiresAt   time.Time
	User        domain.User
}

type AuthService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
	Tokens *TokenIssuer
}

// Register creates a farmer, expert or dealer account in the pending state.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	if in.Role == domain.RoleAdmin || !in.Role.IsValid() {
		return domain.User{}, withMessage(ErrInvalid, "role must be one of farmer, expert, dealer")
	}
	return s.createUser(ctx, in)
}

// createUser is the one path that creates accounts; bootstrap uses it for
// the first admin. The initial status comes from the role.
func (s *AuthService) createUser(ctx context.Context, in RegisterInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(in.Email))
	country := strings.TrimSpace(in.Country)
	if country == "" {
		country = DefaultCountry
	}

	// 1. Friendlier message for the common duplicate case
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, withMessage(ErrConflict, "Email already registered")
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	// 2. Hash password
	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 3. Insert; the unique indexes settle races and duplicate phones
	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.NewString(),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		Name:         strings.TrimSpace(in.Name),
		Country:      country,
		PasswordHash: hash,
		Role:         in.Role,
		Status:       in.Role.InitialStatus(),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, withMessage(ErrConflict, "Email or phone number already registered")
		}
		l.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	l.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
		slog.String("status", string(user.Status)),
	)
	return user, nil
}

// Login checks credentials and account state, then issues a token. Legacy
// bcrypt hashes are upgraded to argon2id on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (IssuedToken, error) {
	l := slogx.FromContext(ctx)
	invalid := withMessage(ErrInvalidCredentials, "Incorrect email or password")

	// 1. Lookup
	user, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return IssuedToken{}, invalid
		}
		return IssuedToken{}, err
	}

	// 2. Password
	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		l.Info("login failed", slog.String("user_id", user.ID))
		return IssuedToken{}, invalid
	}

	// 3. Account state, same rules as the gate
	if err := checkAccount(user); err != nil {
		l.Info("login refused",
			slog.String("user_id", user.ID),
			slog.String("status", string(user.Status)),
			slog.Bool("active", user.Active),
		)
		return IssuedToken{}, err
	}

	// 4. Opportunistic rehash
	if s.Hasher.NeedsRehash(user.PasswordHash) {
		if hash, err := s.Hasher.Hash(password); err == nil {
			if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
				l.Warn("failed to upgrade password hash", slog.String("user_id", user.ID), slog.Any("error", err))
			}
		}
	}

	return s.issue(user)
}

// Refresh issues a fresh token for an authenticated principal.
func (s *AuthService) Refresh(ctx context.Context, p domain.Principal) (IssuedToken, error) {
	return s.issue(p.User)
}

func (s *AuthService) issue(u domain.User) (IssuedToken, error) {
	token, exp, err := s.Tokens.Issue(u.ID, u.Role, u.Email, 0)
	if err != nil {
		return IssuedToken{}, err
	}
	return IssuedToken{AccessToken: token, ExpiresAt: exp, User: u}, nil
}

// UpdateMe changes the caller's name, phone or country.
func (s *AuthService) UpdateMe(ctx context.Context, p domain.Principal, in UpdateMeInput) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, p.ID())
	if err != nil {
		return domain.User{}, err
	}

	if v := strings.TrimSpace(in.Name); v != "" {
		user.Name = v
	}
	if v := strings.TrimSpace(in.Phone); v != "" {
		user.Phone = v
	}
	if v := strings.TrimSpace(in.Country); v != "" {
		user.Country = v
	}

	if err := s.Store.Users().UpdateContact(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, withMessage(ErrConflict, "Phone number already registered")
		}
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, user.ID)
}
