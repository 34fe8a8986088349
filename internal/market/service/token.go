package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/pkg/jwtx"
)

// Identity is what a validated token asserts. The gate treats it as a hint
// and re-reads the user.
type Identity struct {
	Subject string
	Role    domain.Role
}

// TokenIssuer mints and validates HS256 access tokens.
type TokenIssuer struct {
	signer   jwtx.Signer
	verifier jwtx.Verifier
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// DefaultAudience is the aud claim stamped on marketplace access tokens.
const DefaultAudience = "harvest-market"

type TokenIssuerConfig struct {
	Secret   []byte
	Issuer   string
	Audience string // defaults to DefaultAudience
	TTL      time.Duration

	// Leeway tolerates clock skew on exp and nbf.
	Leeway time.Duration

	// Now overrides the clock, tests only.
	Now func() time.Time
}

func NewTokenIssuer(cfg TokenIssuerConfig) (*TokenIssuer, error) {
	if cfg.TTL <= 0 {
		cfg.TTL = jwtx.DefaultAccessTokenTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Audience == "" {
		cfg.Audience = DefaultAudience
	}

	signer, err := jwtx.NewSignerHS256(cfg.Secret)
	if err != nil {
		return nil, err
	}
	verifier, err := jwtx.NewVerifierHS256(cfg.Secret, jwtx.VerifyOptions{
		Issuer:   cfg.Issuer,
		Audience: []string{cfg.Audience},
		Leeway:   cfg.Leeway,
		Now:      cfg.Now,
	})
	if err != nil {
		return nil, err
	}

	return &TokenIssuer{
		signer:   signer,
		verifier: verifier,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      cfg.TTL,
		now:      cfg.Now,
	}, nil
}

// TTL is the default token lifetime.
func (t *TokenIssuer) TTL() time.Duration { return t.ttl }

// Issue signs a token for subject. A non-positive ttl uses the default.
func (t *TokenIssuer) Issue(subject string, role domain.Role, email string, ttl time.Duration) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errors.New("token subject is empty")
	}
	if ttl <= 0 {
		ttl = t.ttl
	}

	now := t.now()
	claims := jwtx.NewAccessClaims(subject, string(role), email, ttl, t.issuer, now).WithAudience(t.audience)
	token, err := t.signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return token, claims.ExpiresAt.Time, nil
}

// Validate checks signature, algorithm, issuer, audience and time claims. Every failure
// matches ErrUnauthenticated.
func (t *TokenIssuer) Validate(token string) (Identity, error) {
	claims, err := t.verifier.Verify(token)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return Identity{}, fmt.Errorf("%w: missing subject", ErrUnauthenticated)
	}
	return Identity{Subject: claims.Subject, Role: domain.Role(claims.Role)}, nil
}
