package service

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuerRoundTrip(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	tokens, err := NewTokenIssuer(TokenIssuerConfig{
		Secret: []byte(strings.Repeat("s", 32)),
		Issuer: "harvest-test",
		Now:    func() time.Time { return now },
	})
	require.NoError(t, err)
	require.Equal(t, 30*time.Minute, tokens.TTL())

	token, exp, err := tokens.Issue("01J0000000000000000000USER", domain.RoleExpert, "e@example.com", 0)
	require.NoError(t, err)
	require.Equal(t, now.Add(30*time.Minute), exp)

	id, err := tokens.Validate(token)
	require.NoError(t, err)
	require.Equal(t, Identity{Subject: "01J0000000000000000000USER", Role: domain.RoleExpert}, id)

	_, _, err = tokens.Issue("", domain.RoleExpert, "", 0)
	require.Error(t, err)
}

func TestTokenIssuerLeeway(t *testing.T) {
	issued := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	current := issued

	newIssuer := func(leeway time.Duration) *TokenIssuer {
		tokens, err := NewTokenIssuer(TokenIssuerConfig{
			Secret: []byte(strings.Repeat("s", 32)),
			Issuer: "harvest-test",
			TTL:    time.Minute,
			Leeway: leeway,
			Now:    func() time.Time { return current },
		})
		require.NoError(t, err)
		return tokens
	}
	strict, lenient := newIssuer(0), newIssuer(30*time.Second)

	token, _, err := strict.Issue("01J0000000000000000000USER", domain.RoleFarmer, "", 0)
	require.NoError(t, err)

	current = issued.Add(time.Minute + 10*time.Second)

	_, err = strict.Validate(token)
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = lenient.Validate(token)
	require.NoError(t, err)

	current = issued.Add(2 * time.Minute)
	_, err = lenient.Validate(token)
	require.ErrorIs(t, err, ErrUnauthenticated)
}
