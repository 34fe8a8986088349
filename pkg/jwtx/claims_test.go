package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewAccessClaims(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := jwtx.NewAccessClaims("user-1", "farmer", "f@example.com", 30*time.Minute, "harvest-market", now)

	require.Equal(t, "user-1", c.Subject)
	require.Equal(t, "farmer", c.Role)
	require.Equal(t, "f@example.com", c.Email)
	require.Equal(t, "harvest-market", c.Issuer)
	require.Equal(t, now.Add(30*time.Minute), c.ExpiresAt.Time)
	require.Equal(t, now, c.IssuedAt.Time)
	require.NotEmpty(t, c.ID)

	other := jwtx.NewAccessClaims("user-1", "farmer", "", time.Minute, "", now)
	require.NotEqual(t, c.ID, other.ID)
}

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "harvest-market",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("harvest-market"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateIssuer("harvest-advisory"), jwtx.ErrIssuer)
	})
}

func TestValidateAudience(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience: []string{"market", "advisory"},
		},
	}

	require.NoError(t, c.ValidateAudience([]string{"market"}))
	require.NoError(t, c.ValidateAudience([]string{"foo", "advisory"}))
	require.NoError(t, c.ValidateAudience(nil))
	require.ErrorIs(t, c.ValidateAudience([]string{"admin"}), jwtx.ErrAudience)
}

func TestWithAudience(t *testing.T) {
	c := jwtx.NewAccessClaims("u", "farmer", "", time.Minute, testIssuer, time.Now())

	require.Equal(t, jwt.ClaimStrings{"harvest-market"}, c.WithAudience("harvest-market").Audience)
	require.Empty(t, c.WithAudience("").Audience)
	require.Empty(t, c.Audience, "receiver is not modified")
}

func TestValidateAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		exp    time.Time
		nbf    time.Time
		leeway time.Duration
		want   error
	}{
		{name: "valid", exp: now.Add(time.Minute)},
		{name: "expired", exp: now.Add(-time.Minute), want: jwtx.ErrExpired},
		{name: "not yet valid", exp: now.Add(2 * time.Minute), nbf: now.Add(time.Minute), want: jwtx.ErrNotYetValid},
		{name: "expired inside leeway", exp: now.Add(-10 * time.Second), leeway: 30 * time.Second},
		{name: "expired beyond leeway", exp: now.Add(-2 * time.Minute), leeway: 30 * time.Second, want: jwtx.ErrExpired},
		{name: "nbf inside leeway", exp: now.Add(time.Minute), nbf: now.Add(10 * time.Second), leeway: 30 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(tt.exp)}}
			if !tt.nbf.IsZero() {
				c.NotBefore = jwt.NewNumericDate(tt.nbf)
			}

			err := c.ValidateAt(now, tt.leeway)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}

	require.ErrorIs(t, (&jwtx.Claims{}).ValidateAt(now, 0), jwtx.ErrInvalidClaim, "missing exp")
}
