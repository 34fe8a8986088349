package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/service"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/aussiebroadwan/harvest/pkg/marketsdk"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
)

type principalKey struct{}

func withPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// principalFrom returns the principal stored by Authn. Handlers behind Authn
// can rely on ok being true.
func principalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// Authn runs the access gate for every request: bearer token, user lookup,
// active and approval checks.
func Authn(gate *service.Gate) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := httpx.BearerToken(r)
			if err != nil {
				httpx.SetBearerChallenge(w, "missing bearer token")
				writeErrorCode(w, http.StatusUnauthorized, marketsdk.ErrorCodeInvalidToken, "Not authenticated")
				return
			}

			p, err := gate.Authenticate(r.Context(), token)
			if err != nil {
				writeError(w, r, err)
				return
			}

			ctx := withPrincipal(r.Context(), p)
			ctx = httpx.WithUser(ctx, p.ID(), string(p.Role()))
			ctx = slogx.WithUserID(ctx, p.ID(), string(p.Role()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole must run after Authn.
func RequireRole(role domain.Role) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := principalFrom(r.Context())
			if !ok {
				writeError(w, r, service.ErrUnauthenticated)
				return
			}
			if _, err := service.RequireRole(p, role); err != nil {
				writeError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
