package marketsdk

import (
	"context"
	"net/http"
)

// Me returns the caller's account.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	return call[UserResponse](ctx, s, http.MethodGet, "/v1/auth/me", nil, http.StatusOK)
}

// UpdateMe changes the caller's name, phone or country.
func (s *Session) UpdateMe(ctx context.Context, req UpdateMeRequest) (*UserResponse, error) {
	return call[UserResponse](ctx, s, http.MethodPut, "/v1/users/me", req, http.StatusOK)
}
