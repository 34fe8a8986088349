package marketsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Admin operations. Every call requires an admin session.

func (s *Session) ListPendingUsers(ctx context.Context) (*UserListResponse, error) {
	return call[UserListResponse](ctx, s, http.MethodGet, "/v1/admin/users/pending", nil, http.StatusOK)
}

func (s *Session) ListUsers(ctx context.Context, q UserQuery) (*UserListResponse, error) {
	path := withQuery("/v1/admin/users", map[string]string{
		"role":   q.Role,
		"status": q.Status,
		"page":   itoa(q.Page),
		"limit":  itoa(q.Limit),
	})
	return call[UserListResponse](ctx, s, http.MethodGet, path, nil, http.StatusOK)
}

// ApproveUser moves a user to approved. Approving an approved user fails with
// 409 conflict.
func (s *Session) ApproveUser(ctx context.Context, userID string) (*StatusChangeResponse, error) {
	path := "/v1/admin/users/" + url.PathEscape(userID) + "/approve"
	return call[StatusChangeResponse](ctx, s, http.MethodPut, path, nil, http.StatusOK)
}

// RejectUser moves a user to rejected. The reason is only logged.
func (s *Session) RejectUser(ctx context.Context, userID, reason string) (*StatusChangeResponse, error) {
	path := "/v1/admin/users/" + url.PathEscape(userID) + "/reject"
	return call[StatusChangeResponse](ctx, s, http.MethodPut, path, RejectRequest{Reason: reason}, http.StatusOK)
}

// SetUserActive deactivates or restores an account.
func (s *Session) SetUserActive(ctx context.Context, userID string, active bool) (*UserResponse, error) {
	path := "/v1/admin/users/" + url.PathEscape(userID) + "/active"
	return call[UserResponse](ctx, s, http.MethodPut, path, SetActiveRequest{Active: &active}, http.StatusOK)
}
