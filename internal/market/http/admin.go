package http

import (
	"net/http"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/service"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/aussiebroadwan/harvest/pkg/marketsdk"
)

// AdminHandler serves the approval queue and user management. Every route is
// behind Authn and RequireRole(admin).
type AdminHandler struct {
	UserService     *service.UserService
	ApprovalService *service.ApprovalService
}

// HandleListPending lists users waiting for approval.
//
//	@Summary		List pending users
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	marketsdk.UserListResponse	"Pending users, oldest first"
//	@Failure		401	{object}	marketsdk.ErrorResponse		"Missing or invalid token"
//	@Failure		403	{object}	marketsdk.ErrorResponse		"Admin role required"
//	@Security		BearerAuth
//	@Router			/v1/admin/users/pending [get].
func (h *AdminHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListPending(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userList(users, len(users), 1, len(users)))
}

// HandleListUsers lists users with optional role and status filters.
//
//	@Summary		List users
//	@Tags			Admin
//	@Produce		json
//	@Param			role	query		string						false	"farmer, expert, dealer or admin"
//	@Param			status	query		string						false	"pending, approved or rejected"
//	@Param			page	query		int							false	"Page number"	default(1)
//	@Param			limit	query		int							false	"Page size"		default(20)	maximum(100)
//	@Success		200		{object}	marketsdk.UserListResponse	"One page of users"
//	@Failure		400		{object}	marketsdk.ErrorResponse		"Unknown role or status"
//	@Failure		403		{object}	marketsdk.ErrorResponse		"Admin role required"
//	@Security		BearerAuth
//	@Router			/v1/admin/users [get].
func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	pg, page, limit := pageFrom(r)
	f := domain.UserFilter{Limit: pg.Limit, Offset: pg.Offset}

	q := r.URL.Query()
	if v := q.Get("role"); v != "" {
		role, err := domain.ParseRole(v)
		if err != nil {
			writeErrorCode(w, http.StatusBadRequest, marketsdk.ErrorCodeInvalidRequest, err.Error())
			return
		}
		f.Role = role
	}
	if v := q.Get("status"); v != "" {
		status, err := domain.ParseStatus(v)
		if err != nil {
			writeErrorCode(w, http.StatusBadRequest, marketsdk.ErrorCodeInvalidRequest, err.Error())
			return
		}
		f.Status = status
	}

	users, total, err := h.UserService.ListUsers(r.Context(), f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userList(users, total, page, limit))
}

// HandleApprove moves a user to approved.
//
//	@Summary		Approve user
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string							true	"User ID"
//	@Success		200	{object}	marketsdk.StatusChangeResponse	"User approved"
//	@Failure		403	{object}	marketsdk.ErrorResponse			"Admin role required"
//	@Failure		404	{object}	marketsdk.ErrorResponse			"User not found"
//	@Failure		409	{object}	marketsdk.ErrorResponse			"User already approved"
//	@Security		BearerAuth
//	@Router			/v1/admin/users/{id}/approve [put].
func (h *AdminHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())
	id, ok := pathID(w, r, "User")
	if !ok {
		return
	}

	user, err := h.ApprovalService.Approve(r.Context(), id,
		service.WithActor(domain.ActorFrom(p)),
	)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, marketsdk.StatusChangeResponse{
		Success: true,
		Status:  string(user.Status),
		Message: "User approved successfully",
	})
}

// HandleReject moves a user to rejected.
//
//	@Summary		Reject user
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"User ID"
//	@Param			request	body		marketsdk.RejectRequest			false	"Optional reason, logged only"
//	@Success		200		{object}	marketsdk.StatusChangeResponse	"User rejected"
//	@Failure		403		{object}	marketsdk.ErrorResponse			"Admin role required"
//	@Failure		404		{object}	marketsdk.ErrorResponse			"User not found"
//	@Failure		409		{object}	marketsdk.ErrorResponse			"User already rejected"
//	@Security		BearerAuth
//	@Router			/v1/admin/users/{id}/reject [put].
func (h *AdminHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())

	id, ok := pathID(w, r, "User")
	if !ok {
		return
	}
	req, ok := decodeOptional[marketsdk.RejectRequest](w, r)
	if !ok {
		return
	}

	user, err := h.ApprovalService.Reject(r.Context(), id,
		service.WithActor(domain.ActorFrom(p)),
		service.WithReason(req.Reason),
	)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, marketsdk.StatusChangeResponse{
		Success: true,
		Status:  string(user.Status),
		Message: "User rejected successfully",
	})
}

// HandleSetActive deactivates or restores an account.
//
//	@Summary		Set user active flag
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"User ID"
//	@Param			request	body		marketsdk.SetActiveRequest			true	"New active flag"
//	@Success		200		{object}	marketsdk.UserResponse				"Updated user"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Missing active flag or self-deactivation"
//	@Failure		403		{object}	marketsdk.ErrorResponse				"Admin role required"
//	@Failure		404		{object}	marketsdk.ErrorResponse				"User not found"
//	@Security		BearerAuth
//	@Router			/v1/admin/users/{id}/active [put].
func (h *AdminHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())

	id, ok := pathID(w, r, "User")
	if !ok {
		return
	}
	req, ok := decode[marketsdk.SetActiveRequest](w, r)
	if !ok {
		return
	}

	user, err := h.UserService.SetActive(r.Context(), p, id, *req.Active)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}

func userList(users []domain.User, total, page, limit int) marketsdk.UserListResponse {
	out := marketsdk.UserListResponse{
		Users: make([]marketsdk.UserResponse, len(users)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for i, u := range users {
		out.Users[i] = userResponse(u)
	}
	return out
}
