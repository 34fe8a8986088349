package http

import (
	"net/http"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
	"github.com/aussiebroadwan/harvest/internal/market/service"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/aussiebroadwan/harvest/pkg/marketsdk"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister creates a pending account.
//
//	@Summary		Register a new account
//	@Description	Creates a farmer, expert or dealer account. New accounts start pending and cannot log in until an admin approves them.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.RegisterRequest			true	"Account details"
//	@Success		201		{object}	marketsdk.UserResponse				"Created account"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Invalid request body or validation failed"
//	@Failure		409		{object}	marketsdk.ErrorResponse				"Email or phone number already registered"
//	@Failure		429		{object}	marketsdk.ErrorResponse				"Rate limit exceeded"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[marketsdk.RegisterRequest](w, r)
	if !ok {
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, marketsdk.ErrorCodeInvalidRequest, err.Error())
		return
	}

	user, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Name:     req.Name,
		Country:  req.Country,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userResponse(user))
}

// HandleLogin exchanges credentials for an access token.
//
//	@Summary		Log in
//	@Description	Verifies email and password and returns a bearer token. Deactivated accounts and non-admin accounts that are not approved are refused.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.LoginRequest				true	"Credentials"
//	@Success		200		{object}	marketsdk.TokenResponse				"Access token and user"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Invalid request body"
//	@Failure		401		{object}	marketsdk.ErrorResponse				"Incorrect email or password"
//	@Failure		403		{object}	marketsdk.ErrorResponse				"Account deactivated or not approved"
//	@Failure		429		{object}	marketsdk.ErrorResponse				"Rate limit exceeded"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[marketsdk.LoginRequest](w, r)
	if !ok {
		return
	}

	issued, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("user logged in", "user_id", issued.User.ID)
	h.writeToken(w, issued)
}

// HandleMe returns the authenticated user.
//
//	@Summary		Current user
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	marketsdk.UserResponse	"Current user"
//	@Failure		401	{object}	marketsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403	{object}	marketsdk.ErrorResponse	"Account deactivated or not approved"
//	@Security		BearerAuth
//	@Router			/v1/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())
	httpx.WriteJSON(w, http.StatusOK, userResponse(p.User))
}

// HandleRefresh reissues a token for the authenticated user.
//
//	@Summary		Refresh access token
//	@Description	Issues a new token with a fresh expiry. The account must still pass the access gate.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	marketsdk.TokenResponse	"New access token"
//	@Failure		401	{object}	marketsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403	{object}	marketsdk.ErrorResponse	"Account deactivated or not approved"
//	@Security		BearerAuth
//	@Router			/v1/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())

	issued, err := h.AuthService.Refresh(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeToken(w, issued)
}

// HandleUpdateMe changes the caller's contact details.
//
//	@Summary		Update own account
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		marketsdk.UpdateMeRequest			true	"Fields to change"
//	@Success		200		{object}	marketsdk.UserResponse				"Updated user"
//	@Failure		400		{object}	marketsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		401		{object}	marketsdk.ErrorResponse				"Missing or invalid token"
//	@Failure		409		{object}	marketsdk.ErrorResponse				"Phone number already registered"
//	@Security		BearerAuth
//	@Router			/v1/users/me [put].
func (h *AuthHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())

	req, ok := decode[marketsdk.UpdateMeRequest](w, r)
	if !ok {
		return
	}

	user, err := h.AuthService.UpdateMe(r.Context(), p, service.UpdateMeInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Country: req.Country,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}

func (h *AuthHandler) writeToken(w http.ResponseWriter, issued service.IssuedToken) {
	httpx.WriteJSON(w, http.StatusOK, marketsdk.TokenResponse{
		AccessToken: issued.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   int(h.AuthService.Tokens.TTL().Seconds()),
		User:        userResponse(issued.User),
	})
}
