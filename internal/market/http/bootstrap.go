package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/harvest/internal/market/service"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/aussiebroadwan/harvest/pkg/marketsdk"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP creates the first admin account.
//
//	@Summary		Bootstrap the marketplace
//	@Description	Creates the first admin account. Only available when BOOTSTRAP_TOKEN is configured and only until an admin exists.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string								true	"Bootstrap token"
//	@Param			request				body		marketsdk.BootstrapRequest			true	"Admin account"
//	@Success		201					{object}	marketsdk.UserResponse				"Created admin"
//	@Failure		400					{object}	marketsdk.ValidationErrorResponse	"Invalid request body or validation failed"
//	@Failure		401					{object}	marketsdk.ErrorResponse				"Missing or invalid bootstrap token, or already bootstrapped"
//	@Failure		404					{object}	marketsdk.ErrorResponse				"Bootstrap not enabled"
//	@Failure		409					{object}	marketsdk.ErrorResponse				"Email or phone number already registered"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	// 1. Check if enabled
	if h.BootstrapService.Token == "" {
		writeErrorCode(w, http.StatusNotFound, marketsdk.ErrorCodeNotFound, "Bootstrap endpoint is not enabled")
		return
	}

	// 2. Require bootstrap token header
	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		writeErrorCode(w, http.StatusUnauthorized, marketsdk.ErrorCodeInvalidToken,
			"Bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	// 3. Parse request body and validate
	req, ok := decode[marketsdk.BootstrapRequest](w, r)
	if !ok {
		return
	}

	// 4. Perform bootstrap
	admin, err := h.BootstrapService.Bootstrap(r.Context(), token, service.BootstrapInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Name:     req.Name,
		Country:  req.Country,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapDisabled):
			writeErrorCode(w, http.StatusNotFound, marketsdk.ErrorCodeNotFound, "Bootstrap endpoint is not enabled")
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			writeErrorCode(w, http.StatusUnauthorized, marketsdk.ErrorCodeInvalidToken, "Invalid bootstrap token")
		case errors.Is(err, service.ErrBootstrapAlready):
			writeErrorCode(w, http.StatusUnauthorized, marketsdk.ErrorCodeAlreadyBootstrapped, "System has already been bootstrapped")
		default:
			writeError(w, r, err)
		}
		return
	}

	l.Info("bootstrap complete", "admin_user_id", admin.ID)
	httpx.WriteJSON(w, http.StatusCreated, userResponse(admin))
}
