package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/harvest/internal/market/service"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/aussiebroadwan/harvest/pkg/idx"
	"github.com/aussiebroadwan/harvest/pkg/marketsdk"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
)

// writeError maps a service error onto the wire. Known kinds carry the
// service's message; anything else is logged and reported as a 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var notApproved *service.NotApprovedError

	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		httpx.SetBearerChallenge(w, "invalid or expired token")
		writeErrorCode(w, http.StatusUnauthorized, marketsdk.ErrorCodeInvalidToken, "Could not validate credentials")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeErrorCode(w, http.StatusUnauthorized, marketsdk.ErrorCodeInvalidCredentials, err.Error())
	case errors.Is(err, service.ErrAccountDeactivated):
		writeErrorCode(w, http.StatusForbidden, marketsdk.ErrorCodeAccountDeactivated, err.Error())
	case errors.As(err, &notApproved):
		httpx.WriteJSON(w, http.StatusForbidden, marketsdk.ErrorResponse{
			Error:            marketsdk.ErrorCodeAccountNotApproved,
			ErrorDescription: notApproved.Error(),
			Status:           string(notApproved.Status),
		})
	case errors.Is(err, service.ErrForbidden):
		writeErrorCode(w, http.StatusForbidden, marketsdk.ErrorCodeForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeErrorCode(w, http.StatusNotFound, marketsdk.ErrorCodeNotFound, err.Error())
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrAlreadyInState):
		writeErrorCode(w, http.StatusConflict, marketsdk.ErrorCodeConflict, err.Error())
	case errors.Is(err, service.ErrInvalid):
		writeErrorCode(w, http.StatusBadRequest, marketsdk.ErrorCodeInvalidRequest, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		writeErrorCode(w, http.StatusInternalServerError, marketsdk.ErrorCodeServerError, "An internal error occurred")
	}
}

func writeErrorCode(w http.ResponseWriter, status int, code, desc string) {
	httpx.WriteJSON(w, status, marketsdk.ErrorResponse{Error: code, ErrorDescription: desc})
}

type validator interface {
	Validate() map[string]string
}

// pathID reads the {id} path value. A malformed id is answered with a 404
// naming the resource and never reaches the store.
func pathID(w http.ResponseWriter, r *http.Request, resource string) (string, bool) {
	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		writeErrorCode(w, http.StatusNotFound, marketsdk.ErrorCodeNotFound, resource+" not found")
		return "", false
	}
	return id.String(), true
}

// decodeOptional is decode for endpoints whose body may be omitted. A missing
// or empty body yields the zero request.
func decodeOptional[T validator](w http.ResponseWriter, r *http.Request) (req T, ok bool) {
	if r.Body == nil || r.Body == http.NoBody {
		return req, true
	}
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		if errors.Is(err, httpx.ErrEmptyBody) {
			return req, true
		}
		writeErrorCode(w, http.StatusBadRequest, marketsdk.ErrorCodeInvalidRequest, err.Error())
		return req, false
	}
	if errs := req.Validate(); errs != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, marketsdk.ValidationErrorResponse{
			Code:    marketsdk.ErrorCodeValidation,
			Message: "validation failed for some fields",
			Details: errs,
		})
		return req, false
	}
	return req, true
}

// decode reads and validates a JSON body. On failure the 400 has already
// been written and ok is false.
func decode[T validator](w http.ResponseWriter, r *http.Request) (req T, ok bool) {
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, marketsdk.ErrorCodeInvalidRequest, err.Error())
		return req, false
	}
	if errs := req.Validate(); errs != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, marketsdk.ValidationErrorResponse{
			Code:    marketsdk.ErrorCodeValidation,
			Message: "validation failed for some fields",
			Details: errs,
		})
		return req, false
	}
	return req, true
}
