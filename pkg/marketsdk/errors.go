package marketsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes carried in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest      = "invalid_request"
	ErrorCodeValidation          = "validation_error"
	ErrorCodeInvalidToken        = "invalid_token"
	ErrorCodeInvalidCredentials  = "invalid_credentials"
	ErrorCodeAccountDeactivated  = "account_deactivated"
	ErrorCodeAccountNotApproved  = "account_not_approved"
	ErrorCodeForbidden           = "forbidden"
	ErrorCodeNotFound            = "not_found"
	ErrorCodeConflict            = "conflict"
	ErrorCodeAlreadyBootstrapped = "already_bootstrapped"
	ErrorCodeRateLimitExceeded   = "rate_limit_exceeded"
	ErrorCodeServerError         = "server_error"
)

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	// Error is a stable machine readable code, one of the ErrorCode constants
	Error string `json:"error"`

	// ErrorDescription is a human readable message
	ErrorDescription string `json:"error_description"`

	// Status is the account status, set only with account_not_approved
	Status string `json:"status,omitempty"`
}

// ValidationErrorResponse is returned with 400 when request validation fails.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// APIError is the error returned by SDK calls when the service answers with
// an unexpected status.
type APIError struct {
	StatusCode  int
	Code        string
	Description string

	// Status mirrors ErrorResponse.Status.
	Status string

	// Details mirrors ValidationErrorResponse.Details.
	Details map[string]string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Status, e.Description)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// parseErrorResponse turns a non-2xx response body into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var valErr ValidationErrorResponse
	if err := json.Unmarshal(body, &valErr); err == nil && valErr.Code != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        valErr.Code,
			Description: valErr.Message,
			Details:     valErr.Details,
		}
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
			Status:      errResp.Status,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
